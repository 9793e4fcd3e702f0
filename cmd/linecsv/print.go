package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oleg578/linecsv"
	"github.com/oleg578/linecsv/internal/logger"
)

var printFormat string

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print every record together with the line it starts on",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, closeFn, err := openInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer closeFn()

		out := bufio.NewWriter(os.Stdout)
		err = printRecords(out, src, active.Parser, printFormat)
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			closeFn()
			os.Exit(1)
		}
	},
	Example: "# linecsv print data.csv --format json --continue",
}

func init() {
	printCmd.Flags().StringVar(&printFormat, "format", formatText, "Output format: text or json")
	rootCmd.AddCommand(printCmd)
}

// printRecords writes every record of src to w. With ContinueOnError set, malformed records are
// logged and skipped, and the collected parse errors are returned once the input is exhausted.
func printRecords(w io.Writer, src io.RuneReader, opts parserConfig, format string) error {
	rw, err := newRecordWriter(format, w)
	if err != nil {
		return err
	}

	r := opts.configure(linecsv.NewReader(src))
	var (
		errs    error
		printed int
	)
	for {
		line := r.Line()
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *linecsv.ParseError
			if !opts.ContinueOnError || !errors.As(err, &perr) {
				return err
			}
			logger.Warnf("skipping record starting on line %d: %v", line, err)
			errs = multierror.Append(errs, err)
			continue
		}

		if err := rw.WriteRecord(line, record); err != nil {
			return errors.Wrap(err, "write record")
		}
		printed++
	}

	logger.Debugf("printed %d records, cursor stopped on line %d", printed, r.Line())
	return errs
}
