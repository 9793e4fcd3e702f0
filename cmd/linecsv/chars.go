package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleg578/linecsv"
)

var charsCmd = &cobra.Command{
	Use:   "chars [file]",
	Short: "Print each character of the input with the line it was read on",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, closeFn, err := openInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer closeFn()

		out := bufio.NewWriter(os.Stdout)
		err = printChars(out, linecsv.NewCursor(src))
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			closeFn()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(charsCmd)
}

func printChars(w io.Writer, c *linecsv.Cursor) error {
	for {
		line := c.LineNo()
		r, ok := c.Next()
		if !ok {
			break
		}
		if _, err := fmt.Fprintf(w, "%d: %q\n", line, r); err != nil {
			return err
		}
	}
	return c.Err()
}
