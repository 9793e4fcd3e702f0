package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oleg578/linecsv"
	"github.com/oleg578/linecsv/internal/logger"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Parse the input repeatedly and report throughput",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		res, err := runBench(data, active.Parser, benchIterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		logger.Infof("parsed %d records (%d bytes) x%d in %s: %.0f records/s, %.2f MB/s",
			res.Records, res.Bytes, res.Iterations, res.Elapsed, res.RecordsPerSecond(), res.MBPerSecond())
	},
	Example: "# linecsv bench data.csv --iterations 1000",
}

func init() {
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 100, "Number of times to parse the input")
	rootCmd.AddCommand(benchCmd)
}

type benchResult struct {
	Iterations int
	Records    int // per iteration
	Errors     int // per iteration
	Bytes      int
	Elapsed    time.Duration
}

func (b benchResult) RecordsPerSecond() float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(b.Records*b.Iterations) / b.Elapsed.Seconds()
}

func (b benchResult) MBPerSecond() float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(b.Bytes*b.Iterations) / (1 << 20) / b.Elapsed.Seconds()
}

// runBench parses data iterations times and discards the records.
func runBench(data string, opts parserConfig, iterations int) (benchResult, error) {
	if iterations <= 0 {
		return benchResult{}, errors.Errorf("iterations must be positive, got %d", iterations)
	}

	res := benchResult{Iterations: iterations, Bytes: len(data)}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		records, bad := 0, 0
		r := opts.configure(linecsv.NewStringReader(data))
		for {
			_, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				if !opts.ContinueOnError {
					return res, errors.Wrapf(err, "iteration %d", i)
				}
				bad++
				continue
			}
			records++
		}
		res.Records, res.Errors = records, bad
	}
	res.Elapsed = time.Since(start)

	logger.Debugf("bench finished: %d records, %d errors per iteration", res.Records, res.Errors)
	return res, nil
}
