// Command linecsv prints, inspects and benchmarks CSV input using the linecsv parser.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
