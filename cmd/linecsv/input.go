package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// openInput opens the single optional file argument, falling back to stdin for none or "-".
func openInput(args []string) (io.RuneReader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return bufio.NewReader(os.Stdin), func() error { return nil }, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open input %s", args[0])
	}
	return bufio.NewReader(f), f.Close, nil
}

// readInput loads the whole input into memory.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "read input %s", args[0])
	}
	return string(b), nil
}
