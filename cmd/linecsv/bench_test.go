package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleg578/linecsv"
)

func TestRunBench(t *testing.T) {
	data := strings.Repeat("a,\"b,c\",d\n", 10)

	res, err := runBench(data, parserConfig{FieldsPerRecord: -1}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Iterations)
	assert.Equal(t, 10, res.Records)
	assert.Equal(t, 0, res.Errors)
	assert.Equal(t, len(data), res.Bytes)
	assert.GreaterOrEqual(t, res.RecordsPerSecond(), 0.0)
}

func TestRunBenchErrors(t *testing.T) {
	const data = "a\n\"b\nc\"x\nd\n"

	_, err := runBench(data, parserConfig{FieldsPerRecord: -1}, 1)
	assert.ErrorIs(t, err, linecsv.ErrInvalidAfterQuote)

	res, err := runBench(data, parserConfig{FieldsPerRecord: -1, ContinueOnError: true}, 2)
	require.NoError(t, err)
	// The remainder of the bad line parses as an empty record.
	assert.Equal(t, 3, res.Records)
	assert.Equal(t, 1, res.Errors)

	_, err = runBench(data, parserConfig{}, 0)
	assert.Error(t, err)
}

func TestBenchResultRates(t *testing.T) {
	assert.Zero(t, benchResult{Records: 10}.RecordsPerSecond())
	assert.Zero(t, benchResult{Bytes: 10}.MBPerSecond())
}
