package linecsv

import (
	"errors"
	"fmt"
)

var (
	// ErrQuoteInField is returned when a quote appears inside a field that did not start with one.
	ErrQuoteInField = errors.New("field containing a quote must be fully quoted")
	// ErrQuoteNotClosed is returned when input ends inside a quoted field.
	ErrQuoteNotClosed = errors.New("quote not closed")
	// ErrInvalidAfterQuote is returned when a closing quote is followed by anything other than a
	// delimiter, another quote, '\r' or the end of the record.
	ErrInvalidAfterQuote = errors.New("invalid character after quote")
	// ErrFieldCount is returned by Reader when a record contains an unexpected number of fields.
	ErrFieldCount = errors.New("wrong number of fields")
)

// ParseError reports a fatal problem with a single record and the line it was detected on.
type ParseError struct {
	Line int
	Err  error
}

func newParseError(line int, err error) *ParseError {
	return &ParseError{Line: line, Err: err}
}

// Error formats the parse error message with the stored line and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("linecsv: parse error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
