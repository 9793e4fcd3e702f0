package linecsv

import "strings"

type state uint8

const (
	stateInit state = iota
	stateInQuote
	stateInQuoteQuote
	stateEnd
)

// input is a single step fed to the state machine: either a rune or the end-of-input marker.
// The marker is a separate flag so a NUL rune in the data stays an ordinary character.
type input struct {
	r   rune
	eof bool
}

// Tokenizer turns the runes of one record into fields. The zero value is ready to use and a
// Tokenizer may be reused; every ParseRecord call starts from a clean buffer and record.
type Tokenizer struct {
	// StrictQuoteNewline rejects a '\n' directly after a closing quote with ErrInvalidAfterQuote.
	// By default such a newline ends the record, the same as end of input does.
	StrictQuoteNewline bool

	buf    strings.Builder
	record []string
}

// NewTokenizer returns a Tokenizer with default settings.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// ParseRecord consumes runes from c up to and including the next record boundary and returns the
// fields of that record. On malformed input it returns a *ParseError and no fields; c is left just
// past the rune that triggered the error.
func (t *Tokenizer) ParseRecord(c *Cursor) ([]string, error) {
	t.buf.Reset()
	t.record = nil

	st := stateInit
	for st != stateEnd {
		r, ok := c.Next()
		if !ok {
			if err := c.Err(); err != nil {
				t.record = nil
				return nil, err
			}
		}

		var err error
		st, err = t.step(st, input{r: r, eof: !ok}, c.LineNo())
		if err != nil {
			t.buf.Reset()
			t.record = nil
			return nil, err
		}
	}
	return t.record, nil
}

// step applies the transition for (st, in) and returns the next state.
func (t *Tokenizer) step(st state, in input, line int) (state, error) {
	switch st {
	case stateInit:
		return t.onInit(in, line)
	case stateInQuote:
		return t.onInQuote(in, line)
	case stateInQuoteQuote:
		return t.onInQuoteQuote(in, line)
	default:
		panic("linecsv: tokenizer advanced past the end of a record")
	}
}

func (t *Tokenizer) onInit(in input, line int) (state, error) {
	if in.eof {
		t.pushField()
		return stateEnd, nil
	}

	switch in.r {
	case '\n':
		t.pushField()
		return stateEnd, nil
	case '\r':
		return stateInit, nil
	case '"':
		// A quote opens a quoted field only before any other character of that field.
		if t.buf.Len() == 0 {
			return stateInQuote, nil
		}
		return stateInit, newParseError(line, ErrQuoteInField)
	case ',':
		t.pushField()
		return stateInit, nil
	default:
		t.buf.WriteRune(in.r)
		return stateInit, nil
	}
}

func (t *Tokenizer) onInQuote(in input, line int) (state, error) {
	if in.eof {
		return stateInQuote, newParseError(line, ErrQuoteNotClosed)
	}
	if in.r == '"' {
		return stateInQuoteQuote, nil
	}
	t.buf.WriteRune(in.r)
	return stateInQuote, nil
}

// onInQuoteQuote resolves a quote seen inside a quoted field: either it closed the field or
// it is the first half of an escaped "".
func (t *Tokenizer) onInQuoteQuote(in input, line int) (state, error) {
	if in.eof {
		t.pushField()
		return stateEnd, nil
	}

	switch in.r {
	case '\n':
		if t.StrictQuoteNewline {
			return stateInQuoteQuote, newParseError(line, ErrInvalidAfterQuote)
		}
		t.pushField()
		return stateEnd, nil
	case '\r':
		return stateInQuoteQuote, nil
	case '"':
		t.buf.WriteByte('"')
		return stateInQuote, nil
	case ',':
		t.pushField()
		return stateInit, nil
	default:
		return stateInQuoteQuote, newParseError(line, ErrInvalidAfterQuote)
	}
}

// pushField moves the buffered characters into the record and starts an empty buffer.
func (t *Tokenizer) pushField() {
	t.record = append(t.record, t.buf.String())
	t.buf.Reset()
}
