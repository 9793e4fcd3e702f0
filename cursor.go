package linecsv

import (
	"io"
	"strings"
)

// Cursor reads runes from a source with one rune of lookahead and counts the lines it has
// consumed. Line numbers are 1-based and advance once per '\n' returned by Next.
//
// A Cursor must not be advanced by anyone else while Tokenizer.ParseRecord is using it.
type Cursor struct {
	src  io.RuneReader
	line int

	peek    rune
	hasPeek bool
	done    bool
	err     error
}

// NewCursor creates a Cursor over src, panicking if src is nil.
func NewCursor(src io.RuneReader) *Cursor {
	if src == nil {
		panic("linecsv: cursor source cannot be nil")
	}
	return &Cursor{src: src, line: 1}
}

// NewStringCursor creates a Cursor over the runes of s.
func NewStringCursor(s string) *Cursor {
	return NewCursor(strings.NewReader(s))
}

// HasNext reports whether another rune is available without consuming it.
func (c *Cursor) HasNext() bool {
	return c.fill()
}

// Next consumes and returns the next rune. ok is false once the source is exhausted.
func (c *Cursor) Next() (r rune, ok bool) {
	if !c.fill() {
		return 0, false
	}
	r = c.peek
	c.hasPeek = false
	if r == '\n' {
		c.line++
	}
	return r, true
}

// LineNo returns the line of the most recently consumed rune, or 1 if nothing has been consumed.
func (c *Cursor) LineNo() int {
	return c.line
}

// Err returns the first error other than io.EOF reported by the source. Such an error ends
// the stream the same way exhaustion does.
func (c *Cursor) Err() error {
	return c.err
}

// fill loads the lookahead rune if it is empty and reports whether one is buffered.
func (c *Cursor) fill() bool {
	if c.hasPeek {
		return true
	}
	if c.done {
		return false
	}

	r, _, err := c.src.ReadRune()
	if err != nil {
		c.done = true
		if err != io.EOF {
			c.err = err
		}
		return false
	}
	c.peek = r
	c.hasPeek = true
	return true
}
