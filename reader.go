package linecsv

import (
	"io"
	"strings"
)

// Reader pulls successive records out of a rune source by driving a Cursor and a Tokenizer.
type Reader struct {
	// FieldsPerRecord expects each record to contain this many fields. Zero captures the width of
	// the first record; a negative value disables the check.
	FieldsPerRecord int
	// StrictQuoteNewline is passed to the Tokenizer; see Tokenizer.StrictQuoteNewline.
	StrictQuoteNewline bool

	cursor *Cursor
	tok    Tokenizer
}

// NewReader creates a Reader that consumes CSV data from r, panicking if r is nil.
func NewReader(r io.RuneReader) *Reader {
	return &Reader{cursor: NewCursor(r)}
}

// NewStringReader creates a Reader over the CSV text in s.
func NewStringReader(s string) *Reader {
	return NewReader(strings.NewReader(s))
}

// Read parses the next record. io.EOF signals that no input remains. After a *ParseError the
// Reader may be called again and continues from where the previous record stopped.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.cursor == nil {
		return nil, io.EOF
	}
	if !r.cursor.HasNext() {
		if err := r.cursor.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	start := r.cursor.LineNo()
	r.tok.StrictQuoteNewline = r.StrictQuoteNewline
	record, err := r.tok.ParseRecord(r.cursor)
	if err != nil {
		return nil, err
	}

	switch {
	case r.FieldsPerRecord == 0:
		r.FieldsPerRecord = len(record)
	case r.FieldsPerRecord > 0 && len(record) != r.FieldsPerRecord:
		return record, newParseError(start, ErrFieldCount)
	}
	return record, nil
}

// ReadAll exhausts the reader, repeatedly calling Read to collect records until io.EOF
// and returning the accumulated records plus the first non-EOF error encountered.
func (r *Reader) ReadAll() (records [][]string, err error) {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// Line returns the cursor's current line number.
func (r *Reader) Line() int {
	if r == nil || r.cursor == nil {
		return 0
	}
	return r.cursor.LineNo()
}
