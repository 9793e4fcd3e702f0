package main

import (
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type recordWriter interface {
	WriteRecord(line int, record []string) error
}

func newRecordWriter(format string, w io.Writer) (recordWriter, error) {
	switch format {
	case formatText:
		return textWriter{w: w}, nil
	case formatJSON:
		return jsonWriter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}

// textWriter prints `<line>: ["field", ...]` with Go-quoted fields so embedded newlines stay on
// one output line.
type textWriter struct {
	w io.Writer
}

func (t textWriter) WriteRecord(line int, record []string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = strconv.AppendInt(buf.B, int64(line), 10)
	buf.B = append(buf.B, ": ["...)
	for i, field := range record {
		if i > 0 {
			buf.B = append(buf.B, ", "...)
		}
		buf.B = strconv.AppendQuote(buf.B, field)
	}
	buf.B = append(buf.B, "]\n"...)

	_, err := t.w.Write(buf.B)
	return err
}

type jsonRecord struct {
	Line   int      `json:"line"`
	Fields []string `json:"fields"`
}

type jsonWriter struct {
	enc *json.Encoder
}

func (j jsonWriter) WriteRecord(line int, record []string) error {
	return j.enc.Encode(jsonRecord{Line: line, Fields: record})
}
