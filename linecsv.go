// # LineCSV: A Line-Tracking State Machine CSV Parser for Go
//
// LineCSV parses comma-separated text one record at a time. A Cursor feeds runes from any
// io.RuneReader while counting lines, and a Tokenizer runs a small finite-state machine over
// those runes until it reaches a record boundary.
//
// # Grammar
//
// - Fields are separated by ',' and records end at '\n' or at end of input.
// - A field is either fully unquoted or fully wrapped in '"'. Quoted fields may contain
// commas, newlines and doubled quotes ("" yields a single ").
// - A '\r' before '\n', or right after a closing quote, is discarded.
// - The final record does not need a trailing newline.
//
// # Errors
//
// Malformed input is reported as a *ParseError carrying the line on which the problem was
// detected. Match the cause with errors.Is against ErrQuoteInField, ErrQuoteNotClosed,
// ErrInvalidAfterQuote or ErrFieldCount. An error discards the whole record; the next call
// continues from wherever the cursor stopped.
//
// # Getting Started
//
//	r := linecsv.NewStringReader("1,\"2\",3\n5,6,7")
//	records, err := r.ReadAll()
package linecsv
