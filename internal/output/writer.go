package output

import (
	"bufio"
	"fmt"
	"io"
)

// ResultWriter is the interface for writing evaluated positions.
type ResultWriter interface {
	WritePosition(pj *PositionJSON) error
	Flush() error
	Close() error
}

// TextWriter writes one tab-separated line per position:
// index, status and FEN, or index, "Error" and the message.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WritePosition writes one result line.
func (tw *TextWriter) WritePosition(pj *PositionJSON) error {
	if pj.Error != "" {
		_, err := fmt.Fprintf(tw.w, "%d\tError\t%s\n", pj.Index, pj.Error)
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%d\t%s\t%s\n", pj.Index, pj.Status, pj.FEN)
	return err
}

// Flush flushes buffered output.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// Close flushes the writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*PositionJSON
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*PositionJSON, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(pj *PositionJSON) error {
	if jw.single {
		return OutputPositionJSON(jw.w, pj)
	}
	jw.positions = append(jw.positions, pj)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}
	err := OutputPositionsJSON(jw.w, jw.positions)
	jw.positions = jw.positions[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
