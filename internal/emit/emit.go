// Package emit serializes finalized records as JSON Lines: one object per
// physical line, fields in id/command/output order, embedded newlines and
// special characters escaped by the JSON encoding.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/user/termscribe/internal/transcript"
)

// Writer appends records to an underlying stream in emission order.
type Writer struct {
	enc   *json.Encoder
	count int
}

func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write encodes one record as a single output line.
func (w *Writer) Write(rec transcript.Record) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record %s: %w", rec.ID, err)
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// WriteFile writes all records to path, creating or truncating it. A write
// fault partway through leaves a truncated file behind; callers treat that as
// fatal rather than cleaning up.
func WriteFile(path string, records []transcript.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	w := NewWriter(f)
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
