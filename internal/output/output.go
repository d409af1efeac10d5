// internal/output/output.go
package output

import (
	"fmt"
	"io"

	"fastats-core/stats"
)

// Header is the canonical header row for the summary table. Keep this as
// the single source of truth; it is always the first line written.
const Header = "FILENAME\tTOTAL\tNUMSEQ\tMIN\tAVG\tMAX"

// Undefined is how min/avg/max render when an input had no sequences.
const Undefined = "-"

// FormatRow returns one summary row (no trailing newline).
func FormatRow(name string, s stats.Summary) string {
	if !s.Defined() {
		return fmt.Sprintf("%s\t0\t0\t%s\t%s\t%s", name, Undefined, Undefined, Undefined)
	}
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d\t%d",
		name, s.TotalBases, s.NumSeqs, s.MinLen, s.AvgLen, s.MaxLen)
}

// Writer emits the header once, then rows, to an underlying io.Writer.
type Writer struct {
	w           io.Writer
	wroteHeader bool
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// WriteHeader writes the header row if it has not been written yet.
func (t *Writer) WriteHeader() error {
	if t.wroteHeader {
		return nil
	}
	t.wroteHeader = true
	_, err := fmt.Fprintln(t.w, Header)
	return err
}

// WriteRow writes one summary row, emitting the header first if needed.
func (t *Writer) WriteRow(name string, s stats.Summary) error {
	if err := t.WriteHeader(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.w, FormatRow(name, s))
	return err
}
