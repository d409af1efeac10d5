// internal/output/output_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"fastats-core/stats"
)

func TestHeaderLiteral(t *testing.T) {
	if Header != "FILENAME\tTOTAL\tNUMSEQ\tMIN\tAVG\tMAX" {
		t.Fatalf("header literal changed: %q", Header)
	}
}

func TestFormatRowDefined(t *testing.T) {
	s := stats.Summary{NumSeqs: 2, TotalBases: 6, MinLen: 2, AvgLen: 3, MaxLen: 4}
	got := FormatRow("stdin", s)
	if got != "stdin\t6\t2\t2\t3\t4" {
		t.Fatalf("row = %q", got)
	}
}

func TestFormatRowUndefined(t *testing.T) {
	got := FormatRow("empty.fa", stats.Summary{})
	if got != "empty.fa\t0\t0\t-\t-\t-" {
		t.Fatalf("row = %q", got)
	}
}

func TestWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		t.Fatalf("header: %v", err)
	}
	if err := w.WriteRow("a.fa", stats.Summary{NumSeqs: 1, TotalBases: 3, MinLen: 3, AvgLen: 3, MaxLen: 3}); err != nil {
		t.Fatalf("row: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %q", buf.String())
	}
	if lines[0] != Header {
		t.Fatalf("first line = %q, want header", lines[0])
	}
	if lines[1] != "a.fa\t3\t1\t3\t3\t3" {
		t.Fatalf("second line = %q", lines[1])
	}
}

func TestWriterRowEmitsHeaderFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRow("x", stats.Summary{}); err != nil {
		t.Fatalf("row: %v", err)
	}
	if !strings.HasPrefix(buf.String(), Header+"\n") {
		t.Fatalf("header not first: %q", buf.String())
	}
}
