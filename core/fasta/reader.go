// core/fasta/reader.go
package fasta

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA entry abstracted to the only attribute downstream
// consumers need: its sequence length. Header text and sequence bytes are
// discarded during the scan, so memory stays O(1) per record.
type Record struct {
	Length int
}

// ErrBeforeHeader reports sequence data appearing before the first '>' line.
var ErrBeforeHeader = errors.New("sequence data before first header")

// ParseError is a structural FASTA failure, carrying the 1-based line
// number it was detected on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fasta: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ScanCtx parses FASTA from r and emits one Record per entry.
//
// A record starts at a line whose first character is '>' and runs until the
// next such line or EOF. Its length is the count of non-whitespace bytes on
// the lines in between; line endings (including stray '\r') and interior
// blanks contribute nothing. A header followed immediately by another header
// or EOF still emits a zero-length record.
//
// An empty stream yields no records and a nil error. A non-blank line before
// the first header returns a *ParseError wrapping ErrBeforeHeader.
//
// Cancellation is checked between lines; ctx.Err() is returned promptly.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		inRecord bool
		length   int
		lineNo   int
	)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '>' {
			if inRecord {
				if err := emit(Record{Length: length}); err != nil {
					return err
				}
			}
			inRecord = true
			length = 0
			continue
		}
		n := countBases(line)
		if n == 0 {
			continue
		}
		if !inRecord {
			return &ParseError{Line: lineNo, Err: ErrBeforeHeader}
		}
		length += n
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if inRecord {
		return emit(Record{Length: length})
	}
	return nil
}

// Scan is ScanCtx with a background context.
func Scan(r io.Reader, emit func(Record) error) error {
	return ScanCtx(context.Background(), r, emit)
}

// countBases counts the bytes of line that are not ASCII whitespace. The
// scanner already strips the newline; stray '\r' from CRLF input and
// interior blanks are excluded here.
func countBases(line []byte) int {
	n := 0
	for _, b := range line {
		switch b {
		case ' ', '\t', '\r', '\v', '\f':
		default:
			n++
		}
	}
	return n
}
