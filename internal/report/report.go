// internal/report/report.go
package report

import (
	"context"
	"fmt"
	"io"

	"fastats-core/stats"
	"fastats/internal/output"

	"github.com/charmbracelet/log"
	"github.com/shenwei356/xopen"
)

// StdinName labels the summary row when input comes from standard input.
const StdinName = "stdin"

// Options configures one run of the orchestrator.
type Options struct {
	Files  []string // zero entries means read stdin
	MinLen int
}

// OpenError reports a named input that could not be opened. It aborts the
// run; rows already written stay written.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Run writes the header row, then one summary row per input, in the order
// given. Each file is opened, scanned and closed before the next one
// starts; the first failure stops the run. With no named files, stdin is
// scanned as a single implicit input.
func Run(ctx context.Context, o Options, stdin io.Reader, w *output.Writer, logger *log.Logger) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}

	if len(o.Files) == 0 {
		return processReader(ctx, StdinName, stdin, o.MinLen, w, logger)
	}
	for _, path := range o.Files {
		if err := processFile(ctx, path, o.MinLen, stdin, w, logger); err != nil {
			return err
		}
	}
	return nil
}

// processFile summarizes one named input. A '-' path is routed to the
// supplied stdin reader so tests can fake it; plain and gzip files go
// through xopen.
func processFile(ctx context.Context, path string, minLen int, stdin io.Reader, w *output.Writer, logger *log.Logger) error {
	if path == "-" {
		return processReader(ctx, StdinName, stdin, minLen, w, logger)
	}
	fh, err := xopen.Ropen(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer fh.Close()

	return processReader(ctx, path, fh, minLen, w, logger)
}

func processReader(ctx context.Context, name string, r io.Reader, minLen int, w *output.Writer, logger *log.Logger) error {
	logger.Info("Processing FASTA file from " + name)
	sum, err := stats.Collect(ctx, r, minLen)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return w.WriteRow(name, sum)
}
