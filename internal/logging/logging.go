// internal/logging/logging.go
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Discard returns a logger that drops everything. Handed out when --log is
// absent so callers never need a nil check.
func Discard() *log.Logger { return log.New(io.Discard) }

// Open appends to path (creating it if needed) and returns a timestamping
// logger writing there, plus the handle to close on exit.
func Open(path string) (*log.Logger, io.Closer, error) {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New(fh)
	logger.SetReportTimestamp(true)
	logger.SetLevel(log.InfoLevel)
	return logger, fh, nil
}
