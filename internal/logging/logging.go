// Package logging sets up the zerolog logger. The presenter owns the
// terminal, so log output always goes to a file (or nowhere).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger writing JSON lines to path, together with a closer
// for the underlying file. An empty path yields a no-op logger.
func Open(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
