// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Prefix tags every log line.
const Prefix = "tui2048"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger at the configured level. When cfg.File is set the
// log is appended to that file, otherwise it goes to fallback. The returned
// closer releases the file.
func New(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	var (
		w      = fallback
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		f, err := openFile(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

func openFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	return f, nil
}
