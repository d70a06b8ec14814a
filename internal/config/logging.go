package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// OpenLogger builds the process logger. The terminal is owned by the
// renderer, so output goes to the file at path (appended) or nowhere when
// path is empty. level is a charmbracelet/log level name; empty means info.
// The returned closer releases the file.
func OpenLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl := log.InfoLevel
	if strings.TrimSpace(level) != "" {
		var err error
		if lvl, err = log.ParseLevel(strings.TrimSpace(level)); err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "ballpit",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
