package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

// NewLogger returns a logger whose lines start with a colored [name] tag.
func NewLogger(name, color string, w io.Writer) *log.Logger {
	return log.New(w, fmt.Sprintf("%s[%s]%s ", color, name, ColorReset), log.LstdFlags)
}

// OpenLogOutput opens the log destination. An empty path discards logs,
// since the terminal is owned by the game while playing.
// The returned close function is never nil.
func OpenLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
