package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Setup sends the standard logger to stdout and, when path is set, to an
// append-only log file. The returned func closes the file.
func Setup(path string) (func() error, error) {
	log.SetFlags(log.LstdFlags)
	if path == "" {
		log.SetOutput(os.Stdout)
		return func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return func() error {
		log.SetOutput(os.Stdout)
		return f.Close()
	}, nil
}
