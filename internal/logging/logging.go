// Package logging holds the process-wide logrus logger
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	mu     sync.Mutex
)

// InitLogger configures the shared logger. The terminal belongs to the UI,
// so out is normally a file from OpenLogFile.
func InitLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	logger = l
	return l
}

// GetLogger returns the shared logger. Before InitLogger is called it
// returns a logger that discards everything.
func GetLogger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return logger
}

// OpenLogFile opens path for appending, creating its directory
func OpenLogFile(path string, dirPerm, filePerm os.FileMode) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
