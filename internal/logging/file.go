// Package logging provides the rotated log file writer,
// used alongside the console as a log output.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMegabytes = 10
	maxBackups       = 15
	maxAgeDays       = 30
)

// NewFileWriter returns a writer to the log file at the path given,
// rotated once it exceeds 10MB, keeping 15 compressed backups for
// at most 30 days. The parent directory is created if needed.
func NewFileWriter(path string) (writer io.WriteCloser, err error) {
	const perm os.FileMode = 0o700
	err = os.MkdirAll(filepath.Dir(path), perm)
	if err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMegabytes,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		LocalTime:  true,
		Compress:   true,
	}, nil
}
