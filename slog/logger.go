package slog

import (
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// maxLogSizeMB is the file size at which the log is rotated.
	maxLogSizeMB = 10
	// maxLogBackups is how many rotated files are kept.
	maxLogBackups = 5
)

// NewRotatingLogger creates a JSON logger writing to a dated,
// size-rotated file under dir. The directory is created on first write.
// The returned closer closes the underlying file.
func NewRotatingLogger(dir string) (*slog.Logger, io.Closer) {
	sink := &lumberjack.Logger{
		Filename:   filepath.Join(dir, time.Now().Format("2006-01-02")+".log"),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}
	return slog.New(slog.NewJSONHandler(sink, nil)), sink
}
