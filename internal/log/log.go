// Package log builds the application logger used by the front ends.
package log

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Prefix string
	Level  string
	// Path enables a rotating log file instead of stdout.
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a logger. An empty or unknown level falls back to info.
func New(opts Options) *log.Logger {
	var w io.Writer = os.Stdout
	if opts.Path != "" {
		w = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		}
	}
	return NewWithWriter(w, opts)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, opts Options) *log.Logger {
	logger := log.New(w)
	logger.SetPrefix(opts.Prefix)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetReportCaller(true)

	level, err := log.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
