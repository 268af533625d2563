// ABOUTME: Logger implementation backed by logrus with optional rotating file output
// ABOUTME: Adapts the core Logger interface onto logrus entries and fields

package logrus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls level, format and destination of log output
type Options struct {
	// Level is one of trace, debug, info, warn, error
	Level string

	// Format is "text" or "json"
	Format string

	// File enables rotating file output when non-empty
	File string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Output is used when File is empty; stdout when nil
	Output io.Writer
}

// Logger implements interfaces.Logger on top of a logrus.Logger
type Logger struct {
	log    *logrus.Logger
	closer io.Closer
}

// New builds a Logger from options. Unknown levels and formats are errors.
func New(opts Options) (*Logger, error) {
	l := logrus.New()

	level := strings.TrimSpace(opts.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	l.SetLevel(parsed)

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	logger := &Logger{log: l}
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		l.SetOutput(rotating)
		logger.closer = rotating
	} else if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(os.Stdout)
	}

	return logger, nil
}

// NewWithWriter returns a logger writing JSON lines to w at the given level
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})
	return &Logger{log: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

// Close releases the rotating file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) entry(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithFields(logrus.Fields(fields))
}
