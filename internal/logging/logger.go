// Package logging provides the leveled logger shared by every stage of a run.
//
// Records go to the console writer (stderr in production) and, when a log file
// is configured, are appended to it in logfmt so runs can be audited later.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/backmassage/casedup/internal/config"
	"github.com/backmassage/casedup/internal/term"
	"github.com/charmbracelet/log"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu       sync.Mutex
	console  *log.Logger
	file     *os.File
	fileLog  *log.Logger
	filePath string
}

// NewLogger builds a Logger writing to w and, if cfg.LogFile is set, to that
// file as well. Call Close() when done.
func NewLogger(cfg *config.Config, w io.Writer) (*Logger, error) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	console := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          config.AppName,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
	console.SetColorProfile(term.Profile())

	l := &Logger{console: console}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		l.filePath = cfg.LogFile
		l.fileLog = log.NewWithOptions(f, log.Options{
			Level:           level,
			ReportTimestamp: true,
			TimeFormat:      timeFormat,
			Formatter:       log.LogfmtFormatter,
		})
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.fileLog = nil
		return err
	}
	return nil
}

// Path returns the log file path, or "" when logging to the console only.
func (l *Logger) Path() string { return l.filePath }

func (l *Logger) emit(level log.Level, msg string, keyvals ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console.Log(level, msg, keyvals...)
	if l.fileLog != nil {
		l.fileLog.Log(level, msg, keyvals...)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(log.InfoLevel, fmt.Sprintf(format, args...))
}

// Audit records an action in the log file only. The operator already sees
// the outcome on stdout, so nothing is written to the console.
func (l *Logger) Audit(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fileLog != nil {
		l.fileLog.Info(fmt.Sprintf(format, args...), "audit", true)
	}
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(log.WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(log.ErrorLevel, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level; dropped unless the logger was built with Verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(log.DebugLevel, fmt.Sprintf(format, args...))
}
