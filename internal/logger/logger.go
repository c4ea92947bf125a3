// Package logger provides the process-wide structured logger of minitorch.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger = newLogger(os.Stderr, log.InfoLevel)

// logFile is the file Logger writes to, nil for stderr.
var logFile *os.File

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	l.SetStyles(styles())
	return l
}

// Configure replaces the global logger.
//
// level is one of debug, info, warn, error ("" means info). If file is not
// empty, logs are appended to it instead of stderr. A log file opened by a
// previous call is closed.
func Configure(level, file string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var output io.Writer = os.Stderr
	var f *os.File
	if file != "" {
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		output = f
	}

	Logger = newLogger(output, lvl)
	return swapLogFile(f)
}

// Close closes the current log file, if any. Logging continues on stderr.
func Close() error {
	Logger = newLogger(os.Stderr, Logger.GetLevel())
	return swapLogFile(nil)
}

func swapLogFile(f *os.File) error {
	prev := logFile
	logFile = f
	if prev == nil {
		return nil
	}
	if err := prev.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// ParseLevel converts a level name to a log.Level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// WithPrefix returns a component logger sharing the global output and level.
func WithPrefix(prefix string) *log.Logger {
	return Logger.WithPrefix(prefix)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	s.Keys["layer"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	s.Values["path"] = lipgloss.NewStyle().Bold(true)
	return s
}
