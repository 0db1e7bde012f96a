// Package logger provides centralized logging for the color picker tooling.
// It wraps charmbracelet/log with level configuration from flags and environment.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

// output is where the global logger and component loggers write.
var output io.Writer = os.Stderr

// logFile is the open --log-file handle, closed on reconfiguration.
var logFile *os.File

func init() {
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the logger from CLI flags and environment variables.
// CLI flags take precedence over COLORPICKER_LOG_LEVEL.
func Configure(logLevel string, path string) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("COLORPICKER_LOG_LEVEL"))
	}

	if err := Close(); err != nil {
		return err
	}

	output = os.Stderr
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		logFile = file
		output = file
	}

	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(ParseLevel(level))
	return nil
}

// Close closes the log file opened by Configure, if any, and falls back to stderr.
func Close() error {
	if logFile == nil {
		return nil
	}
	file := logFile
	logFile = nil
	output = os.Stderr
	Logger.SetOutput(output)
	return file.Close()
}

// SetOutput redirects the global logger, mainly for tests.
func SetOutput(w io.Writer) {
	output = w
	Logger.SetOutput(w)
}

// ParseLevel converts a level name to a log level. Unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// NewStyledLogger creates a component logger with a prefix, e.g. "Codec" or "Batch".
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = levelStyle("INFO", "33")
	styles.Levels[log.ErrorLevel] = levelStyle("ERROR", "196")
	styles.Levels[log.DebugLevel] = levelStyle("DEBUG", "240")
	styles.Levels[log.WarnLevel] = levelStyle("WARN", "214")
	styles.Levels[log.FatalLevel] = levelStyle("FATAL", "88")

	styles.Keys["mode"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	styles.Keys["field"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["channel"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}

func levelStyle(label, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("15"))
}
