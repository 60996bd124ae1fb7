package domain

import (
	"io"
)

// HistoryStore defines operations for storing and retrieving dispatched lines.
type HistoryStore interface {
	// Record appends an entry to the history.
	Record(entry HistoryEntry) error

	// List returns entries matching the given filter, newest first.
	List(filter HistoryFilter) ([]HistoryEntry, error)

	// Prune keeps the newest keep entries and deletes the rest.
	Prune(keep int) (int64, error)

	// Close closes the store connection.
	Close() error
}

// HistoryRecorder receives one entry per dispatched line.
// The shell only ever records; reading is left to HistoryStore.
type HistoryRecorder interface {
	Record(entry HistoryEntry) error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Session SessionID
	History HistoryStore
	Config  ConfigProvider
	Logger  Logger
	Output  OutputWriter
	Styler  Styler
}
