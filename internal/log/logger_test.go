package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pcmd.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("dispatch: %s %q", "print", "-repeat 3 def")
	logger.Info("command %s: %s", "print", "too many positional arguments")
	logger.Warn("command %s failed", "shell")
	logger.Error("history: %s", "disk full")
	_ = logger.Close()

	content := readLog(t, logPath)
	for _, want := range []string{
		`DEBUG: dispatch: print "-repeat 3 def"`,
		"INFO: command print: too many positional arguments",
		"WARN: command shell failed",
		"ERROR: history: disk full",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("log does not contain %q:\n%s", want, content)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTo(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	content := buf.String()
	if strings.Contains(content, "DEBUG") || strings.Contains(content, "INFO") {
		t.Errorf("Debug and Info should have been filtered:\n%s", content)
	}
	if !strings.Contains(content, "WARN: warning message") {
		t.Error("Warning message should be present")
	}
	if !strings.Contains(content, "ERROR: error message") {
		t.Error("Error message should be present")
	}
}

func TestLogger_Tag(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTo(&buf, LevelDebug)

	logger.Info("untagged")
	logger.SetTag("3f2a")
	logger.Info("tagged\n")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "INFO: untagged") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "INFO: [3f2a] tagged") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pcmd.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("test message")
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Log file permissions = %o, want %o", info.Mode().Perm(), 0600)
	}
}

func TestLogger_FixesExistingPermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pcmd.log")
	if err := os.WriteFile(logPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Log file permissions = %o, want %o", info.Mode().Perm(), 0600)
	}
}

func TestLogger_DirectoryPermissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(filepath.Join(logDir, "pcmd.log"), LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logDir)
	if err != nil {
		t.Fatalf("Failed to stat log directory: %v", err)
	}
	if want := os.FileMode(0700) | os.ModeDir; info.Mode() != want {
		t.Errorf("Log directory permissions = %o, want %o", info.Mode(), want)
	}
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pcmd.log")

	for _, msg := range []string{"first session", "second session"} {
		logger, err := New(logPath, LevelInfo)
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		logger.Info(msg)
		_ = logger.Close()
	}

	content := readLog(t, logPath)
	if !strings.Contains(content, "first session") || !strings.Contains(content, "second session") {
		t.Errorf("log should contain both sessions:\n%s", content)
	}
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTo(&buf, LevelInfo)

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")

	content := buf.String()
	if !strings.Contains(content, "enabled message") {
		t.Error("First message not found")
	}
	if strings.Contains(content, "disabled message") {
		t.Error("Disabled message should not be present")
	}
	if !strings.Contains(content, "enabled again") {
		t.Error("Third message not found")
	}
}

func TestLogger_WritesAfterCloseAreDropped(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pcmd.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	_ = logger.Close()
	logger.Error("after close")

	if strings.Contains(readLog(t, logPath), "after close") {
		t.Error("message written after Close")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{" Info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTo(&buf, LevelDebug)

	_, _ = logger.Writer(LevelInfo).Write([]byte("message from writer"))

	if !strings.Contains(buf.String(), "INFO: message from writer") {
		t.Errorf("Writer message not found in log: %q", buf.String())
	}
}

func TestLogger_Nil(t *testing.T) {
	var logger *Logger

	// None of these should panic.
	logger.SetEnabled(true)
	logger.SetTag("x")
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger should return nil, got %v", err)
	}
}

func TestGlobalLogger(t *testing.T) {
	saved := GetLogger()
	defer SetDefault(saved)

	SetDefault(nil)
	Info("dropped")
	if err := Close(); err != nil {
		t.Errorf("Close() with no global logger = %v", err)
	}
	if GetLogger() != nil {
		t.Error("GetLogger() should return nil")
	}

	var buf bytes.Buffer
	logger := NewTo(&buf, LevelDebug)
	SetDefault(logger)

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	if GetLogger() != logger {
		t.Error("GetLogger() should return the default logger")
	}
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("global log missing %q", want)
		}
	}
}

func TestNew_MkdirAllError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(filePath, nil, 0600); err != nil {
		t.Fatal(err)
	}

	_, err := New(filepath.Join(filePath, "subdir", "pcmd.log"), LevelInfo)
	if err == nil {
		t.Fatal("New() should fail when path contains a file as directory")
	}
	if !strings.Contains(err.Error(), "create log directory") {
		t.Errorf("Error should mention directory creation, got: %v", err)
	}
}

func TestNew_OpenFileError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("Skipping test as root can write anywhere")
	}

	readOnlyDir := filepath.Join(t.TempDir(), "readonly")
	if err := os.Mkdir(readOnlyDir, 0500); err != nil {
		t.Fatalf("Failed to create read-only directory: %v", err)
	}

	_, err := New(filepath.Join(readOnlyDir, "pcmd.log"), LevelInfo)
	if err == nil {
		t.Fatal("New() should fail when directory is read-only")
	}
	if !strings.Contains(err.Error(), "open log file") {
		t.Errorf("Error should mention opening file, got: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}

	nop.Debug("test %s", "debug")
	nop.Info("test %s", "info")
	nop.Warn("test %s", "warn")
	nop.Error("test %s", "error")

	if err := nop.Close(); err != nil {
		t.Errorf("NopLogger.Close() = %v, want nil", err)
	}
}
