package logs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
)

const sampleLog = `[2026-10-16 10:30:45] INFO: command print: too many positional arguments
[2026-10-16 10:30:46] DEBUG: [repl] dispatch: double "1 2"
[2026-10-16 10:30:47] WARN: command browse failed: browse requires an interactive terminal
not a log line
`

func testDeps(t *testing.T, content string) Deps {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pcmd.log")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}

	deps := DefaultDeps()
	deps.LogFilePath = func() string { return path }
	return deps
}

func newShell(t *testing.T, deps Deps) (*dispatchers.Shell, *bytes.Buffer) {
	t.Helper()

	reg := dispatchers.NewRegistry()
	require.NoError(t, reg.Register(Command(deps)))

	var out bytes.Buffer
	return dispatchers.NewShell(reg, dispatchers.WithStdout(&out)), &out
}

// =========== VIEW TESTS ===========

func TestView(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    string
		want    string
	}{
		{name: "file not exists", line: "log", want: "No log file found at "},
		{name: "file not exists json", line: "log -format json", want: "[]\n"},
		{name: "all lines", content: sampleLog, line: "log", want: sampleLog},
		{name: "limited", content: sampleLog, line: "log -limit 2", want: "[2026-10-16 10:30:47] WARN: command browse failed: browse requires an interactive terminal\nnot a log line\n"},
		{name: "explicit show", content: sampleLog, line: "log -limit 1 show", want: "not a log line\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, out := newShell(t, testDeps(t, tt.content))

			require.NoError(t, sh.Onecmd(tt.line))
			require.Contains(t, out.String(), tt.want)
		})
	}
}

func TestView_EmptyFile(t *testing.T) {
	deps := testDeps(t, "")
	require.NoError(t, os.WriteFile(deps.LogFilePath(), nil, 0600))
	sh, out := newShell(t, deps)

	require.NoError(t, sh.Onecmd("log"))
	require.Equal(t, "Log file is empty\n", out.String())
}

func TestView_StatError(t *testing.T) {
	deps := testDeps(t, sampleLog)
	deps.Stat = func(string) (os.FileInfo, error) {
		return nil, errors.New("stat error")
	}
	sh, _ := newShell(t, deps)

	err := sh.Onecmd("log")
	require.ErrorContains(t, err, "stat log file")
}

func TestView_ReadError(t *testing.T) {
	deps := testDeps(t, sampleLog)
	deps.ReadFile = func(string) ([]byte, error) {
		return nil, errors.New("read error")
	}
	sh, _ := newShell(t, deps)

	err := sh.Onecmd("log")
	require.ErrorContains(t, err, "read log file")
}

func TestView_JSON(t *testing.T) {
	sh, out := newShell(t, testDeps(t, sampleLog))

	require.NoError(t, sh.Onecmd("log -format json"))

	var entries []logEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Equal(t, []logEntry{
		{Timestamp: "2026-10-16 10:30:45", Level: "INFO", Message: "command print: too many positional arguments"},
		{Timestamp: "2026-10-16 10:30:46", Level: "DEBUG", Tag: "repl", Message: `dispatch: double "1 2"`},
		{Timestamp: "2026-10-16 10:30:47", Level: "WARN", Message: "command browse failed: browse requires an interactive terminal"},
		{Message: "not a log line", Raw: true},
	}, entries)
}

func TestView_ManyLinesDefaultLimit(t *testing.T) {
	var b strings.Builder
	for i := range 60 {
		fmt.Fprintf(&b, "[2026-10-16 10:00:00] INFO: line %d\n", i)
	}
	sh, out := newShell(t, testDeps(t, b.String()))

	require.NoError(t, sh.Onecmd("log"))

	got := out.String()
	require.Equal(t, defaultLogLimit, strings.Count(got, "\n"))
	require.NotContains(t, got, "line 9\n")
	require.Contains(t, got, "line 10\n")
	require.Contains(t, got, "line 59\n")
}

// =========== CLEAR / PATH TESTS ===========

func TestClear(t *testing.T) {
	deps := testDeps(t, sampleLog)
	sh, out := newShell(t, deps)

	require.NoError(t, sh.Onecmd("log clear"))
	require.Equal(t, "Log file cleared\n", out.String())

	data, err := os.ReadFile(deps.LogFilePath())
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestClear_Error(t *testing.T) {
	deps := testDeps(t, "")
	deps.WriteFile = func(string, []byte, os.FileMode) error {
		return errors.New("permission denied")
	}
	sh, _ := newShell(t, deps)

	require.ErrorContains(t, sh.Onecmd("log clear"), "clear log file: permission denied")
}

func TestPath(t *testing.T) {
	deps := testDeps(t, "")
	sh, out := newShell(t, deps)

	require.NoError(t, sh.Onecmd("log path"))
	require.Equal(t, deps.LogFilePath()+"\n", out.String())
}

func TestCommand_BadAction(t *testing.T) {
	sh, out := newShell(t, testDeps(t, ""))

	require.NoError(t, sh.Onecmd("log rotate"))
	require.Contains(t, out.String(), `While trying to cast "rotate"`)
}

func TestColorizeLogLine_Plain(t *testing.T) {
	// Styling is off in tests, so every level comes back unchanged.
	for _, line := range strings.Split(strings.TrimSpace(sampleLog), "\n") {
		require.Equal(t, line, colorizeLogLine(line))
	}
}
