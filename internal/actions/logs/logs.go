// Package logs shows and clears the pcmd log file.
package logs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/casters"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

const defaultLogLimit = 50

// Command returns the log handler bound to deps.
func Command(deps Deps) *dispatchers.Handler {
	return dispatchers.Command(dispatchers.CommandSpec{
		Name:    "log",
		Summary: "Show, clear or locate the log file",
		Doc: `Show, clear or locate the log file.
"log" prints the last -limit lines, "log clear" empties the file and
"log path" prints where it is. -format json prints parsed entries.`,
		Category: dispatchers.CategorySession,
		Signature: dispatchers.NewSignature().
			Optional("action", "show").
			Option("limit", defaultLogLimit).
			Option("format", "text").
			Cast("action", casters.Choice("show", "clear", "path")).
			Cast("limit", casters.Int).
			Cast("format", casters.Choice("text", "json")),
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			switch call.String("action") {
			case "clear":
				return clear(sh, deps)
			case "path":
				_, _ = sh.Println(deps.LogFilePath())
				return nil
			}
			return view(sh, call.Int("limit"), call.String("format") == "json", deps)
		},
	})
}

func view(sh *dispatchers.Shell, limit int, jsonOutput bool, deps Deps) error {
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		if jsonOutput {
			_, _ = sh.Println("[]")
		} else {
			_, _ = sh.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = sh.Println("[]")
		} else {
			_, _ = sh.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")

	if limit <= 0 {
		limit = defaultLogLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	if jsonOutput {
		return viewJSON(sh, lines)
	}

	var out bytes.Buffer
	for _, line := range lines {
		out.WriteString(colorizeLogLine(line))
		out.WriteString("\n")
	}
	sh.Pager(out.String())
	return nil
}

// logEntryRegex matches lines like: [2026-10-16 10:30:45] INFO: [tag] message
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(?:\[([^\]]+)\]\s*)?(.*)$`)

type logEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Tag       string `json:"tag,omitempty"`
	Message   string `json:"message"`
	Raw       bool   `json:"raw,omitempty"`
}

func parseLogLine(line string) logEntry {
	m := logEntryRegex.FindStringSubmatch(line)
	if m == nil {
		return logEntry{Message: line, Raw: true}
	}
	return logEntry{Timestamp: m[1], Level: m[2], Tag: m[3], Message: m[4]}
}

func viewJSON(sh *dispatchers.Shell, lines []string) error {
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, parseLogLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = sh.Println(string(data))
	return nil
}

func clear(sh *dispatchers.Shell, deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = sh.Println(style.Success("Log file cleared"))
	return nil
}

// colorizeLogLine colors a log line by its level.
func colorizeLogLine(line string) string {
	switch parseLogLine(line).Level {
	case "ERROR":
		return style.Error(line)
	case "WARN":
		return style.Warning(line)
	case "INFO":
		return style.Info(line)
	case "DEBUG":
		return style.Muted(line)
	}
	return line
}
