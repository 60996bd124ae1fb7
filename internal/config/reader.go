package config

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/log"
)

// ReadLines returns the raw lines of the config file at path.
// A missing file reads as no lines.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if info, err := file.Stat(); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			log.Warn("config: could not set permissions on config file: %v", err)
		}
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Init writes a commented config file with every visible default
// if path does not exist or is empty. It reports whether a file was written.
func Init(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return false, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if err := WriteLines(path, DefaultLines()); err != nil {
		return false, err
	}
	return true, nil
}

// DefaultLines renders the default config file, grouped by section.
func DefaultLines() []string {
	lines := []string{
		"# pcmd configuration",
		"# Edit values below or use: config -set <key> <value>",
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		keys := bySection[section]
		if len(keys) == 0 {
			continue
		}

		lines = append(lines, "", "# "+section)
		for _, key := range keys {
			// Optional overrides stay commented out
			if key.HideIfEmpty {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}
			lines = append(lines, key.Name+"="+quote(key.Default))
		}
	}

	return lines
}

// quote wraps values whose whitespace would otherwise be trimmed by Parse.
func quote(value string) string {
	if value != strings.TrimSpace(value) || strings.Contains(value, " #") {
		return `"` + value + `"`
	}
	return value
}
