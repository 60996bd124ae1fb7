package config

import (
	"fmt"
	"strings"
)

// Parse turns key=value lines into a map.
//
// Blank lines and lines starting with # are skipped. Keys and values are
// trimmed, a value wrapped in double quotes keeps its inner whitespace, and
// an unquoted value loses any trailing " # comment". The last duplicate wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, trimmed)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = parseValue(value)
	}

	return cfg, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)

	if len(value) >= 2 && strings.HasPrefix(value, `"`) {
		if end := strings.Index(value[1:], `"`); end >= 0 {
			return value[1 : end+1]
		}
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value
}
