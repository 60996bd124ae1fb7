package config

import "strings"

// Set replaces the value of key in lines, keeping any inline comment,
// or appends key=value. It reports whether an existing line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	value = quote(value)

	for i, line := range lines {
		k, rest, ok := splitEntry(line)
		if !ok || k != key {
			continue
		}

		if _, comment, found := strings.Cut(rest, " #"); found && !strings.HasPrefix(strings.TrimSpace(rest), `"`) {
			lines[i] = key + "=" + value + " #" + comment
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// Unset removes every line assigning key. It reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := splitEntry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// splitEntry splits an assignment line. Comments and blank lines are not entries.
func splitEntry(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, rest, ok = strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), rest, true
}
