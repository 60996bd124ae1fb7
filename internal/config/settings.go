package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/domain"
)

// Settings is the typed view of the configuration the shell runs with.
type Settings struct {
	Prompt       string
	OptionPrefix string
	StripNUL     bool
	CastPolicy   string
	ShowUsage    bool
	RepeatEmpty  bool

	HistoryEnabled bool
	HistoryLimit   int

	Pager string
	Theme string

	EnableLog bool
	LogLevel  string
}

type kind int

const (
	kindString kind = iota
	kindBool
	kindCount
	kindChoice
	kindColor
)

type rule struct {
	kind    kind
	choices []string
}

var rules = map[string]rule{
	"option_prefix":   {kind: kindString},
	"strip_nul":       {kind: kindBool},
	"cast_policy":     {kind: kindChoice, choices: []string{"input", "unless_default"}},
	"show_usage":      {kind: kindBool},
	"repeat_empty":    {kind: kindBool},
	"history_enabled": {kind: kindBool},
	"history_limit":   {kind: kindCount},
	"enable_log":      {kind: kindBool},
	"log_level":       {kind: kindChoice, choices: []string{"debug", "info", "warn", "warning", "error"}},
	"color_success":   {kind: kindColor},
	"color_warning":   {kind: kindColor},
	"color_error":     {kind: kindColor},
	"color_info":      {kind: kindColor},
	"color_muted":     {kind: kindColor},
	"color_header":    {kind: kindColor},
}

// Validate checks value against the declared type of key.
// Keys without a rule accept anything.
func Validate(key, value string) error {
	r, ok := rules[key]
	if !ok {
		return nil
	}

	switch r.kind {
	case kindBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("config: %s must be true or false, got %q", key, value)
		}
	case kindCount:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("config: %s must be a non-negative integer, got %q", key, value)
		}
	case kindChoice:
		if !slices.Contains(r.choices, strings.ToLower(value)) {
			return fmt.Errorf("config: %s must be one of %s, got %q", key, strings.Join(r.choices, ", "), value)
		}
	case kindColor:
		if value == "" || (key == "color_header" && value == "bold") {
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 255 {
			return fmt.Errorf("config: %s must be an ANSI color 0-255, got %q", key, value)
		}
	case kindString:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("config: %s must not be empty", key)
		}
	}
	return nil
}

// Load reads every setting from p. Invalid values fall back to their
// default and are reported together in the returned error.
func Load(p domain.ConfigProvider) (Settings, error) {
	var errs []error

	get := func(key string) string {
		value, _ := p.Get(key)
		if err := Validate(key, value); err != nil {
			errs = append(errs, err)
			value, _ = domain.GetDefaultValue(key)
		}
		return value
	}
	getBool := func(key string) bool {
		b, _ := strconv.ParseBool(get(key))
		return b
	}

	limit, _ := strconv.Atoi(get("history_limit"))

	s := Settings{
		Prompt:         get("prompt"),
		OptionPrefix:   get("option_prefix"),
		StripNUL:       getBool("strip_nul"),
		CastPolicy:     strings.ToLower(get("cast_policy")),
		ShowUsage:      getBool("show_usage"),
		RepeatEmpty:    getBool("repeat_empty"),
		HistoryEnabled: getBool("history_enabled"),
		HistoryLimit:   limit,
		Pager:          get("pager"),
		Theme:          get("theme"),
		EnableLog:      getBool("enable_log"),
		LogLevel:       strings.ToLower(get("log_level")),
	}

	return s, errors.Join(errs...)
}
