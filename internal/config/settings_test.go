package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "bool", key: "strip_nul", value: "false"},
		{name: "bad bool", key: "strip_nul", value: "maybe", wantErr: true},
		{name: "count", key: "history_limit", value: "0"},
		{name: "negative count", key: "history_limit", value: "-1", wantErr: true},
		{name: "choice", key: "cast_policy", value: "unless_default"},
		{name: "choice is case insensitive", key: "log_level", value: "DEBUG"},
		{name: "bad choice", key: "cast_policy", value: "sometimes", wantErr: true},
		{name: "color", key: "color_error", value: "196"},
		{name: "color out of range", key: "color_error", value: "256", wantErr: true},
		{name: "header bold", key: "color_header", value: "bold"},
		{name: "empty color", key: "color_info", value: ""},
		{name: "empty prefix", key: "option_prefix", value: " ", wantErr: true},
		{name: "free text", key: "prompt", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newTestProvider(t, ""))
	require.NoError(t, err)

	require.Equal(t, Settings{
		Prompt:         "(pcmd) ",
		OptionPrefix:   "-",
		StripNUL:       true,
		CastPolicy:     "input",
		ShowUsage:      true,
		RepeatEmpty:    false,
		HistoryEnabled: true,
		HistoryLimit:   1000,
		Pager:          "less -FRSX",
		Theme:          "default",
		EnableLog:      true,
		LogLevel:       "info",
	}, s)
}

func TestLoad_InvalidFallsBack(t *testing.T) {
	p := newTestProvider(t, "option_prefix=--\nhistory_limit=lots\nrepeat_empty=yes\n")

	s, err := Load(p)
	require.Error(t, err)
	require.ErrorContains(t, err, "history_limit")
	require.ErrorContains(t, err, "repeat_empty")

	require.Equal(t, "--", s.OptionPrefix)
	require.Equal(t, 1000, s.HistoryLimit)
	require.False(t, s.RepeatEmpty)
}
