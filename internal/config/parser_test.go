package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: []string{},
			want:  map[string]string{},
		},
		{
			name:  "single key-value",
			lines: []string{"key=value"},
			want:  map[string]string{"key": "value"},
		},
		{
			name:  "ignores blank and comment lines",
			lines: []string{"# comment", "key1=value1", "", "   ", "  # indented", "key2=value2"},
			want:  map[string]string{"key1": "value1", "key2": "value2"},
		},
		{
			name:  "trims whitespace around key and value",
			lines: []string{"  key1  =  value1  ", "key2=  value2"},
			want:  map[string]string{"key1": "value1", "key2": "value2"},
		},
		{
			name:  "equals sign in value",
			lines: []string{"equation=x=y+z", "base64=SGVsbG8="},
			want:  map[string]string{"equation": "x=y+z", "base64": "SGVsbG8="},
		},
		{
			name:  "quoted value keeps whitespace",
			lines: []string{`prompt="(pcmd) "`},
			want:  map[string]string{"prompt": "(pcmd) "},
		},
		{
			name:  "quoted value keeps hash",
			lines: []string{`prompt="a # b" # trailing`},
			want:  map[string]string{"prompt": "a # b"},
		},
		{
			name:  "inline comment stripped",
			lines: []string{"history_limit=50 # keep it small"},
			want:  map[string]string{"history_limit": "50"},
		},
		{
			name:  "hash without space is part of the value",
			lines: []string{"special=!@#$%^&*()"},
			want:  map[string]string{"special": "!@#$%^&*()"},
		},
		{
			name:  "empty value is valid",
			lines: []string{"key="},
			want:  map[string]string{"key": ""},
		},
		{
			name:  "BOM is stripped from first line",
			lines: []string{"\uFEFFkey1=value1", "key2=value2"},
			want:  map[string]string{"key1": "value1", "key2": "value2"},
		},
		{
			name:  "duplicate keys - last one wins",
			lines: []string{"key=value1", "key=value2"},
			want:  map[string]string{"key": "value2"},
		},
		{
			name:    "line without equals sign",
			lines:   []string{"key1=value1", "invalid_line"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultLines_RoundTrip(t *testing.T) {
	cfg, err := Parse(DefaultLines())
	require.NoError(t, err)

	require.Equal(t, "(pcmd) ", cfg["prompt"])
	require.Equal(t, "-", cfg["option_prefix"])
	require.Equal(t, "less -FRSX", cfg["pager"])
	require.NotContains(t, cfg, "color_error")
}
