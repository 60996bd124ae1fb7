package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		lines        []string
		key          string
		value        string
		want         []string
		wantReplaced bool
	}{
		{
			name:  "append to empty",
			key:   "theme",
			value: "neon",
			want:  []string{"theme=neon"},
		},
		{
			name:         "replace existing",
			lines:        []string{"# header", "theme=default", "pager=cat"},
			key:          "theme",
			value:        "neon",
			want:         []string{"# header", "theme=neon", "pager=cat"},
			wantReplaced: true,
		},
		{
			name:         "keeps inline comment",
			lines:        []string{"history_limit=1000 # entries"},
			key:          "history_limit",
			value:        "50",
			want:         []string{"history_limit=50 # entries"},
			wantReplaced: true,
		},
		{
			name:  "quotes surrounding whitespace",
			key:   "prompt",
			value: "> ",
			want:  []string{`prompt="> "`},
		},
		{
			name:  "commented key is not replaced",
			lines: []string{"# color_error="},
			key:   "color_error",
			value: "9",
			want:  []string{"# color_error=", "color_error=9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := Set(tt.lines, tt.key, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantReplaced, replaced)
		})
	}
}

func TestUnset(t *testing.T) {
	lines := []string{"# theme=old", "theme=neon", "pager=cat", "theme=mono"}

	got, removed := Unset(lines, "theme")
	require.True(t, removed)
	require.Equal(t, []string{"# theme=old", "pager=cat"}, got)

	got, removed = Unset(got, "theme")
	require.False(t, removed)
	require.Equal(t, []string{"# theme=old", "pager=cat"}, got)
}
