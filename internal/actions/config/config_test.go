package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/parsedcmd/internal/config"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
	"github.com/footprint-tools/parsedcmd/internal/usage"
)

func newTestDeps(t *testing.T, lines ...string) (Deps, *config.Provider) {
	t.Helper()

	p := config.NewProviderAt(filepath.Join(t.TempDir(), ".pcmdrc"))
	if len(lines) > 0 {
		require.NoError(t, config.WriteLines(p.Path(), lines))
	}
	return DefaultDeps(p), p
}

func newShell(t *testing.T, deps Deps) (*dispatchers.Shell, *bytes.Buffer) {
	t.Helper()

	reg := dispatchers.NewRegistry()
	require.NoError(t, reg.Register(Command(deps)))

	var out bytes.Buffer
	return dispatchers.NewShell(reg, dispatchers.WithStdout(&out)), &out
}

// =========== GET TESTS ===========

func TestGet(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  string
		want  string
	}{
		{name: "default", line: "config prompt", want: "(pcmd) \n"},
		{name: "stored", lines: []string{"theme=neon"}, line: "config theme", want: "neon\n"},
		{name: "hidden when empty", line: "config color_info", want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := newTestDeps(t, tt.lines...)
			sh, out := newShell(t, deps)

			require.NoError(t, sh.Onecmd(tt.line))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestGet_InvalidKey(t *testing.T) {
	deps, _ := newTestDeps(t)
	sh, _ := newShell(t, deps)

	err := sh.Onecmd("config nonexistent")
	require.True(t, usage.Is(err, usage.ErrInvalidConfigKey))
	require.Contains(t, err.Error(), "nonexistent")
}

// =========== SET TESTS ===========

func TestSet(t *testing.T) {
	deps, p := newTestDeps(t)
	var changed []string
	deps.OnChange = func(key string) { changed = append(changed, key) }
	sh, out := newShell(t, deps)

	require.NoError(t, sh.Onecmd(`config prompt "pcmd> "`))
	require.Equal(t, "set prompt=pcmd> \n", out.String())
	require.Equal(t, []string{"prompt"}, changed)

	value, ok := p.Get("prompt")
	require.True(t, ok)
	require.Equal(t, "pcmd> ", value)
}

func TestSet_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{name: "invalid key", line: "config colour red", wantErr: "'colour' is not a valid config key"},
		{name: "invalid bool", line: "config show_usage maybe", wantErr: "show_usage must be true or false"},
		{name: "invalid choice", line: "config cast_policy never", wantErr: "cast_policy must be one of"},
		{name: "invalid color", line: "config color_error 300", wantErr: "ANSI color 0-255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := newTestDeps(t)
			deps.OnChange = func(string) { t.Fatal("OnChange called for a rejected value") }
			sh, out := newShell(t, deps)

			err := sh.Onecmd(tt.line)
			require.ErrorContains(t, err, tt.wantErr)
			require.Empty(t, out.String())
		})
	}
}

func TestSet_WriteError(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.Set = func(string, string) error { return errors.New("disk full") }
	sh, _ := newShell(t, deps)

	require.ErrorContains(t, sh.Onecmd("config theme neon"), "disk full")
}

// =========== UNSET TESTS ===========

func TestUnset(t *testing.T) {
	deps, p := newTestDeps(t, "theme=neon", "prompt=> ")
	sh, out := newShell(t, deps)

	require.NoError(t, sh.Onecmd("config -unset theme"))
	require.Equal(t, "unset theme (default default)\n", out.String())

	value, _ := p.Get("theme")
	require.Equal(t, "default", value)

	lines, err := config.ReadLines(p.Path())
	require.NoError(t, err)
	require.Equal(t, []string{"prompt=> "}, lines)
}

func TestUnset_EmptyDefault(t *testing.T) {
	deps, _ := newTestDeps(t, "color_info=12")
	sh, out := newShell(t, deps)

	require.NoError(t, sh.Onecmd("config -unset color_info"))
	require.Equal(t, `unset color_info (default "")`+"\n", out.String())
}

func TestUnset_Errors(t *testing.T) {
	deps, _ := newTestDeps(t)
	sh, _ := newShell(t, deps)

	err := sh.Onecmd("config -unset bogus")
	require.True(t, usage.Is(err, usage.ErrInvalidConfigKey))

	err = sh.Onecmd("config -unset theme prompt")
	require.True(t, usage.Is(err, usage.ErrInvalidFlag))
}

// =========== LIST TESTS ===========

func TestList(t *testing.T) {
	deps, p := newTestDeps(t, "theme=ocean", "color_error=196")
	sh, out := newShell(t, deps)

	require.NoError(t, sh.Onecmd("config"))

	got := out.String()
	require.True(t, strings.HasPrefix(got, "# "+p.Path()+"\n"))
	require.Contains(t, got, "\nShell\nprompt=(pcmd) \n")
	require.Contains(t, got, "theme=ocean\n")
	require.Contains(t, got, "\nColor Overrides\ncolor_error=196\n")
	require.NotContains(t, got, "color_info")
}

func TestList_ReadError(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.GetAll = func() (map[string]string, error) {
		return nil, errors.New("permission denied")
	}
	sh, _ := newShell(t, deps)

	require.ErrorContains(t, sh.Onecmd("config"), "permission denied")
}
