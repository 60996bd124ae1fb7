// Package theme lists the color themes and switches between them.
package theme

import (
	"github.com/footprint-tools/parsedcmd/internal/casters"
	"github.com/footprint-tools/parsedcmd/internal/dispatchers"
)

// Command returns the theme handler bound to deps.
func Command(deps Deps) *dispatchers.Handler {
	names := append(append([]string{}, deps.BaseNames...), deps.ThemeNames...)

	return dispatchers.Command(dispatchers.CommandSpec{
		Name:    "theme",
		Summary: "List color themes or switch to one",
		Doc: `List color themes or switch to one.
A base name such as "ocean" follows the terminal background;
"ocean-dark" and "ocean-light" pin a variant.`,
		Category: dispatchers.CategoryConfig,
		Signature: dispatchers.NewSignature().
			Optional("name", nil).
			Cast("name", casters.Choice(names...)),
		Action: func(sh *dispatchers.Shell, call *dispatchers.Call) error {
			if !call.Has("name") {
				return list(sh, deps)
			}
			return setTheme(sh, call.String("name"), deps)
		},
	})
}
