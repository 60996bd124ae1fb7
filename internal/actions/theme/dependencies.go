package theme

import (
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/ui/style"
)

type Deps struct {
	Get        func(string) (string, bool)
	Set        func(string, string) error
	OnChange   func(key string)
	Resolve    func(string) string
	BaseNames  []string
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

func DefaultDeps(p domain.ConfigProvider) Deps {
	return Deps{
		Get:        p.Get,
		Set:        p.Set,
		Resolve:    style.ResolveThemeName,
		BaseNames:  style.BaseThemeNames,
		ThemeNames: style.ThemeNames, // All variants (dark/light) explicitly
		Themes:     style.Themes,
	}
}
