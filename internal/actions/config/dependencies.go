package config

import (
	"github.com/footprint-tools/parsedcmd/internal/domain"
)

type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(string, string) error
	Unset  func(string) error
	Path   func() string

	// OnChange runs after a key was written or removed. May be nil.
	OnChange func(key string)
}

// pathProvider is a ConfigProvider that knows its file.
type pathProvider interface {
	domain.ConfigProvider
	Path() string
}

func DefaultDeps(p pathProvider) Deps {
	return Deps{
		Get:    p.Get,
		GetAll: p.GetAll,
		Set:    p.Set,
		Unset:  p.Unset,
		Path:   p.Path,
	}
}

func (d Deps) changed(key string) {
	if d.OnChange != nil {
		d.OnChange(key)
	}
}
