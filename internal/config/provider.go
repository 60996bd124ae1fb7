package config

import (
	"github.com/footprint-tools/parsedcmd/internal/domain"
	"github.com/footprint-tools/parsedcmd/internal/paths"
	"github.com/footprint-tools/parsedcmd/internal/usage"
)

// Provider reads and edits one config file and implements domain.ConfigProvider.
// Declared keys without a file entry fall back to their defaults.
type Provider struct {
	path string
}

// NewProvider returns a Provider for ~/.pcmdrc.
func NewProvider() (*Provider, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, &usage.Error{Kind: usage.ErrFailedConfigPath, Message: "pcmd: could not resolve config path", Err: err}
	}
	return NewProviderAt(path), nil
}

// NewProviderAt returns a Provider for the file at path.
func NewProviderAt(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the config file location.
func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) read() (map[string]string, error) {
	lines, err := ReadLines(p.path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Get returns the file value for key, or its default.
// An unreadable file behaves like an empty one.
func (p *Provider) Get(key string) (string, bool) {
	if cfg, err := p.read(); err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}
	return domain.GetDefaultValue(key)
}

// GetAll returns every declared key merged with the file's entries.
func (p *Provider) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	cfg, err := p.read()
	if err != nil {
		return result, err
	}
	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}

// Set validates and stores a value.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	if err := Validate(key, value); err != nil {
		return err
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

// Unset removes a stored value so the default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, removed := Unset(lines, key)
		if !removed {
			return nil
		}
		return WriteLines(p.path, lines)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
