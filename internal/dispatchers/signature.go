package dispatchers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/footprint-tools/parsedcmd/internal/casters"
)

// Param is one named parameter of a command signature.
type Param struct {
	Name       string
	HasDefault bool
	Default    any

	// NamedOnly parameters can only be supplied with an option token
	// (-name value). They always carry a default.
	NamedOnly bool
}

// Signature describes the parameters a handler accepts after the shell
// argument.
//
// Positional parameters are bound from tokens in declaration order. If
// Variadic is set, surplus positional tokens are collected under that
// name. If VariadicNamed is set, named values that match no declared
// parameter are collected under that name instead of failing.
type Signature struct {
	Params        []Param
	Variadic      string
	VariadicNamed string

	// Casters maps a parameter name (including Variadic and
	// VariadicNamed) to the caster applied to input-sourced values.
	Casters map[string]casters.Caster
}

// NewSignature returns an empty signature ready for chaining.
func NewSignature() *Signature {
	return &Signature{Casters: map[string]casters.Caster{}}
}

// Arg declares a required positional parameter.
func (s *Signature) Arg(name string) *Signature {
	s.Params = append(s.Params, Param{Name: name})
	return s
}

// Optional declares a positional parameter with a default.
func (s *Signature) Optional(name string, def any) *Signature {
	s.Params = append(s.Params, Param{Name: name, HasDefault: true, Default: def})
	return s
}

// Option declares a named-only parameter with a default.
func (s *Signature) Option(name string, def any) *Signature {
	s.Params = append(s.Params, Param{Name: name, HasDefault: true, Default: def, NamedOnly: true})
	return s
}

// Rest declares the variadic positional collector.
func (s *Signature) Rest(name string) *Signature {
	s.Variadic = name
	return s
}

// RestNamed declares the variadic named collector.
func (s *Signature) RestNamed(name string) *Signature {
	s.VariadicNamed = name
	return s
}

// Cast attaches a caster to a parameter.
func (s *Signature) Cast(name string, c casters.Caster) *Signature {
	if s.Casters == nil {
		s.Casters = map[string]casters.Caster{}
	}
	s.Casters[name] = c
	return s
}

// NamedOnlyFrom marks the trailing defaulted positional parameters with
// the given names as named-only. It is how a handler declared with plain
// defaults opts some of them out of positional binding.
func (s *Signature) NamedOnlyFrom(names ...string) *Signature {
	for i := range s.Params {
		if slices.Contains(names, s.Params[i].Name) {
			s.Params[i].NamedOnly = true
		}
	}
	return s
}

// Positional returns the parameters bindable by position, in order.
func (s *Signature) Positional() []Param {
	var out []Param
	for _, p := range s.Params {
		if !p.NamedOnly {
			out = append(out, p)
		}
	}
	return out
}

// NamedOnly returns the named-only parameters, in declaration order.
func (s *Signature) NamedOnly() []Param {
	var out []Param
	for _, p := range s.Params {
		if p.NamedOnly {
			out = append(out, p)
		}
	}
	return out
}

// Param looks a parameter up by name.
func (s *Signature) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// IsNamedOnly reports whether name is a named-only parameter.
func (s *Signature) IsNamedOnly(name string) bool {
	p, ok := s.Param(name)
	return ok && p.NamedOnly
}

// Caster returns the caster for name, or nil.
func (s *Signature) Caster(name string) casters.Caster {
	if s.Casters == nil {
		return nil
	}
	return s.Casters[name]
}

// Validate checks that the signature is well formed.
func (s *Signature) Validate() error {
	seen := make(map[string]bool)
	names := make([]string, 0, len(s.Params)+2)
	for _, p := range s.Params {
		names = append(names, p.Name)
	}
	if s.Variadic != "" {
		names = append(names, s.Variadic)
	}
	if s.VariadicNamed != "" {
		names = append(names, s.VariadicNamed)
	}

	for _, name := range names {
		if name == "" {
			return fmt.Errorf("signature: empty parameter name")
		}
		if strings.ContainsAny(name, " \t\n") {
			return fmt.Errorf("signature: parameter name %q contains whitespace", name)
		}
		if seen[name] {
			return fmt.Errorf("signature: duplicate parameter %q", name)
		}
		seen[name] = true
	}

	defaulted := false
	for _, p := range s.Params {
		if p.NamedOnly {
			if !p.HasDefault {
				return fmt.Errorf("signature: named-only parameter %q has no default", p.Name)
			}
			continue
		}
		if p.HasDefault {
			defaulted = true
		} else if defaulted {
			return fmt.Errorf("signature: required parameter %q follows a parameter with a default", p.Name)
		}
	}

	for name := range s.Casters {
		if !seen[name] {
			return fmt.Errorf("signature: caster for undeclared parameter %q", name)
		}
	}
	return nil
}

var emptySignature = &Signature{}
