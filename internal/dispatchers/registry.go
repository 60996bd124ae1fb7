package dispatchers

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Registry holds the commands of a shell by name.
type Registry struct {
	handlers map[string]*Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]*Handler)}
}

// Register adds handlers to the registry. It rejects empty or duplicate
// names, handlers without an action, wrapper chains that loop and
// malformed signatures.
func (r *Registry) Register(handlers ...*Handler) error {
	for _, h := range handlers {
		if h == nil {
			return fmt.Errorf("register: nil handler")
		}
		if h.Name == "" || strings.ContainsAny(h.Name, " \t\n") {
			return fmt.Errorf("register: invalid command name %q", h.Name)
		}
		if _, exists := r.handlers[h.Name]; exists {
			return fmt.Errorf("register: command %q already registered", h.Name)
		}
		if h.Action == nil {
			return fmt.Errorf("register: command %q has no action", h.Name)
		}

		res, err := Resolve(h)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		if !res.Raw {
			if err := res.Signature.Validate(); err != nil {
				return fmt.Errorf("register %q: %w", h.Name, err)
			}
		}

		r.handlers[h.Name] = h
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(handlers ...*Handler) {
	if err := r.Register(handlers...); err != nil {
		panic(err)
	}
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (*Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.handlers))
}

// Handlers returns the registered handlers sorted by name.
func (r *Registry) Handlers() []*Handler {
	names := r.Names()
	out := make([]*Handler, len(names))
	for i, name := range names {
		out[i] = r.handlers[name]
	}
	return out
}
