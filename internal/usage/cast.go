package usage

import "fmt"

// Cast is returned when a caster rejects a value bound to param.
func Cast(param, value, caster string, err error) *Error {
	return &Error{
		Kind:    ErrCast,
		Message: fmt.Sprintf("cannot cast %q with %s for argument '%s': %v", value, caster, param, err),
		Param:   param,
		Value:   value,
		Caster:  caster,
		Err:     err,
	}
}
