package usage

import "fmt"

// MissingArgument is returned when a required parameter received no value.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("missing required argument '%s'", arg),
	}
}
