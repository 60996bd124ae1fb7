package usage

import "fmt"

// WrapperCycle is returned when following a handler's wrapped links
// comes back to a handler already visited.
func WrapperCycle(handler string) *Error {
	return &Error{
		Kind:    ErrWrapperCycle,
		Message: fmt.Sprintf("wrapper chain of '%s' contains a cycle", handler),
	}
}
