package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrTokenize
	ErrBind
	ErrCast
	ErrWrapperCycle
	ErrInvalidConfigKey
	ErrFailedConfigPath
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidFlag:
		return "invalid flag"
	case ErrMissingArgument:
		return "missing argument"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrTokenize:
		return "tokenize"
	case ErrBind:
		return "bind"
	case ErrCast:
		return "cast"
	case ErrWrapperCycle:
		return "wrapper cycle"
	case ErrInvalidConfigKey:
		return "invalid config key"
	case ErrFailedConfigPath:
		return "config path"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Wrapper cycle (programming error in a handler chain)
//	  - Invalid config key
//	  - Failed config path
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Tokenize, bind and cast failures
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrTokenize:         2,
	ErrBind:             2,
	ErrCast:             2,
	ErrWrapperCycle:     1,
	ErrInvalidConfigKey: 1,
	ErrFailedConfigPath: 1,
}

// Error represents a user-facing usage error with semantic type information.
//
// Message is the reason shown to the user. The remaining fields are filled
// by the constructors that have the information: Tokens for tokenize and
// bind failures, Param/Value/Caster for cast failures.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero

	Tokens      []string
	Param       string
	Value       string
	Caster      string
	Suggestions []string

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Is reports whether err is a usage error of the given kind.
func Is(err error, kind ErrorKind) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Kind == kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
