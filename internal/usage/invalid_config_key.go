package usage

import "fmt"

// InvalidConfigKey is returned for a config key that is not declared.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("pcmd: '%s' is not a valid config key", key),
	}
}
