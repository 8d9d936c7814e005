package level

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel behind every ConfigError
var ErrInvalidConfig = errors.New("invalid level config")

// ConfigError reports an invalid generator parameter
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid level config: %s: %s", e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidConfig)
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErr(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
