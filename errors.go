package meshbench

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when an image dimension is not positive.
var ErrInvalidSize = errors.New("image dimensions must be positive")

// ConfigError reports an invalid user supplied setting. It is detected before
// any image is produced.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
