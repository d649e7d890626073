package render

import (
	"errors"
	"fmt"

	"github.com/willbeason/textbrot/pkg/palette"
	"github.com/willbeason/textbrot/pkg/plane"
)

// ErrInvalidConfig matches every *ConfigError under errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a configuration which must not be rendered.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Config is everything a render pass depends on. It is fixed for the
// duration of the pass.
type Config struct {
	Viewport      plane.Viewport
	MaxIterations int
	Palette       palette.Palette
}

func (c Config) Validate() error {
	if err := c.Viewport.Validate(); err != nil {
		var re *plane.RangeError
		if errors.As(err, &re) {
			return &ConfigError{Field: re.Field, Reason: re.Reason, Err: err}
		}
		return &ConfigError{Field: "viewport", Reason: err.Error(), Err: err}
	}

	if c.MaxIterations <= 0 {
		return &ConfigError{
			Field:  "max iterations",
			Reason: fmt.Sprintf("must be positive, got %d", c.MaxIterations),
		}
	}

	if err := c.Palette.Validate(); err != nil {
		return &ConfigError{Field: "palette", Reason: err.Error(), Err: err}
	}

	return nil
}
