// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a value that is out of range, unparsable,
	// or a configuration file that cannot be read.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedVersion indicates a configuration schema version whose
	// major component this build does not understand.
	ErrUnsupportedVersion = errors.New("config: unsupported version")
)

// invalidf wraps ErrInvalidConfig with a field-specific message.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
