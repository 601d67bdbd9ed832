package sfoglia

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user cancelled an operation (pressed back, etc.).
// This is a normal flow control error, not an infrastructure failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InvalidConfigurationError reports that a widget was constructed with
// inputs that cannot form a valid component, such as mismatched option
// and selection lengths. It is fatal to the widget: rendering must not
// proceed, and the inputs are never clamped or padded to fit.
type InvalidConfigurationError struct {
	Op  string // Operation that failed (e.g., "new_segmented_selector")
	Err error  // Underlying error
}

func (e *InvalidConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// NewInvalidConfigurationError creates a new configuration error.
func NewInvalidConfigurationError(op string, err error) *InvalidConfigurationError {
	return &InvalidConfigurationError{Op: op, Err: err}
}

// IsInvalidConfiguration checks if an error is a configuration error.
func IsInvalidConfiguration(err error) bool {
	var configErr *InvalidConfigurationError
	return errors.As(err, &configErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
