package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies a failure reported by one of the remote services.
type Kind int

const (
	// KindTransport covers every failure that is neither a timeout nor a
	// validation failure.
	KindTransport Kind = iota
	// KindTimeout means the remote service did not answer in time.
	KindTimeout
	// KindValidation means the service answered but the payload was unusable.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindValidation:
		return "validation"
	default:
		return "transport"
	}
}

// ConfigError represents a user configuration error, such as a missing or
// malformed value in the config file.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// TimeoutError reports that an operation against a remote service timed out.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Cause is the underlying error, if any.
	Cause error
}

func (e TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s timed out: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s timed out", e.Operation)
}

func (e TimeoutError) Unwrap() error { return e.Cause }

// ValidationError represents a payload that arrived but cannot be used.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// Classify maps err onto a Kind. Timeouts are recognised anywhere in the
// chain, whether they come from a TimeoutError, a net.Error or an expired
// context deadline.
func Classify(err error) Kind {
	if err == nil {
		return KindTransport
	}
	var te TimeoutError
	if errors.As(err, &te) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ve ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	return KindTransport
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
