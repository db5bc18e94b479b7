package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeNetError struct{ timeout bool }

func (e fakeNetError) Error() string   { return "net failure" }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return false }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindTransport},
		{"plain", errors.New("boom"), KindTransport},
		{"timeout error", TimeoutError{Operation: "fetch"}, KindTimeout},
		{"wrapped timeout error", fmt.Errorf("fetching: %w", TimeoutError{Operation: "fetch"}), KindTimeout},
		{"net timeout", fmt.Errorf("fetching: %w", fakeNetError{timeout: true}), KindTimeout},
		{"net non-timeout", fakeNetError{timeout: false}, KindTransport},
		{"deadline", fmt.Errorf("fetching: %w", context.DeadlineExceeded), KindTimeout},
		{"canceled", context.Canceled, KindTransport},
		{"validation", ValidationError{Field: "url", Message: "empty"}, KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestTimeoutErrorUnwrap(t *testing.T) {
	cause := errors.New("slow")
	err := TimeoutError{Operation: "cat fact", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("expected TimeoutError to unwrap to its cause")
	}
	if err.Error() != "cat fact timed out: slow" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ctx") != nil {
		t.Error("expected nil for nil error")
	}
	base := errors.New("base")
	err := WrapError(base, "loading %s", "config")
	if err.Error() != "loading config: base" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base")
	}
}

func TestIsContextError(t *testing.T) {
	if !IsContextError(fmt.Errorf("x: %w", context.Canceled)) {
		t.Error("expected canceled to be a context error")
	}
	if IsContextError(errors.New("other")) {
		t.Error("expected plain error not to be a context error")
	}
}
