// Package apperrors tests verify the custom error types, their Error()
// messages, Is() matching semantics and compatibility with errors.Is()
// through fmt.Errorf wrapping.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrAuthFailed(t *testing.T) {
	t.Parallel()
	err := &ErrAuthFailed{StatusCode: 401}

	if got := err.Error(); got != "media server rejected credentials (status 401)" {
		t.Errorf("Error() = %q", got)
	}

	t.Run("matches through fmt.Errorf wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("list items: %w", err)
		if !errors.Is(wrapped, &ErrAuthFailed{}) {
			t.Error("expected errors.Is to match *ErrAuthFailed through wrapping")
		}
	})

	t.Run("errors.As extracts status", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", err))
		var target *ErrAuthFailed
		if !errors.As(wrapped, &target) || target.StatusCode != 401 {
			t.Errorf("expected errors.As to find status 401, got %+v", target)
		}
	})
}

func TestErrUnexpectedStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"bad request", 400, false},
		{"not found", 404, false},
		{"internal", 500, true},
		{"bad gateway", 502, true},
		{"unavailable", 503, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := &ErrUnexpectedStatus{StatusCode: tt.status, URL: "http://emby/Items"}
			if err.Retryable() != tt.retryable {
				t.Errorf("Retryable() = %v, want %v", err.Retryable(), tt.retryable)
			}
			want := fmt.Sprintf("unexpected status %d from http://emby/Items", tt.status)
			if err.Error() != want {
				t.Errorf("Error() = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestErrInvalidArgument(t *testing.T) {
	t.Parallel()
	err := NewInvalidArgumentError("limit", "must not be negative")

	if got := err.Error(); got != "invalid limit: must not be negative" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(fmt.Errorf("wrap: %w", err), &ErrInvalidArgument{}) {
		t.Error("expected errors.Is to match *ErrInvalidArgument through wrapping")
	}
}

func TestErrorTypes_CrossTypeIsolation(t *testing.T) {
	t.Parallel()
	errs := []error{
		&ErrAuthFailed{StatusCode: 401},
		&ErrUnexpectedStatus{StatusCode: 500},
		&ErrInvalidArgument{Field: "limit"},
	}

	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("expected errors.Is(%T, %T) to be false", a, b)
			}
		}
	}
}

func TestErrorTypes_DoNotMatchPlainErrors(t *testing.T) {
	t.Parallel()
	plain := errors.New("some error")
	for _, err := range []error{&ErrAuthFailed{}, &ErrUnexpectedStatus{}, &ErrInvalidArgument{}} {
		if errors.Is(err, plain) {
			t.Errorf("expected %T not to match a plain error", err)
		}
	}
}
