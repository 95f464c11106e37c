package apperrors

import "fmt"

// ErrAuthFailed is returned when the media server rejects the API key.
type ErrAuthFailed struct {
	StatusCode int
}

// Error implements the error interface.
func (e *ErrAuthFailed) Error() string {
	return fmt.Sprintf("media server rejected credentials (status %d)", e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *ErrAuthFailed) Is(target error) bool {
	_, ok := target.(*ErrAuthFailed)
	return ok
}

// ErrUnexpectedStatus is returned when the media server answers with a status
// the client does not handle.
type ErrUnexpectedStatus struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatus) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatus)
	return ok
}

// Retryable reports whether the status indicates a transient server failure.
func (e *ErrUnexpectedStatus) Retryable() bool {
	return e.StatusCode >= 500
}

// ErrInvalidArgument is returned when a caller passes a value the listing cannot serve.
type ErrInvalidArgument struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidArgument) Is(target error) bool {
	_, ok := target.(*ErrInvalidArgument)
	return ok
}

// NewInvalidArgumentError creates a new ErrInvalidArgument.
func NewInvalidArgumentError(field, reason string) *ErrInvalidArgument {
	return &ErrInvalidArgument{Field: field, Reason: reason}
}
