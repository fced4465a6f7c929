package util

import "fmt"

// ErrorKind classifies command failures.
type ErrorKind string

const (
	KindPermissionDenied ErrorKind = "PERMISSION_DENIED"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindValidationFailed ErrorKind = "VALIDATION_FAILED"
	KindStateConflict    ErrorKind = "STATE_CONFLICT"
)

// CommandError standardizes handler failures. It never propagates past the
// dispatcher: each one becomes a single flat error record in the output and
// leaves the store untouched.
type CommandError struct {
	Kind    ErrorKind
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// NewPermissionDenied constructs a PERMISSION_DENIED error.
func NewPermissionDenied(format string, args ...any) *CommandError {
	return &CommandError{Kind: KindPermissionDenied, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound constructs a NOT_FOUND error.
func NewNotFound(format string, args ...any) *CommandError {
	return &CommandError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewValidationFailed constructs a VALIDATION_FAILED error.
func NewValidationFailed(format string, args ...any) *CommandError {
	return &CommandError{Kind: KindValidationFailed, Message: fmt.Sprintf(format, args...)}
}

// NewStateConflict constructs a STATE_CONFLICT error.
func NewStateConflict(format string, args ...any) *CommandError {
	return &CommandError{Kind: KindStateConflict, Message: fmt.Sprintf(format, args...)}
}
