package errors

import "fmt"

// ErrorCode represents a gitjournal error code.
type ErrorCode string

const (
	ErrNotRepository   ErrorCode = "NOT_A_REPOSITORY"  // 400
	ErrNoBranch        ErrorCode = "NO_BRANCH"         // 400
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"   // 400
	ErrJournalNotFound ErrorCode = "JOURNAL_NOT_FOUND" // 404
	ErrInternal        ErrorCode = "INTERNAL"          // 500
)

// JournalError represents a structured error with code, status, and details.
type JournalError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *JournalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNotRepository creates an error for when the working directory is not
// inside a git repository.
func NewNotRepository() *JournalError {
	return &JournalError{
		Code:    ErrNotRepository,
		Status:  400,
		Message: "not in a git repository",
	}
}

// NewNoBranch creates an error for when the current branch cannot be
// determined (unborn HEAD, or git itself is unavailable).
func NewNoBranch() *JournalError {
	return &JournalError{
		Code:    ErrNoBranch,
		Status:  400,
		Message: "could not determine current branch",
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *JournalError {
	return &JournalError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewJournalNotFound creates a 404 error for when no journal exists for the
// given branch.
func NewJournalNotFound(branch string) *JournalError {
	return &JournalError{
		Code:    ErrJournalNotFound,
		Status:  404,
		Message: fmt.Sprintf("no journal found for branch %q", branch),
		Details: map[string]any{"branch": branch},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *JournalError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &JournalError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a JournalError with the given code.
func Is(err error, code ErrorCode) bool {
	if jErr, ok := err.(*JournalError); ok {
		return jErr.Code == code
	}
	return false
}
