package apperrors

import "errors"

// Resource errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrReactionNotFound     = errors.New("reaction not found")
)

// Request errors
var (
	ErrCommentQuotaExceeded = errors.New("comment quota exceeded")
	ErrMissingUserID        = errors.New("user identity header missing")
	ErrValidationFailed     = errors.New("validation failed")
	ErrBadRequest           = errors.New("bad request")
)

// CustomError carries a sentinel plus request-specific context.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel so errors.Is keeps working.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails attaches context details to the error.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewNotFoundError wraps a not-found sentinel with a message.
func NewNotFoundError(sentinel error, message string) error {
	return &CustomError{
		Err:     sentinel,
		Message: message,
	}
}

// NewQuotaExceededError creates the comment quota error with a message.
func NewQuotaExceededError(message string) error {
	return &CustomError{
		Err:     ErrCommentQuotaExceeded,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
