package dto

import "time"

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrorCodeBadRequest      ErrorCode = "BAD_REQUEST"
	ErrorCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"
	ErrorCodeInternalServer  ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse is the error body every failing endpoint returns.
type ErrorResponse struct {
	Code      ErrorCode   `json:"code" example:"NOT_FOUND"`
	Message   string      `json:"message" example:"Announcement not found"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
	Path      string      `json:"path" example:"/api/v1/announcements/42"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message, path string) *ErrorResponse {
	return &ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Path:      path,
	}
}

// WithDetails adds additional details to the error response
func (e *ErrorResponse) WithDetails(details interface{}) *ErrorResponse {
	e.Details = details
	return e
}
