package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to the HTTP error contract. Errors
// propagate here unmodified from the point of detection; nothing is
// retried or swallowed.
func HandleAPIError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	var details map[string]interface{}
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		details = custom.Details
	}

	respond := func(status int, code dto.ErrorCode) {
		resp := dto.NewErrorResponse(code, err.Error(), path)
		if details != nil {
			resp = resp.WithDetails(details)
		}
		c.JSON(status, resp)
	}

	switch {
	case errors.Is(err, apperrors.ErrAnnouncementNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrReactionNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound)
	case errors.Is(err, apperrors.ErrCommentQuotaExceeded):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden)
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidation)
	case errors.Is(err, apperrors.ErrMissingUserID),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeBadRequest)
	default:
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error", path))
	}
}

// HandleBindingError turns a gin binding failure into a 400
// VALIDATION_ERROR with one detail entry per failed field.
func HandleBindingError(c *gin.Context, err error) {
	resp := dto.NewErrorResponse(dto.ErrorCodeValidation, "Invalid request body", c.Request.URL.Path)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = formatValidationError(fe)
		}
		resp = resp.WithDetails(fields)
	} else {
		resp = resp.WithDetails(err.Error())
	}

	c.JSON(http.StatusBadRequest, resp)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
