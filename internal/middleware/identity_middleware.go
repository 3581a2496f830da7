package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
)

// UserIDHeader carries the caller's identity. There is no session layer;
// the header value is trusted as-is.
const UserIDHeader = "x-user-id"

const userIDKey = "userID"

// RequireUserID rejects requests without the identity header and stores
// the value in the context for handlers downstream.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrorCodeBadRequest, "x-user-id header is required", c.Request.URL.Path))
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity stored by RequireUserID, or the raw header
// value on routes where the header is optional.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return c.GetHeader(UserIDHeader)
}
