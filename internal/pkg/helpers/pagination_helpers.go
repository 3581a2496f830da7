package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParseCursorParams extracts the cursor and limit query parameters.
// An absent cursor means "start from the newest comment".
func ParseCursorParams(c *gin.Context) (cursor string, limit int) {
	cursor = c.Query("cursor")

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return cursor, limit
}

// PageAfterCursor slices one page out of comments, which must already be
// sorted newest first. The cursor is the ID of the last comment the caller
// has seen; the page resumes after it. A cursor that matches no comment
// restarts from the top of the list. nextCursor is the ID of the last
// returned comment, and only when the page came back full; a short page
// means the list is exhausted.
func PageAfterCursor(comments []*models.Comment, cursor string, limit int) (page []*models.Comment, nextCursor string) {
	start := 0
	if cursor != "" {
		for i, c := range comments {
			if c.ID == cursor {
				start = i + 1
				break
			}
		}
	}

	if start >= len(comments) {
		return []*models.Comment{}, ""
	}

	end := start + limit
	if end > len(comments) {
		end = len(comments)
	}

	page = comments[start:end]
	if len(page) == limit {
		nextCursor = page[len(page)-1].ID
	}
	return page, nextCursor
}
