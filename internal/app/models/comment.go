package models

import "time"

// Comment belongs to a single announcement. Immutable after creation,
// removable by ID.
type Comment struct {
	ID             string
	AnnouncementID string
	AuthorName     string
	Text           string
	CreatedAt      time.Time
}
