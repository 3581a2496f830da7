package models

import "time"

// AnnouncementStatus is the lifecycle state of an announcement.
type AnnouncementStatus string

const (
	AnnouncementStatusActive AnnouncementStatus = "active"
	AnnouncementStatusClosed AnnouncementStatus = "closed"
)

// Valid reports whether s is one of the known statuses.
func (s AnnouncementStatus) Valid() bool {
	return s == AnnouncementStatusActive || s == AnnouncementStatusClosed
}

// Announcement is a noticeboard post. Status is the only mutable field;
// announcements are never deleted. UpdatedAt tracks the last status change
// so a status flip counts as board activity.
type Announcement struct {
	ID          string
	Title       string
	Description string
	Status      AnnouncementStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
