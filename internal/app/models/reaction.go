package models

import "time"

// ReactionType is one of the three supported reactions.
type ReactionType string

const (
	ReactionUp    ReactionType = "up"
	ReactionDown  ReactionType = "down"
	ReactionHeart ReactionType = "heart"
)

// Valid reports whether t is one of the known reaction types.
func (t ReactionType) Valid() bool {
	return t == ReactionUp || t == ReactionDown || t == ReactionHeart
}

// Reaction records a user's current reaction on an announcement.
// At most one reaction exists per (AnnouncementID, UserID) pair; setting a
// new one replaces the previous row.
type Reaction struct {
	ID             string
	AnnouncementID string
	UserID         string
	Type           ReactionType
	CreatedAt      time.Time
}

// ReactionCounts holds the per-type reaction totals for one announcement.
type ReactionCounts struct {
	Up    int `json:"up"`
	Down  int `json:"down"`
	Heart int `json:"heart"`
}
