// Package repositories holds the in-memory entity store. Each repository
// owns one keyed collection guarded by its own mutex; every operation is a
// single synchronous transaction against that collection.
package repositories

// Repositories bundles all entity stores for dependency injection.
type Repositories struct {
	Announcements *AnnouncementRepository
	Comments      *CommentRepository
	Reactions     *ReactionRepository
}

// NewRepositories creates the full set of empty in-memory stores.
func NewRepositories() *Repositories {
	return &Repositories{
		Announcements: NewAnnouncementRepository(),
		Comments:      NewCommentRepository(),
		Reactions:     NewReactionRepository(),
	}
}
