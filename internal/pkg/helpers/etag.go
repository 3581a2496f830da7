package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/5-harshit-shrivastava/GoBaseraInterview/internal/app/models/dto"
)

// ComputeSummaryETag hashes the activity-relevant fields of every summary in
// order. Field order and formatting are fixed, so the same board state always
// reproduces the identical tag and any change to a count, reaction or
// lastActivityAt yields a different one.
func ComputeSummaryETag(summaries []dto.AnnouncementSummaryResponse) string {
	var b strings.Builder
	for _, s := range summaries {
		b.WriteString(s.ID)
		b.WriteByte('|')
		b.WriteString(s.LastActivityAt.UTC().Format(time.RFC3339Nano))
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(s.CommentCount))
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(s.Reactions.Up))
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(s.Reactions.Down))
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(s.Reactions.Heart))
		b.WriteByte(';')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
