package models

import "time"

// Case note visibility values.
const (
	VisibilityInternal = "internal"
	VisibilityPublic   = "public"
)

// ValidVisibility reports whether v is a recognised note visibility.
func ValidVisibility(v string) bool {
	return v == VisibilityInternal || v == VisibilityPublic
}

// CaseNote is an investigation-log entry attached to a complaint. Internal
// notes are police-only; public notes are also visible to the complainant.
type CaseNote struct {
	ID          string    `bson:"id" json:"id"`
	ComplaintID string    `bson:"complaint_id" json:"complaint_id"`
	AuthorID    string    `bson:"author_id" json:"author_id"`
	AuthorName  string    `bson:"author_name" json:"author_name"`
	Content     string    `bson:"content" json:"content"`
	Stage       string    `bson:"stage,omitempty" json:"stage,omitempty"`
	Visibility  string    `bson:"visibility" json:"visibility"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
