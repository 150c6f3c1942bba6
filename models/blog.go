package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog states. A blog starts as a draft and can only move to published;
// no transition back is exposed.
const (
	StateDraft     = "draft"
	StatePublished = "published"
)

// Blog represents a blog post document
// Collection: blogs
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	State       string             `bson:"state" json:"state"`
	ReadCount   int64              `bson:"read_count" json:"read_count"`
	ReadingTime int                `bson:"reading_time" json:"reading_time"`
	Tags        []string           `bson:"tags" json:"tags"`
	Body        string             `bson:"body" json:"body"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// IsOwnedBy reports whether the blog belongs to the given principal.
// Both sides are compared through the canonical hex encoding of the
// ObjectID, which is also the form carried in the JWT sub claim.
func (b *Blog) IsOwnedBy(principalID string) bool {
	return b.Author.Hex() == principalID
}

// IsPublished reports whether the blog is visible to the public.
func (b *Blog) IsPublished() bool {
	return b.State == StatePublished
}
