package models

import (
	"time"

	"github.com/google/uuid"
)

// Podcast represents one uploaded audio file and its metadata.
// Records are immutable after creation.
type Podcast struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	URL       string    `db:"url" json:"url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
