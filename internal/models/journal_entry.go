package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxHighlights caps how many highlights a single entry can carry.
const MaxHighlights = 3

// JournalEntry is a free-form journal entry with tags and a bounded list of
// highlights (small wins the user wants to remember).
type JournalEntry struct {
	ID         uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Content    string                      `gorm:"type:text" json:"content"`
	Tags       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Highlights datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"highlights"`
	CreatedAt  time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
	DeletedAt  gorm.DeletedAt              `gorm:"index" json:"-"`
}

// HasHighlights reports whether the entry carries at least one highlight.
func (e *JournalEntry) HasHighlights() bool {
	return len(e.Highlights) > 0
}

// Day returns the entry's calendar day in UTC.
func (e *JournalEntry) Day() time.Time {
	return e.CreatedAt.UTC().Truncate(24 * time.Hour)
}
