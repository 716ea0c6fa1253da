package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftType enumerates the kinds of work day a shift can represent.
type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
	ShiftRest  ShiftType = "rest"
)

var ShiftTypes = []ShiftType{ShiftDay, ShiftNight, ShiftRest}

// Shift is one calendar appearance of work. It is created lazily on the first
// check-in or check-out of a day and carries at most one pre-shift and one
// post-shift mood.
type Shift struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	ShiftType ShiftType `gorm:"size:10;default:'day'" json:"shift_type"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	PreMoodID  *uuid.UUID `gorm:"type:uuid" json:"pre_mood_id,omitempty"`
	PostMoodID *uuid.UUID `gorm:"type:uuid" json:"post_mood_id,omitempty"`
	PreMood    *Mood      `gorm:"foreignKey:PreMoodID" json:"pre_mood,omitempty"`
	PostMood   *Mood      `gorm:"foreignKey:PostMoodID" json:"post_mood,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Day returns the shift's calendar day in UTC, used for grouping.
func (s *Shift) Day() time.Time {
	return s.Date.UTC().Truncate(24 * time.Hour)
}

// HasMood reports whether the shift has at least one mood capture.
func (s *Shift) HasMood() bool {
	return s.PreMood != nil || s.PostMood != nil
}

// IsComplete reports whether both the pre and post mood were captured.
func (s *Shift) IsComplete() bool {
	return s.PreMood != nil && s.PostMood != nil
}

// IsValidShiftType reports whether t is a known shift type.
func IsValidShiftType(t ShiftType) bool {
	for _, valid := range ShiftTypes {
		if t == valid {
			return true
		}
	}
	return false
}
