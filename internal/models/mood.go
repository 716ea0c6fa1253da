package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Mood is a single mood capture, either pre-shift or post-shift.
// Pre-shift captures fill Energy/Stress/Motivation, post-shift captures fill
// Fatigue/EmotionalLoad/Satisfaction; all six are 1-5 with zero meaning the
// field was never set.
type Mood struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	IsPreShift bool      `gorm:"not null" json:"is_pre_shift"`

	// Pre-shift fields
	Energy     int `gorm:"default:0" json:"energy"`
	Stress     int `gorm:"default:0" json:"stress"`
	Motivation int `gorm:"default:0" json:"motivation"`

	// Post-shift fields
	Fatigue       int `gorm:"default:0" json:"fatigue"`
	EmotionalLoad int `gorm:"default:0" json:"emotional_load"`
	Satisfaction  int `gorm:"default:0" json:"satisfaction"`

	Badges datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"badges"`
	Notes  string                      `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasPreShiftData reports whether all pre-shift fields were captured.
func (m *Mood) HasPreShiftData() bool {
	return m.Energy >= 1 && m.Stress >= 1 && m.Motivation >= 1
}

// HasPostShiftData reports whether all post-shift fields were captured.
func (m *Mood) HasPostShiftData() bool {
	return m.Fatigue >= 1 && m.EmotionalLoad >= 1 && m.Satisfaction >= 1
}

// PreShiftScore computes the normalized 1-5 wellbeing score for a pre-shift
// capture. Stress is inverted so that higher is always better. Returns 0 when
// the pre-shift fields are absent so callers can skip the record.
func (m *Mood) PreShiftScore() float64 {
	if !m.HasPreShiftData() {
		return 0
	}
	return (float64(m.Energy) + float64(6-m.Stress) + float64(m.Motivation)) / 3
}

// PostShiftScore computes the normalized 1-5 wellbeing score for a post-shift
// capture. Fatigue and emotional load are inverted, satisfaction is not.
func (m *Mood) PostShiftScore() float64 {
	if !m.HasPostShiftData() {
		return 0
	}
	return (float64(6-m.Fatigue) + float64(6-m.EmotionalLoad) + float64(m.Satisfaction)) / 3
}
