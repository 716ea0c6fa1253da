package dto

import (
	"time"

	"github.com/shiftwell-app/backend/internal/models"
)

type CheckInRequest struct {
	ShiftType  models.ShiftType `json:"shift_type"`
	Energy     int              `json:"energy"`
	Stress     int              `json:"stress"`
	Motivation int              `json:"motivation"`
	StartTime  *time.Time       `json:"start_time,omitempty"`
}

type CheckOutRequest struct {
	Fatigue       int        `json:"fatigue"`
	EmotionalLoad int        `json:"emotional_load"`
	Satisfaction  int        `json:"satisfaction"`
	Badges        []string   `json:"badges,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
}

type ShiftListResponse struct {
	Shifts []models.Shift `json:"shifts"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type CreateJournalRequest struct {
	Content    string   `json:"content"`
	Tags       []string `json:"tags,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type UpdateJournalRequest struct {
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	Highlights *[]string `json:"highlights"`
}

type JournalListResponse struct {
	Entries []models.JournalEntry `json:"entries"`
	Total   int64                 `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}

type CreateTimeOffRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Note      string    `json:"note,omitempty"`
}

type TimeOffListResponse struct {
	Periods []models.TimeOff `json:"periods"`
}
