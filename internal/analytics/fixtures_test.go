package analytics_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/models"
)

// fixtureRepo is an in-memory snapshot source for engine tests.
type fixtureRepo struct {
	shifts  []models.Shift
	entries []models.JournalEntry
	fail    bool
}

var errFixtureDown = errors.New("store unavailable")

func (r *fixtureRepo) FetchShifts(_ context.Context, _ uuid.UUID) ([]models.Shift, error) {
	if r.fail {
		return nil, errFixtureDown
	}
	return r.shifts, nil
}

func (r *fixtureRepo) FetchJournalEntries(_ context.Context, _ uuid.UUID) ([]models.JournalEntry, error) {
	if r.fail {
		return nil, errFixtureDown
	}
	return r.entries, nil
}

// today is the pinned "now" all scenarios are built around.
var today = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	// Mid-day wall clock; the engine truncates to the calendar day.
	return today.Add(9 * time.Hour)
}

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func preMood(energy, stress, motivation int) *models.Mood {
	return &models.Mood{
		ID:         uuid.New(),
		IsPreShift: true,
		Energy:     energy,
		Stress:     stress,
		Motivation: motivation,
	}
}

func postMood(fatigue, emotionalLoad, satisfaction int) *models.Mood {
	return &models.Mood{
		ID:            uuid.New(),
		Fatigue:       fatigue,
		EmotionalLoad: emotionalLoad,
		Satisfaction:  satisfaction,
	}
}

func shiftOn(date time.Time, pre, post *models.Mood) models.Shift {
	s := models.Shift{
		ID:        uuid.New(),
		Date:      date,
		ShiftType: models.ShiftDay,
		PreMood:   pre,
		PostMood:  post,
	}
	if pre != nil {
		s.PreMoodID = &pre.ID
	}
	if post != nil {
		s.PostMoodID = &post.ID
	}
	return s
}

func journalOn(date time.Time, highlights ...string) models.JournalEntry {
	return models.JournalEntry{
		ID:         uuid.New(),
		Content:    "long day, wrote it down",
		Highlights: highlights,
		CreatedAt:  date,
	}
}
