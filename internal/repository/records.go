package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/models"
	"gorm.io/gorm"
)

// RecordStore is the persistence-backed snapshot source for the analytics
// engine. Each fetch returns the user's full history; at current data scales
// (years of daily records, low thousands of rows) no pagination is needed.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// FetchShifts returns all of the user's shifts with their mood captures
// resolved, oldest first.
func (s *RecordStore) FetchShifts(ctx context.Context, userID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	err := s.db.WithContext(ctx).
		Scopes(ForUser(userID)).
		Preload("PreMood").
		Preload("PostMood").
		Order("date ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	return shifts, nil
}

// FetchJournalEntries returns all of the user's journal entries, oldest first.
func (s *RecordStore) FetchJournalEntries(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := s.db.WithContext(ctx).
		Scopes(ForUser(userID)).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	return entries, nil
}
