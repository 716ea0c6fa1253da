package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/dto"
	"github.com/shiftwell-app/backend/internal/models"
	"github.com/shiftwell-app/backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmptyContent      = errors.New("journal content cannot be empty")
	ErrTooManyHighlights = errors.New("too many highlights")
	ErrJournalNotFound   = errors.New("journal entry not found")
	ErrNotOwner          = errors.New("you do not own this journal entry")
)

type JournalService struct {
	db *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{db: db}
}

func (s *JournalService) CreateEntry(userID uuid.UUID, req dto.CreateJournalRequest) (*models.JournalEntry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	if len(req.Highlights) > models.MaxHighlights {
		return nil, ErrTooManyHighlights
	}

	entry := models.JournalEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Content:    req.Content,
		Tags:       req.Tags,
		Highlights: req.Highlights,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *JournalService) GetEntries(userID uuid.UUID, limit, offset int) ([]models.JournalEntry, int64, error) {
	var entries []models.JournalEntry
	var total int64

	s.db.Model(&models.JournalEntry{}).Scopes(repository.ForUser(userID)).Count(&total)

	err := s.db.Scopes(repository.ForUser(userID)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

// SearchEntries filters entries by free-text content match and, when tag is
// non-empty, by tag membership.
func (s *JournalService) SearchEntries(userID uuid.UUID, query, tag string, limit, offset int) ([]models.JournalEntry, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	base := s.db.Model(&models.JournalEntry{}).Scopes(repository.ForUser(userID))
	if query = strings.TrimSpace(query); query != "" {
		base = base.Where("content ILIKE ?", "%"+query+"%")
	}
	if tag != "" {
		// jsonb containment: tags @> '["night"]'
		if b, err := json.Marshal([]string{tag}); err == nil {
			base = base.Where("tags @> ?", datatypes.JSON(b))
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.JournalEntry
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

func (s *JournalService) GetEntry(userID, entryID uuid.UUID) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJournalNotFound
		}
		return nil, err
	}

	if entry.UserID != userID {
		return nil, ErrNotOwner
	}
	return &entry, nil
}

func (s *JournalService) UpdateEntry(userID, entryID uuid.UUID, req dto.UpdateJournalRequest) (*models.JournalEntry, error) {
	entry, err := s.GetEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrEmptyContent
		}
		entry.Content = *req.Content
	}
	if req.Tags != nil {
		entry.Tags = *req.Tags
	}
	if req.Highlights != nil {
		if len(*req.Highlights) > models.MaxHighlights {
			return nil, ErrTooManyHighlights
		}
		entry.Highlights = *req.Highlights
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) DeleteEntry(userID, entryID uuid.UUID) error {
	entry, err := s.GetEntry(userID, entryID)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}
