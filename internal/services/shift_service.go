package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/dto"
	"github.com/shiftwell-app/backend/internal/models"
	"github.com/shiftwell-app/backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidShiftType  = errors.New("invalid shift type")
	ErrScoreOutOfRange   = errors.New("mood scores must be between 1 and 5")
	ErrAlreadyCheckedIn  = errors.New("already checked in for this shift")
	ErrAlreadyCheckedOut = errors.New("already checked out for this shift")
	ErrNotCheckedIn      = errors.New("no shift to check out of today")
	ErrShiftNotFound     = errors.New("shift not found")
)

// ShiftService owns the check-in/check-out lifecycle. A shift row is created
// lazily on the first capture of a day and carries at most one pre and one
// post mood.
type ShiftService struct {
	db *gorm.DB
}

func NewShiftService(db *gorm.DB) *ShiftService {
	return &ShiftService{db: db}
}

// CheckIn records the pre-shift mood for today, creating today's shift if it
// does not exist yet.
func (s *ShiftService) CheckIn(userID uuid.UUID, req dto.CheckInRequest) (*models.Shift, error) {
	if !inScoreRange(req.Energy, req.Stress, req.Motivation) {
		return nil, ErrScoreOutOfRange
	}
	shiftType := req.ShiftType
	if shiftType == "" {
		shiftType = models.ShiftDay
	}
	if !models.IsValidShiftType(shiftType) {
		return nil, ErrInvalidShiftType
	}

	var shift *models.Shift
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		shift, txErr = s.findOrCreateToday(tx, userID, shiftType)
		if txErr != nil {
			return txErr
		}
		if shift.PreMoodID != nil {
			return ErrAlreadyCheckedIn
		}

		mood := models.Mood{
			ID:         uuid.New(),
			UserID:     userID,
			IsPreShift: true,
			Energy:     req.Energy,
			Stress:     req.Stress,
			Motivation: req.Motivation,
		}
		if txErr = tx.Create(&mood).Error; txErr != nil {
			return txErr
		}

		shift.PreMoodID = &mood.ID
		shift.PreMood = &mood
		if req.StartTime != nil {
			shift.StartTime = req.StartTime
		}
		return tx.Save(shift).Error
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// CheckOut records the post-shift mood for today. The shift must already
// exist (a check-out without a prior check-in still creates it, matching the
// first-capture-of-the-day lifecycle).
func (s *ShiftService) CheckOut(userID uuid.UUID, req dto.CheckOutRequest) (*models.Shift, error) {
	if !inScoreRange(req.Fatigue, req.EmotionalLoad, req.Satisfaction) {
		return nil, ErrScoreOutOfRange
	}

	var shift *models.Shift
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		shift, txErr = s.findOrCreateToday(tx, userID, models.ShiftDay)
		if txErr != nil {
			return txErr
		}
		if shift.PostMoodID != nil {
			return ErrAlreadyCheckedOut
		}

		mood := models.Mood{
			ID:            uuid.New(),
			UserID:        userID,
			IsPreShift:    false,
			Fatigue:       req.Fatigue,
			EmotionalLoad: req.EmotionalLoad,
			Satisfaction:  req.Satisfaction,
			Badges:        req.Badges,
			Notes:         req.Notes,
		}
		if txErr = tx.Create(&mood).Error; txErr != nil {
			return txErr
		}

		shift.PostMoodID = &mood.ID
		shift.PostMood = &mood
		if req.EndTime != nil {
			shift.EndTime = req.EndTime
		}
		return tx.Save(shift).Error
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// GetShifts returns paginated shift history, newest first.
func (s *ShiftService) GetShifts(userID uuid.UUID, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	s.db.Model(&models.Shift{}).Scopes(repository.ForUser(userID)).Count(&total)

	err := s.db.Scopes(repository.ForUser(userID)).
		Preload("PreMood").
		Preload("PostMood").
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&shifts).Error

	return shifts, total, err
}

// GetTodayShift returns today's shift, or ErrShiftNotFound if no capture
// happened yet.
func (s *ShiftService) GetTodayShift(userID uuid.UUID) (*models.Shift, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var shift models.Shift
	err := s.db.Scopes(repository.ForUser(userID)).
		Preload("PreMood").
		Preload("PostMood").
		Where("date = ?", today).
		First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (s *ShiftService) findOrCreateToday(tx *gorm.DB, userID uuid.UUID, shiftType models.ShiftType) (*models.Shift, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var shift models.Shift
	err := tx.Scopes(repository.ForUser(userID)).Where("date = ?", today).First(&shift).Error
	if err == nil {
		return &shift, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	shift = models.Shift{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      today,
		ShiftType: shiftType,
	}
	if err := tx.Create(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func inScoreRange(scores ...int) bool {
	for _, score := range scores {
		if score < 1 || score > 5 {
			return false
		}
	}
	return true
}
