package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/dto"
	"github.com/shiftwell-app/backend/internal/models"
	"github.com/shiftwell-app/backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrTimeOffNotFound  = errors.New("time off period not found")
)

type TimeOffService struct {
	db *gorm.DB
}

func NewTimeOffService(db *gorm.DB) *TimeOffService {
	return &TimeOffService{db: db}
}

func (s *TimeOffService) Create(userID uuid.UUID, req dto.CreateTimeOffRequest) (*models.TimeOff, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	period := models.TimeOff{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Note:      req.Note,
	}
	if err := s.db.Create(&period).Error; err != nil {
		return nil, err
	}
	return &period, nil
}

func (s *TimeOffService) List(userID uuid.UUID) ([]models.TimeOff, error) {
	var periods []models.TimeOff
	err := s.db.Scopes(repository.ForUser(userID)).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (s *TimeOffService) Delete(userID, periodID uuid.UUID) error {
	result := s.db.Scopes(repository.ForUser(userID)).Where("id = ?", periodID).Delete(&models.TimeOff{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTimeOffNotFound
	}
	return nil
}
