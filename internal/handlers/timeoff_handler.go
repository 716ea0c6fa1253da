package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shiftwell-app/backend/internal/auth"
	"github.com/shiftwell-app/backend/internal/dto"
	"github.com/shiftwell-app/backend/internal/services"
)

type TimeOffHandler struct {
	timeOffService *services.TimeOffService
}

func NewTimeOffHandler(timeOffService *services.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOffService: timeOffService}
}

// Create handles POST /time-off.
func (h *TimeOffHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateTimeOffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	period, err := h.timeOffService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create time off period",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(period)
}

// List handles GET /time-off.
func (h *TimeOffHandler) List(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	periods, err := h.timeOffService.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch time off periods",
		})
	}

	return c.JSON(dto.TimeOffListResponse{Periods: periods})
}

// Delete handles DELETE /time-off/:id.
func (h *TimeOffHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	periodID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid period id",
		})
	}

	if err := h.timeOffService.Delete(userID, periodID); err != nil {
		if errors.Is(err, services.ErrTimeOffNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete time off period",
		})
	}

	return c.JSON(fiber.Map{"message": "time off period deleted"})
}
