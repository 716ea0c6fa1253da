package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shiftwell-app/backend/internal/auth"
	"github.com/shiftwell-app/backend/internal/dto"
	"github.com/shiftwell-app/backend/internal/services"
)

type ShiftHandler struct {
	shiftService *services.ShiftService
}

func NewShiftHandler(shiftService *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// CheckIn handles POST /shifts/check-in - records the pre-shift mood.
func (h *ShiftHandler) CheckIn(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	shift, err := h.shiftService.CheckIn(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyCheckedIn) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrScoreOutOfRange) || errors.Is(err, services.ErrInvalidShiftType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to check in",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(shift)
}

// CheckOut handles POST /shifts/check-out - records the post-shift mood.
func (h *ShiftHandler) CheckOut(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	shift, err := h.shiftService.CheckOut(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyCheckedOut) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrScoreOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to check out",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(shift)
}

// GetShifts handles GET /shifts - paginated shift history.
func (h *ShiftHandler) GetShifts(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	shifts, total, err := h.shiftService.GetShifts(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch shifts",
		})
	}

	return c.JSON(dto.ShiftListResponse{
		Shifts: shifts,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetToday handles GET /shifts/today.
func (h *ShiftHandler) GetToday(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	shift, err := h.shiftService.GetTodayShift(userID)
	if err != nil {
		if errors.Is(err, services.ErrShiftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch today's shift",
		})
	}

	return c.JSON(shift)
}
