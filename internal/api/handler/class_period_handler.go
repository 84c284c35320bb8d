package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/service"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/response"
)

// ClassPeriodHandler serves the timetable endpoints.
type ClassPeriodHandler struct {
	periodSvc service.ClassPeriodService
}

// NewClassPeriodHandler creates a ClassPeriodHandler.
func NewClassPeriodHandler(periodSvc service.ClassPeriodService) *ClassPeriodHandler {
	return &ClassPeriodHandler{periodSvc: periodSvc}
}

// Create adds a weekly slot to a lab's timetable.
// POST /api/v1/labs/:id/periods
func (h *ClassPeriodHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClassPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.periodSvc.Create(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInterval):
			response.BadRequest(c, 16005, "period end must be after period start")
		case errors.Is(err, service.ErrDuplicateSlot):
			response.Conflict(c, 16002, "identical slot already exists")
		case errors.Is(err, service.ErrOverlap):
			response.Conflict(c, 16003, "slot overlaps an existing period")
		case errors.Is(err, service.ErrLabNotFound):
			response.NotFound(c, 13001, "lab not found")
		case errors.Is(err, service.ErrPCNotFound):
			response.NotFound(c, 14001, "pc not found")
		case errors.Is(err, service.ErrPeriodPCMismatch):
			response.BadRequest(c, 16004, "pc does not belong to this lab")
		case errors.Is(err, service.ErrPCDefective):
			response.Conflict(c, 15005, "pc is marked defective")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// ListByLab lists a lab's periods, optionally filtered by day of week.
// GET /api/v1/labs/:id/periods
func (h *ClassPeriodHandler) ListByLab(c *gin.Context) {
	var req dto.ClassPeriodListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.periodSvc.ListByLab(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrLabNotFound) {
			response.NotFound(c, 13001, "lab not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get returns one class period.
// GET /api/v1/periods/:id
func (h *ClassPeriodHandler) Get(c *gin.Context) {
	result, err := h.periodSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			response.NotFound(c, 16001, "class period not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete removes a class period and frees its slot.
// DELETE /api/v1/periods/:id
func (h *ClassPeriodHandler) Delete(c *gin.Context) {
	if err := h.periodSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			response.NotFound(c, 16001, "class period not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ListAvailability reports per-PC availability during a period.
// GET /api/v1/periods/:id/availability
func (h *ClassPeriodHandler) ListAvailability(c *gin.Context) {
	result, err := h.periodSvc.ListAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			response.NotFound(c, 16001, "class period not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
