package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/service"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/response"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// Create books a PC or a whole lab for a time window.
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.bookingSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInterval):
			response.BadRequest(c, 15002, "end time must be after start time")
		case errors.Is(err, service.ErrResourceRequired):
			response.BadRequest(c, 15004, "a pc or lab reference is required")
		case errors.Is(err, service.ErrOverlap):
			response.Conflict(c, 15003, "time window conflicts with an existing booking")
		case errors.Is(err, service.ErrPCNotFound):
			response.NotFound(c, 14001, "pc not found")
		case errors.Is(err, service.ErrLabNotFound):
			response.NotFound(c, 13001, "lab not found")
		case errors.Is(err, service.ErrPCDefective):
			response.Conflict(c, 15005, "pc is marked defective")
		case errors.Is(err, service.ErrPCUnderRepair):
			response.Conflict(c, 15006, "pc has an open maintenance request")
		case errors.Is(err, service.ErrPCLabMismatch):
			response.BadRequest(c, 15007, "pc does not belong to the given lab")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// List lists bookings with filters and pagination.
// GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	var req dto.BookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	bookings, total, err := h.bookingSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, bookings, total, req.GetPage(), req.GetPageSize())
}

// Get returns one booking.
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	result, err := h.bookingSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.NotFound(c, 15001, "booking not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Cancel cancels a booking (owner or admin).
// POST /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.bookingSvc.Cancel(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			response.NotFound(c, 15001, "booking not found")
		case errors.Is(err, service.ErrBookingCancelled):
			response.Conflict(c, 15008, "booking is already cancelled")
		case errors.Is(err, service.ErrNotBookingOwner):
			response.Forbidden(c, 15009, "only the booking owner or an admin may cancel")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
