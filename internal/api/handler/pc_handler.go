package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/service"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/response"
)

// PCHandler serves the PC inventory endpoints.
type PCHandler struct {
	pcSvc service.PCService
}

// NewPCHandler creates a PCHandler.
func NewPCHandler(pcSvc service.PCService) *PCHandler {
	return &PCHandler{pcSvc: pcSvc}
}

// Create registers a PC in a lab.
// POST /api/v1/labs/:id/pcs
func (h *PCHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.pcSvc.Create(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrLabNotFound) {
			response.NotFound(c, 13001, "lab not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListByLab lists the PCs of a lab.
// GET /api/v1/labs/:id/pcs
func (h *PCHandler) ListByLab(c *gin.Context) {
	result, err := h.pcSvc.ListByLab(c.Request.Context(), c.Param("id"))
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

// Get returns one PC.
// GET /api/v1/pcs/:id
func (h *PCHandler) Get(c *gin.Context) {
	result, err := h.pcSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPCNotFound) {
			response.NotFound(c, 14001, "pc not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Update partially updates a PC, including its defect flag.
// PATCH /api/v1/pcs/:id
func (h *PCHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.pcSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrPCNotFound) {
			response.NotFound(c, 14001, "pc not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Delete removes a PC. Bookings that referenced it survive with a null
// pc reference.
// DELETE /api/v1/pcs/:id
func (h *PCHandler) Delete(c *gin.Context) {
	if err := h.pcSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPCNotFound) {
			response.NotFound(c, 14001, "pc not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
