package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/service"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/response"
)

// LabHandler serves the lab catalog endpoints.
type LabHandler struct {
	labSvc service.LabService
}

// NewLabHandler creates a LabHandler.
func NewLabHandler(labSvc service.LabService) *LabHandler {
	return &LabHandler{labSvc: labSvc}
}

// Create creates a lab.
// POST /api/v1/labs
func (h *LabHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.labSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.BadRequest(c, 13002, "lab head user does not exist")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List lists labs with pagination.
// GET /api/v1/labs
func (h *LabHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	labs, total, err := h.labSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, labs, total, page.GetPage(), page.GetPageSize())
}

// Get returns one lab.
// GET /api/v1/labs/:id
func (h *LabHandler) Get(c *gin.Context) {
	result, err := h.labSvc.GetByID(c.Request.Context(), c.Param("id"))
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

// Update partially updates a lab.
// PATCH /api/v1/labs/:id
func (h *LabHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateLabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.labSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLabNotFound):
			response.NotFound(c, 13001, "lab not found")
		case errors.Is(err, service.ErrUserNotFound):
			response.BadRequest(c, 13002, "lab head user does not exist")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete removes a lab together with its PCs and class periods.
// DELETE /api/v1/labs/:id
func (h *LabHandler) Delete(c *gin.Context) {
	if err := h.labSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrLabNotFound) {
			response.NotFound(c, 13001, "lab not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
