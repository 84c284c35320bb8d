package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sidd-coder1/Fullstack-LMS/internal/dto"
	"github.com/sidd-coder1/Fullstack-LMS/internal/service"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/response"
)

// MaintenanceHandler serves the maintenance workflow endpoints.
type MaintenanceHandler struct {
	maintSvc service.MaintenanceService
}

// NewMaintenanceHandler creates a MaintenanceHandler.
func NewMaintenanceHandler(maintSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintSvc: maintSvc}
}

// Create opens a maintenance request.
// POST /api/v1/maintenance
func (h *MaintenanceHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.maintSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrPCNotFound) {
			response.NotFound(c, 14001, "pc not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List lists maintenance requests with filters and pagination.
// GET /api/v1/maintenance
func (h *MaintenanceHandler) List(c *gin.Context) {
	var req dto.MaintenanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	requests, total, err := h.maintSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, requests, total, req.GetPage(), req.GetPageSize())
}

// Get returns one maintenance request.
// GET /api/v1/maintenance/:id
func (h *MaintenanceHandler) Get(c *gin.Context) {
	result, err := h.maintSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMaintenanceNotFound) {
			response.NotFound(c, 17001, "maintenance request not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Update reassigns or transitions a maintenance request.
// PATCH /api/v1/maintenance/:id
func (h *MaintenanceHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.maintSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMaintenanceNotFound):
			response.NotFound(c, 17001, "maintenance request not found")
		case errors.Is(err, service.ErrInvalidStatusChange):
			response.Conflict(c, 17002, "status can only move forward")
		case errors.Is(err, service.ErrUserNotFound):
			response.BadRequest(c, 12001, "assignee does not exist")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
