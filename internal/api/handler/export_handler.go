package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/sidd-coder1/Fullstack-LMS/internal/service"
	"github.com/sidd-coder1/Fullstack-LMS/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler serves the timetable download endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Timetable downloads a lab's timetable as an Excel file.
// GET /api/v1/labs/:id/timetable.xlsx
func (h *ExportHandler) Timetable(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportLabTimetable(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// Calendar downloads a lab's timetable as an iCalendar feed.
// GET /api/v1/labs/:id/timetable.ics
func (h *ExportHandler) Calendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportLabCalendar(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLabNotFound):
		response.NotFound(c, 13001, "lab not found")
	case errors.Is(err, service.ErrExportNoPeriods):
		response.BadRequest(c, 18001, "lab has no class periods to export")
	default:
		response.InternalError(c)
	}
}
