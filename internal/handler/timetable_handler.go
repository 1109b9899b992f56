package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/middleware"
	"github.com/noah-isme/eduverse-api/internal/models"
	"github.com/noah-isme/eduverse-api/internal/service"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

type timetableService interface {
	GetTimetable(ctx context.Context, ownerID string) ([]models.TimeTableEntry, models.DataSource)
	AddTimetableEntry(ctx context.Context, entry models.TimeTableEntry, ownerID string) models.TimeTableEntry
	BuildTimetableEntry(req dto.TimetableEntryRequest) (models.TimeTableEntry, error)
}

type exportService interface {
	ExportTimetable(ctx context.Context, ownerID, format string) (*service.ExportFile, error)
	ExportTasks(ctx context.Context, ownerID, format string) (*service.ExportFile, error)
}

// TimetableHandler exposes the weekly schedule.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler builds a new handler.
func NewTimetableHandler(service timetableService) *TimetableHandler {
	return &TimetableHandler{service: service}
}

// List godoc
// @Summary Get a user's weekly timetable
// @Tags Timetable
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/timetable [get]
func (h *TimetableHandler) List(c *gin.Context) {
	entries, source := h.service.GetTimetable(c.Request.Context(), c.Param("id"))
	respondRead(c, entries, source)
}

// Create godoc
// @Summary Add a class to the timetable
// @Tags Timetable
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body dto.TimetableEntryRequest true "Timetable slot"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/{id}/timetable [post]
func (h *TimetableHandler) Create(c *gin.Context) {
	var req dto.TimetableEntryRequest
	if !bindJSON(c, &req, "invalid timetable payload") {
		return
	}
	entry, err := h.service.BuildTimetableEntry(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, h.service.AddTimetableEntry(c.Request.Context(), entry, c.Param("id")))
}

// ExportHandler streams timetable and task downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Timetable godoc
// @Summary Download a user's timetable
// @Tags Export
// @Produce octet-stream
// @Param id path string true "User ID"
// @Param format query string false "csv, pdf, xlsx, or ics (default csv)"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /users/{id}/timetable/export [get]
func (h *ExportHandler) Timetable(c *gin.Context) {
	file, err := h.service.ExportTimetable(c.Request.Context(), c.Param("id"), c.Query("format"))
	h.send(c, file, err)
}

// Tasks godoc
// @Summary Download a user's tasks
// @Tags Export
// @Produce octet-stream
// @Param id path string true "User ID"
// @Param format query string false "csv, pdf, xlsx, or ics (default csv)"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /users/{id}/tasks/export [get]
func (h *ExportHandler) Tasks(c *gin.Context) {
	file, err := h.service.ExportTasks(c.Request.Context(), c.Param("id"), c.Query("format"))
	h.send(c, file, err)
}

func (h *ExportHandler) send(c *gin.Context, file *service.ExportFile, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header(middleware.HeaderDataSource, string(file.Source))
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
