package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

type userReader interface {
	GetUsers(ctx context.Context) ([]models.User, models.DataSource)
	GetUser(ctx context.Context, id string) (*models.User, models.DataSource)
	GetAchievements(ctx context.Context) ([]models.Achievement, models.DataSource)
}

type moodService interface {
	Get(ctx context.Context, userID string) *models.Mood
	Save(ctx context.Context, userID string, mood models.Mood)
}

// UserHandler exposes profiles, achievements, and the dashboard mood.
type UserHandler struct {
	data  userReader
	moods moodService
}

// NewUserHandler builds a new handler.
func NewUserHandler(data userReader, moods moodService) *UserHandler {
	return &UserHandler{data: data, moods: moods}
}

// List godoc
// @Summary List profiles
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, source := h.data.GetUsers(c.Request.Context())
	respondRead(c, users, source)
}

// Get godoc
// @Summary Get a profile
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, source := h.data.GetUser(c.Request.Context(), c.Param("id"))
	if user == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "user not found"))
		return
	}
	respondRead(c, user, source)
}

// Achievements godoc
// @Summary List achievements
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /achievements [get]
func (h *UserHandler) Achievements(c *gin.Context) {
	achievements, source := h.data.GetAchievements(c.Request.Context())
	respondRead(c, achievements, source)
}

// GetMood godoc
// @Summary Get the last reported mood
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/mood [get]
func (h *UserHandler) GetMood(c *gin.Context) {
	response.OK(c, gin.H{"mood": h.moods.Get(c.Request.Context(), c.Param("id"))})
}

// SaveMood godoc
// @Summary Report the current mood
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body dto.MoodRequest true "Mood payload"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/mood [put]
func (h *UserHandler) SaveMood(c *gin.Context) {
	var req dto.MoodRequest
	if !bindJSON(c, &req, "invalid mood payload") {
		return
	}
	mood := models.Mood(req.Mood)
	if !mood.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown mood "+req.Mood))
		return
	}
	h.moods.Save(c.Request.Context(), c.Param("id"), mood)
	response.OK(c, gin.H{"mood": mood})
}
