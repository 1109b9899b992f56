package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

type coachService interface {
	ExplainConcept(ctx context.Context, concept, subject, grade string) string
	GetHomeworkHint(ctx context.Context, description, subject string) string
	GenerateStudyPlan(ctx context.Context, tasks []models.Task, hours float64) *models.StudyPlan
	GenerateCareerRoadmap(ctx context.Context, career string) *models.CareerRoadmap
	GenerateQuiz(ctx context.Context, subject, topic string) *models.Quiz
	Chat(ctx context.Context, sessionID, text string) []models.ChatMessage
	Transcript(sessionID string) []models.ChatMessage
}

type pendingTaskReader interface {
	PendingTasks(ctx context.Context, ownerID string) []models.Task
}

// CoachHandler exposes the AI study coach. Every capability answers 200: free-text ones
// with a placeholder sentence and structured ones with null data when the model is
// unavailable.
type CoachHandler struct {
	coach     coachService
	tasks     pendingTaskReader
	validator *validator.Validate
}

// NewCoachHandler builds a new handler.
func NewCoachHandler(coach coachService, tasks pendingTaskReader, validate *validator.Validate) *CoachHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &CoachHandler{coach: coach, tasks: tasks, validator: validate}
}

func (h *CoachHandler) bind(c *gin.Context, dest interface{}) bool {
	if !bindJSON(c, dest, "invalid coach request") {
		return false
	}
	if err := h.validator.Struct(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid coach request"))
		return false
	}
	return true
}

// Explain godoc
// @Summary Explain a concept
// @Tags Coach
// @Accept json
// @Produce json
// @Param payload body dto.ExplainRequest true "Concept"
// @Success 200 {object} response.Envelope
// @Router /coach/explain [post]
func (h *CoachHandler) Explain(c *gin.Context) {
	var req dto.ExplainRequest
	if !h.bind(c, &req) {
		return
	}
	text := h.coach.ExplainConcept(c.Request.Context(), req.Concept, req.Subject, req.Grade)
	response.OK(c, dto.TextResponse{Text: text})
}

// Hint godoc
// @Summary Get a homework hint
// @Tags Coach
// @Accept json
// @Produce json
// @Param payload body dto.HintRequest true "Task"
// @Success 200 {object} response.Envelope
// @Router /coach/hint [post]
func (h *CoachHandler) Hint(c *gin.Context) {
	var req dto.HintRequest
	if !h.bind(c, &req) {
		return
	}
	text := h.coach.GetHomeworkHint(c.Request.Context(), req.Description, req.Subject)
	response.OK(c, dto.TextResponse{Text: text})
}

// StudyPlan godoc
// @Summary Plan today's study sessions from pending tasks
// @Tags Coach
// @Accept json
// @Produce json
// @Param payload body dto.StudyPlanRequest true "Availability"
// @Success 200 {object} response.Envelope
// @Router /coach/study-plan [post]
func (h *CoachHandler) StudyPlan(c *gin.Context) {
	var req dto.StudyPlanRequest
	if !h.bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	plan := h.coach.GenerateStudyPlan(ctx, h.tasks.PendingTasks(ctx, req.UserID), req.AvailableHours)
	response.OK(c, plan)
}

// Roadmap godoc
// @Summary Build a career roadmap
// @Tags Coach
// @Accept json
// @Produce json
// @Param payload body dto.RoadmapRequest true "Career"
// @Success 200 {object} response.Envelope
// @Router /coach/roadmap [post]
func (h *CoachHandler) Roadmap(c *gin.Context) {
	var req dto.RoadmapRequest
	if !h.bind(c, &req) {
		return
	}
	response.OK(c, h.coach.GenerateCareerRoadmap(c.Request.Context(), req.Career))
}

// Quiz godoc
// @Summary Generate a three question quiz
// @Tags Coach
// @Accept json
// @Produce json
// @Param payload body dto.QuizRequest true "Topic"
// @Success 200 {object} response.Envelope
// @Router /coach/quiz [post]
func (h *CoachHandler) Quiz(c *gin.Context) {
	var req dto.QuizRequest
	if !h.bind(c, &req) {
		return
	}
	response.OK(c, h.coach.GenerateQuiz(c.Request.Context(), req.Subject, req.Topic))
}

// Chat godoc
// @Summary Ask the coach within a session
// @Tags Coach
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.ChatRequest true "Question"
// @Success 200 {object} response.Envelope
// @Router /coach/sessions/{id}/messages [post]
func (h *CoachHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if !h.bind(c, &req) {
		return
	}
	sessionID := c.Param("id")
	messages := h.coach.Chat(c.Request.Context(), sessionID, req.Text)
	response.OK(c, dto.ChatTranscript{SessionID: sessionID, Messages: messages})
}

// Transcript godoc
// @Summary Get a coach session transcript
// @Tags Coach
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /coach/sessions/{id} [get]
func (h *CoachHandler) Transcript(c *gin.Context) {
	sessionID := c.Param("id")
	response.OK(c, dto.ChatTranscript{SessionID: sessionID, Messages: h.coach.Transcript(sessionID)})
}
