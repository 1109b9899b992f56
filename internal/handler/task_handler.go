package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

type taskService interface {
	GetTasks(ctx context.Context, ownerID string) ([]models.Task, models.DataSource)
	SaveTask(ctx context.Context, task models.Task, ownerID string) models.Task
	BuildTask(id string, req dto.TaskRequest) (models.Task, error)
}

type habitService interface {
	GetHabits(ctx context.Context, ownerID string) ([]models.Habit, models.DataSource)
	FindHabit(ctx context.Context, ownerID, habitID string) (*models.Habit, models.DataSource)
	UpdateHabit(ctx context.Context, habit models.Habit, ownerID string) models.Habit
	CompleteHabit(ctx context.Context, habit models.Habit, ownerID string) models.Habit
	BuildHabit(id string, req dto.HabitRequest) (models.Habit, error)
}

// TaskHandler exposes a user's tasks.
type TaskHandler struct {
	service taskService
}

// NewTaskHandler builds a new handler.
func NewTaskHandler(service taskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List godoc
// @Summary List a user's tasks
// @Tags Tasks
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, source := h.service.GetTasks(c.Request.Context(), c.Param("id"))
	respondRead(c, tasks, source)
}

// Create godoc
// @Summary Assign a task to a user
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body dto.TaskRequest true "Task payload"
// @Success 202 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	h.save(c, "")
}

// Update godoc
// @Summary Replace a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param taskId path string true "Task ID"
// @Param payload body dto.TaskRequest true "Task payload"
// @Success 202 {object} response.Envelope
// @Router /users/{id}/tasks/{taskId} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	h.save(c, c.Param("taskId"))
}

func (h *TaskHandler) save(c *gin.Context, taskID string) {
	var req dto.TaskRequest
	if !bindJSON(c, &req, "invalid task payload") {
		return
	}
	task, err := h.service.BuildTask(taskID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, h.service.SaveTask(c.Request.Context(), task, c.Param("id")))
}

// HabitHandler exposes a user's habits.
type HabitHandler struct {
	service habitService
}

// NewHabitHandler builds a new handler.
func NewHabitHandler(service habitService) *HabitHandler {
	return &HabitHandler{service: service}
}

// List godoc
// @Summary List a user's habits
// @Tags Habits
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	habits, source := h.service.GetHabits(c.Request.Context(), c.Param("id"))
	respondRead(c, habits, source)
}

// Update godoc
// @Summary Replace a habit
// @Tags Habits
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param habitId path string true "Habit ID"
// @Param payload body dto.HabitRequest true "Habit payload"
// @Success 202 {object} response.Envelope
// @Router /users/{id}/habits/{habitId} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	var req dto.HabitRequest
	if !bindJSON(c, &req, "invalid habit payload") {
		return
	}
	habit, err := h.service.BuildHabit(c.Param("habitId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, h.service.UpdateHabit(c.Request.Context(), habit, c.Param("id")))
}

// Complete godoc
// @Summary Mark a habit done for today
// @Tags Habits
// @Produce json
// @Param id path string true "User ID"
// @Param habitId path string true "Habit ID"
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/habits/{habitId}/complete [post]
func (h *HabitHandler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	ownerID := c.Param("id")
	habit, _ := h.service.FindHabit(ctx, ownerID, c.Param("habitId"))
	if habit == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "habit not found"))
		return
	}
	response.Accepted(c, h.service.CompleteHabit(ctx, *habit, ownerID))
}
