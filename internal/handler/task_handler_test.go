package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/middleware"
	"github.com/noah-isme/eduverse-api/internal/models"
)

func TestTaskHandlerRoutes(t *testing.T) {
	data := offlineDataService()
	h := NewTaskHandler(data)
	r := newTestEngine()
	r.GET("/users/:id/tasks", h.List)
	r.POST("/users/:id/tasks", middleware.RequireRoles(models.RoleTeacher), h.Create)
	r.PUT("/users/:id/tasks/:taskId", h.Update)

	w, env := perform(t, r, http.MethodGet, "/users/u1/tasks", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	assert.Len(t, tasks, 3)

	payload := map[string]interface{}{
		"title":   "Read chapter 5",
		"subject": "English",
		"dueDate": time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	}
	w, _ = perform(t, r, http.MethodPost, "/users/u1/tasks", payload, studentHeaders())
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = perform(t, r, http.MethodPost, "/users/u1/tasks", payload, teacherHeaders())
	require.Equal(t, http.StatusAccepted, w.Code)
	var created models.Task
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.TaskStatusTodo, created.Status)
	assert.Equal(t, models.ProvenanceRemote, created.Provenance)

	payload["status"] = "COMPLETED"
	payload["provenance"] = "REMOTE"
	w, env = perform(t, r, http.MethodPut, "/users/u1/tasks/t1", payload, studentHeaders())
	require.Equal(t, http.StatusAccepted, w.Code)
	var updated models.Task
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.ProvenanceSeeded, updated.Provenance)
	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
}

func TestTaskHandlerRejectsInvalidPayload(t *testing.T) {
	h := NewTaskHandler(offlineDataService())
	r := newTestEngine()
	r.PUT("/users/:id/tasks/:taskId", h.Update)

	w, env := perform(t, r, http.MethodPut, "/users/u1/tasks/t1", map[string]string{"title": "no subject"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestHabitHandlerComplete(t *testing.T) {
	h := NewHabitHandler(offlineDataService())
	r := newTestEngine()
	r.POST("/users/:id/habits/:habitId/complete", h.Complete)

	w, env := perform(t, r, http.MethodPost, "/users/u1/habits/h2/complete", nil, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	var habit models.Habit
	require.NoError(t, json.Unmarshal(env.Data, &habit))
	assert.Equal(t, 6, habit.Streak)
	assert.Equal(t, []string{"2024-03-12"}, habit.CompletedDates)

	w, _ = perform(t, r, http.MethodPost, "/users/u1/habits/missing/complete", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
