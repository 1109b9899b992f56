package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
)

// GetTasks returns the tasks of a user ordered by due date.
func (s *DataService) GetTasks(ctx context.Context, ownerID string) ([]models.Task, models.DataSource) {
	var remote func(context.Context) ([]models.Task, error)
	if s.repos.Tasks != nil {
		remote = func(ctx context.Context) ([]models.Task, error) {
			return s.repos.Tasks.ListByOwner(ctx, ownerID)
		}
	}
	return readWithFallback(ctx, s, fallback.KindTask, remote, s.fallback.Tasks)
}

// PendingTasks returns the tasks of a user that are not completed.
func (s *DataService) PendingTasks(ctx context.Context, ownerID string) []models.Task {
	tasks, _ := s.GetTasks(ctx, ownerID)
	pending := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status != models.TaskStatusCompleted {
			pending = append(pending, task)
		}
	}
	return pending
}

// SaveTask returns the task as the new local state and schedules its durability write.
// A task without an id is new and receives one.
func (s *DataService) SaveTask(ctx context.Context, task models.Task, ownerID string) models.Task {
	if task.ID == "" {
		task.ID = uuid.NewString()
		task.Provenance = models.ProvenanceRemote
	}
	task.Provenance = s.resolveProvenance(fallback.KindTask, task.ID, task.Provenance)

	var write func(context.Context) error
	if s.repos.Tasks != nil {
		saved := task
		write = func(ctx context.Context) error {
			return s.repos.Tasks.Upsert(ctx, saved, ownerID)
		}
	}
	s.persist(ctx, fallback.KindTask, task.ID, task.Provenance, write)
	return task
}

// BuildTask validates a task payload and turns it into a task. An empty id yields a new task.
func (s *DataService) BuildTask(id string, req dto.TaskRequest) (models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Task{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}

	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.TaskStatusTodo
	}
	taskType := models.TaskType(req.Type)
	if taskType == "" {
		taskType = models.TaskTypeHomework
	}

	return models.Task{
		ID:                   id,
		Title:                strings.TrimSpace(req.Title),
		Subject:              strings.TrimSpace(req.Subject),
		DueDate:              req.DueDate.UTC(),
		Status:               status,
		Type:                 taskType,
		Description:          strings.TrimSpace(req.Description),
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
	}, nil
}
