package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduverse-api/internal/models"
)

type taskRow struct {
	ID                   string         `db:"id"`
	Title                sql.NullString `db:"title"`
	Subject              sql.NullString `db:"subject"`
	DueDate              sql.NullTime   `db:"due_date"`
	Status               sql.NullString `db:"status"`
	Type                 sql.NullString `db:"type"`
	Description          sql.NullString `db:"description"`
	EstimatedTimeMinutes sql.NullInt64  `db:"estimated_time_minutes"`
}

func (r taskRow) toDomain() models.Task {
	status := models.TaskStatus(r.Status.String)
	switch status {
	case models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusCompleted:
	default:
		status = models.TaskStatusTodo
	}
	taskType := models.TaskType(r.Type.String)
	switch taskType {
	case models.TaskTypeHomework, models.TaskTypeProject, models.TaskTypeExamPrep:
	default:
		taskType = models.TaskTypeHomework
	}
	return models.Task{
		ID:                   r.ID,
		Title:                stringOr(r.Title, ""),
		Subject:              stringOr(r.Subject, ""),
		DueDate:              timeOr(r.DueDate, time.Time{}),
		Status:               status,
		Type:                 taskType,
		Description:          stringOr(r.Description, ""),
		EstimatedTimeMinutes: intOr(r.EstimatedTimeMinutes, 0),
		Provenance:           models.ProvenanceRemote,
	}
}

// TaskRepository persists user tasks.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates the repository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByOwner returns the tasks of a user ordered by due date.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	const query = `SELECT id, title, subject, due_date, status, type, description, estimated_time_minutes
FROM tasks WHERE user_id = $1 ORDER BY due_date ASC`
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	tasks := make([]models.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toDomain())
	}
	return tasks, nil
}

// Upsert inserts the task or overwrites the stored copy.
func (r *TaskRepository) Upsert(ctx context.Context, task models.Task, ownerID string) error {
	const query = `INSERT INTO tasks (id, user_id, title, subject, due_date, status, type, description, estimated_time_minutes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, subject = EXCLUDED.subject, due_date = EXCLUDED.due_date,
status = EXCLUDED.status, type = EXCLUDED.type, description = EXCLUDED.description,
estimated_time_minutes = EXCLUDED.estimated_time_minutes`
	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		ownerID,
		task.Title,
		nullableString(task.Subject),
		nullableTime(task.DueDate),
		string(task.Status),
		string(task.Type),
		nullableString(task.Description),
		task.EstimatedTimeMinutes,
	)
	if err != nil {
		return fmt.Errorf("upsert task: %w", err)
	}
	return nil
}
