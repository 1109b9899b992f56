package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/models"
)

func TestTaskRepositoryListByOwnerMapsRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTaskRepository(db)

	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "subject", "due_date", "status", "type", "description", "estimated_time_minutes"}).
		AddRow("9b2e", "Essay", "History", due, "IN_PROGRESS", "PROJECT", "500 words", 90).
		AddRow("9b2f", "Reading", nil, nil, "ARCHIVED", nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE user_id = $1 ORDER BY due_date ASC")).
		WithArgs("u1").
		WillReturnRows(rows)

	tasks, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, due, tasks[0].DueDate)
	assert.Equal(t, models.TaskStatusInProgress, tasks[0].Status)
	assert.Equal(t, 90, tasks[0].EstimatedTimeMinutes)

	assert.Equal(t, models.TaskStatusTodo, tasks[1].Status)
	assert.Equal(t, models.TaskTypeHomework, tasks[1].Type)
	assert.True(t, tasks[1].DueDate.IsZero())
	assert.Equal(t, 0, tasks[1].EstimatedTimeMinutes)
	assert.Equal(t, models.ProvenanceRemote, tasks[1].Provenance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryListByOwnerError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTaskRepository(db)

	mock.ExpectQuery("FROM tasks").WillReturnError(errors.New("connection refused"))

	_, err := repo.ListByOwner(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list tasks")
}

func TestTaskRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTaskRepository(db)

	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	task := models.Task{ID: "9b2e", Title: "Essay", Subject: "History", DueDate: due, Status: models.TaskStatusCompleted, Type: models.TaskTypeHomework, EstimatedTimeMinutes: 30}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks") + ".*" + regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE")).
		WithArgs("9b2e", "u1", "Essay", "History", due, "COMPLETED", "HOMEWORK", nil, 30).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), task, "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
