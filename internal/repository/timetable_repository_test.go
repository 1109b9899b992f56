package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/models"
)

func TestTimetableRepositoryListByOwnerDefaultsColor(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	rows := sqlmock.NewRows([]string{"id", "day", "start_time", "end_time", "subject", "room", "teacher", "color"}).
		AddRow("e1", "Wednesday", "13:00", "14:00", "Art", nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM timetable WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnRows(rows)

	entries, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.DefaultTimetableColor, entries[0].Color)
	assert.Equal(t, "", entries[0].Room)
}

func TestTimetableRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	entry := models.TimeTableEntry{ID: "e1", Day: "Friday", StartTime: "08:00", EndTime: "09:00", Subject: "Biology", Room: "Lab C", Color: models.DefaultTimetableColor}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO timetable")).
		WithArgs("e1", "u1", "Friday", "08:00", "09:00", "Biology", "Lab C", nil, models.DefaultTimetableColor).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), entry, "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
