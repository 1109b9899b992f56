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

func TestHabitRepositoryListByOwner(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHabitRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "streak", "completed_dates", "category"}).
		AddRow("f01", "Stretch", 4, "{2024-03-01,2024-03-02}", "HEALTH").
		AddRow("f02", "Journal", nil, nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("FROM habits WHERE user_id = $1")).
		WithArgs("u1").
		WillReturnRows(rows)

	habits, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, habits[0].CompletedDates)
	assert.Equal(t, models.HabitCategoryHealth, habits[0].Category)

	assert.Equal(t, 0, habits[1].Streak)
	assert.NotNil(t, habits[1].CompletedDates)
	assert.Empty(t, habits[1].CompletedDates)
	assert.Equal(t, models.HabitCategoryStudy, habits[1].Category)
}

func TestHabitRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHabitRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO habits")).
		WithArgs("f01", "u1", "Stretch", 5, sqlmock.AnyArg(), "HEALTH").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), models.Habit{ID: "f01", Name: "Stretch", Streak: 5, Category: models.HabitCategoryHealth}, "u1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
