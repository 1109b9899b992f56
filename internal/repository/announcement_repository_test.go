package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/models"
)

func TestAnnouncementRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAnnouncementRepository(db)

	published := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "content", "author", "published_at", "priority", "tags"}).
		AddRow("n1", "Sports Day", "Bring water", "Coach", published, "LOW", "{Events}").
		AddRow("n2", "Notice", nil, nil, nil, "URGENT", nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM announcements ORDER BY published_at DESC")).WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"Events"}, items[0].Tags)
	assert.Equal(t, models.AnnouncementPriorityLow, items[0].Priority)
	assert.Equal(t, models.AnnouncementPriorityNormal, items[1].Priority)
	assert.NotNil(t, items[1].Tags)
	assert.Empty(t, items[1].Tags)
}

func TestAnnouncementRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAnnouncementRepository(db)

	published := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO announcements")).
		WithArgs("n3", "Exam week", "Quiet halls", "Mr. Thompson", published, "HIGH", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), models.Announcement{
		ID: "n3", Title: "Exam week", Content: "Quiet halls", Author: "Mr. Thompson",
		Date: published, Priority: models.AnnouncementPriorityHigh, Tags: []string{"Exams"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
