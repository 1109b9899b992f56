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

func TestMessageRepositoryListByConversation(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "sender_id", "text", "timestamp", "read"}).
		AddRow("x1", "u3", "Hello", ts, true).
		AddRow("x2", "u1", nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM messages WHERE conversation_id = $1 ORDER BY timestamp ASC")).
		WithArgs("c9").
		WillReturnRows(rows)

	messages, err := repo.ListByConversation(context.Background(), "c9")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.True(t, messages[0].Read)
	assert.Equal(t, ts, messages[0].Timestamp)
	assert.False(t, messages[1].Read)
	assert.Equal(t, "", messages[1].Text)
}

func TestMessageRepositoryCreateTouchesConversation(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WithArgs("x3", "c9", "u1", "On my way", ts, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE conversations SET last_message = $1, last_activity = $2 WHERE id = $3")).
		WithArgs("On my way", ts, "c9").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), "c9", models.Message{ID: "x3", SenderID: "u1", Text: "On my way", Timestamp: ts})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryCreateRollsBack(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewMessageRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), "c9", models.Message{ID: "x3", Timestamp: time.Now()})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
