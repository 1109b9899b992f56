package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationRepositoryListByOwner(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewConversationRepository(db)

	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "participant_id", "last_message", "last_activity", "unread_count"}).
		AddRow("c9", "u3", "See you", ts, 2)
	mock.ExpectQuery(regexp.QuoteMeta("FROM conversations WHERE owner_id = $1 ORDER BY last_activity DESC")).
		WithArgs("u1").
		WillReturnRows(rows)

	items, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "u3", items[0].ParticipantID)
	assert.Equal(t, 2, items[0].UnreadCount)
	assert.Equal(t, ts, items[0].Timestamp)
}
