package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/models"
)

var profileCols = []string{"id", "name", "role", "avatar", "level", "xp", "email", "grade"}

func TestProfileRepositoryList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	rows := sqlmock.NewRows(profileCols).
		AddRow("p1", "Alex", "STUDENT", nil, 3, 900, "alex@example.com", "9th Grade").
		AddRow("p2", "Dana", "WIZARD", nil, nil, nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, role, avatar, level, xp, email, grade FROM profiles ORDER BY created_at ASC")).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NotNil(t, users[0].Level)
	assert.Equal(t, 3, *users[0].Level)
	assert.Equal(t, models.ProvenanceRemote, users[0].Provenance)

	assert.Equal(t, models.RoleStudent, users[1].Role)
	assert.Nil(t, users[1].Level)
	assert.Equal(t, "", users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(profileCols))

	user, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
