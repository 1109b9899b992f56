package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduverse-api/internal/models"
)

type profileRow struct {
	ID     string         `db:"id"`
	Name   sql.NullString `db:"name"`
	Role   sql.NullString `db:"role"`
	Avatar sql.NullString `db:"avatar"`
	Level  sql.NullInt64  `db:"level"`
	XP     sql.NullInt64  `db:"xp"`
	Email  sql.NullString `db:"email"`
	Grade  sql.NullString `db:"grade"`
}

func (r profileRow) toDomain() models.User {
	role := models.UserRole(r.Role.String)
	if !role.Valid() {
		role = models.RoleStudent
	}
	return models.User{
		ID:         r.ID,
		Name:       stringOr(r.Name, ""),
		Role:       role,
		Avatar:     stringOr(r.Avatar, ""),
		Level:      intPtr(r.Level),
		XP:         intPtr(r.XP),
		Email:      stringOr(r.Email, ""),
		Grade:      stringOr(r.Grade, ""),
		Provenance: models.ProvenanceRemote,
	}
}

const profileColumns = "id, name, role, avatar, level, xp, email, grade"

// ProfileRepository reads user profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates the repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// List returns every profile in insertion order.
func (r *ProfileRepository) List(ctx context.Context) ([]models.User, error) {
	query := "SELECT " + profileColumns + " FROM profiles ORDER BY created_at ASC"
	var rows []profileRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, nil
}

// FindByID returns a profile or sql.ErrNoRows.
func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := "SELECT " + profileColumns + " FROM profiles WHERE id = $1"
	var row profileRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	user := row.toDomain()
	return &user, nil
}
