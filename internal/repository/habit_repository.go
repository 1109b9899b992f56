package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/eduverse-api/internal/models"
)

type habitRow struct {
	ID             string         `db:"id"`
	Name           sql.NullString `db:"name"`
	Streak         sql.NullInt64  `db:"streak"`
	CompletedDates pq.StringArray `db:"completed_dates"`
	Category       sql.NullString `db:"category"`
}

func (r habitRow) toDomain() models.Habit {
	category := models.HabitCategory(r.Category.String)
	switch category {
	case models.HabitCategoryStudy, models.HabitCategoryHealth, models.HabitCategoryMindfulness:
	default:
		category = models.HabitCategoryStudy
	}
	return models.Habit{
		ID:             r.ID,
		Name:           stringOr(r.Name, ""),
		Streak:         intOr(r.Streak, 0),
		CompletedDates: nonNil([]string(r.CompletedDates)),
		Category:       category,
		Provenance:     models.ProvenanceRemote,
	}
}

// HabitRepository persists habits and their streaks.
type HabitRepository struct {
	db *sqlx.DB
}

// NewHabitRepository creates the repository.
func NewHabitRepository(db *sqlx.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

// ListByOwner returns the habits of a user in insertion order.
func (r *HabitRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error) {
	const query = `SELECT id, name, streak, completed_dates, category FROM habits WHERE user_id = $1 ORDER BY created_at ASC`
	var rows []habitRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	habits := make([]models.Habit, 0, len(rows))
	for _, row := range rows {
		habits = append(habits, row.toDomain())
	}
	return habits, nil
}

// Upsert inserts the habit or overwrites its streak and completion markers.
func (r *HabitRepository) Upsert(ctx context.Context, habit models.Habit, ownerID string) error {
	const query = `INSERT INTO habits (id, user_id, name, streak, completed_dates, category)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, streak = EXCLUDED.streak,
completed_dates = EXCLUDED.completed_dates, category = EXCLUDED.category`
	_, err := r.db.ExecContext(ctx, query,
		habit.ID,
		ownerID,
		habit.Name,
		habit.Streak,
		pq.StringArray(nonNil(habit.CompletedDates)),
		string(habit.Category),
	)
	if err != nil {
		return fmt.Errorf("upsert habit: %w", err)
	}
	return nil
}
