package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduverse-api/internal/models"
)

type timetableRow struct {
	ID        string         `db:"id"`
	Day       sql.NullString `db:"day"`
	StartTime sql.NullString `db:"start_time"`
	EndTime   sql.NullString `db:"end_time"`
	Subject   sql.NullString `db:"subject"`
	Room      sql.NullString `db:"room"`
	Teacher   sql.NullString `db:"teacher"`
	Color     sql.NullString `db:"color"`
}

func (r timetableRow) toDomain() models.TimeTableEntry {
	return models.TimeTableEntry{
		ID:         r.ID,
		Day:        stringOr(r.Day, ""),
		StartTime:  stringOr(r.StartTime, ""),
		EndTime:    stringOr(r.EndTime, ""),
		Subject:    stringOr(r.Subject, ""),
		Room:       stringOr(r.Room, ""),
		Teacher:    stringOr(r.Teacher, ""),
		Color:      stringOr(r.Color, models.DefaultTimetableColor),
		Provenance: models.ProvenanceRemote,
	}
}

// TimetableRepository persists weekly schedule slots.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository creates the repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// ListByOwner returns the schedule of a user in insertion order.
func (r *TimetableRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.TimeTableEntry, error) {
	const query = `SELECT id, day, start_time, end_time, subject, room, teacher, color FROM timetable WHERE user_id = $1 ORDER BY created_at ASC`
	var rows []timetableRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("list timetable: %w", err)
	}
	entries := make([]models.TimeTableEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}

// Create inserts a schedule slot. Overlaps with existing slots are not checked.
func (r *TimetableRepository) Create(ctx context.Context, entry models.TimeTableEntry, ownerID string) error {
	const query = `INSERT INTO timetable (id, user_id, day, start_time, end_time, subject, room, teacher, color)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		ownerID,
		entry.Day,
		entry.StartTime,
		entry.EndTime,
		entry.Subject,
		nullableString(entry.Room),
		nullableString(entry.Teacher),
		nullableString(entry.Color),
	)
	if err != nil {
		return fmt.Errorf("create timetable entry: %w", err)
	}
	return nil
}
