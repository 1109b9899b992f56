package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/eduverse-api/internal/models"
)

type announcementRow struct {
	ID          string         `db:"id"`
	Title       sql.NullString `db:"title"`
	Content     sql.NullString `db:"content"`
	Author      sql.NullString `db:"author"`
	PublishedAt sql.NullTime   `db:"published_at"`
	Priority    sql.NullString `db:"priority"`
	Tags        pq.StringArray `db:"tags"`
}

func (r announcementRow) toDomain() models.Announcement {
	priority := models.AnnouncementPriority(r.Priority.String)
	switch priority {
	case models.AnnouncementPriorityHigh, models.AnnouncementPriorityNormal, models.AnnouncementPriorityLow:
	default:
		priority = models.AnnouncementPriorityNormal
	}
	return models.Announcement{
		ID:         r.ID,
		Title:      stringOr(r.Title, ""),
		Content:    stringOr(r.Content, ""),
		Author:     stringOr(r.Author, ""),
		Date:       timeOr(r.PublishedAt, time.Time{}),
		Priority:   priority,
		Tags:       nonNil([]string(r.Tags)),
		Provenance: models.ProvenanceRemote,
	}
}

// AnnouncementRepository provides persistence for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// List returns announcements, newest first.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	const query = `SELECT id, title, content, author, published_at, priority, tags FROM announcements ORDER BY published_at DESC`
	var rows []announcementRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	announcements := make([]models.Announcement, 0, len(rows))
	for _, row := range rows {
		announcements = append(announcements, row.toDomain())
	}
	return announcements, nil
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement models.Announcement) error {
	const query = `INSERT INTO announcements (id, title, content, author, published_at, priority, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		announcement.ID,
		announcement.Title,
		announcement.Content,
		nullableString(announcement.Author),
		nullableTime(announcement.Date),
		string(announcement.Priority),
		pq.StringArray(nonNil(announcement.Tags)),
	)
	if err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}
