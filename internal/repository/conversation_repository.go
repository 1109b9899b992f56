package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduverse-api/internal/models"
)

type conversationRow struct {
	ID            string         `db:"id"`
	ParticipantID sql.NullString `db:"participant_id"`
	LastMessage   sql.NullString `db:"last_message"`
	LastActivity  sql.NullTime   `db:"last_activity"`
	UnreadCount   sql.NullInt64  `db:"unread_count"`
}

func (r conversationRow) toDomain() models.Conversation {
	return models.Conversation{
		ID:            r.ID,
		ParticipantID: stringOr(r.ParticipantID, ""),
		LastMessage:   stringOr(r.LastMessage, ""),
		Timestamp:     timeOr(r.LastActivity, time.Time{}),
		UnreadCount:   intOr(r.UnreadCount, 0),
		Provenance:    models.ProvenanceRemote,
	}
}

// ConversationRepository reads the conversation list of a user.
type ConversationRepository struct {
	db *sqlx.DB
}

// NewConversationRepository creates the repository.
func NewConversationRepository(db *sqlx.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// ListByOwner returns conversations with the most recently active first.
func (r *ConversationRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Conversation, error) {
	const query = `SELECT id, participant_id, last_message, last_activity, unread_count
FROM conversations WHERE owner_id = $1 ORDER BY last_activity DESC NULLS LAST`
	var rows []conversationRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	conversations := make([]models.Conversation, 0, len(rows))
	for _, row := range rows {
		conversations = append(conversations, row.toDomain())
	}
	return conversations, nil
}
