package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/eduverse-api/internal/models"
)

type messageRow struct {
	ID        string         `db:"id"`
	SenderID  sql.NullString `db:"sender_id"`
	Text      sql.NullString `db:"text"`
	Timestamp sql.NullTime   `db:"timestamp"`
	Read      sql.NullBool   `db:"read"`
}

func (r messageRow) toDomain() models.Message {
	return models.Message{
		ID:         r.ID,
		SenderID:   stringOr(r.SenderID, ""),
		Text:       stringOr(r.Text, ""),
		Timestamp:  timeOr(r.Timestamp, time.Time{}),
		Read:       r.Read.Valid && r.Read.Bool,
		Provenance: models.ProvenanceRemote,
	}
}

// MessageRepository persists conversation messages.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository creates the repository.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// ListByConversation returns the messages of a conversation, oldest first.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	const query = `SELECT id, sender_id, text, timestamp, read FROM messages WHERE conversation_id = $1 ORDER BY timestamp ASC`
	var rows []messageRow
	if err := r.db.SelectContext(ctx, &rows, query, conversationID); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	messages := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}
	return messages, nil
}

// Create appends a message and refreshes the conversation preview in one transaction.
func (r *MessageRepository) Create(ctx context.Context, conversationID string, msg models.Message) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin message tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insert = `INSERT INTO messages (id, conversation_id, sender_id, text, timestamp, read) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, insert, msg.ID, conversationID, msg.SenderID, msg.Text, nullableTime(msg.Timestamp), msg.Read); err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	const touch = `UPDATE conversations SET last_message = $1, last_activity = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, touch, msg.Text, nullableTime(msg.Timestamp), conversationID); err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit message: %w", err)
	}
	return nil
}
