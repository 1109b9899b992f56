package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
)

// GetConversations returns the conversation list of a user.
func (s *DataService) GetConversations(ctx context.Context, ownerID string) ([]models.Conversation, models.DataSource) {
	var remote func(context.Context) ([]models.Conversation, error)
	if s.repos.Conversations != nil {
		remote = func(ctx context.Context) ([]models.Conversation, error) {
			return s.repos.Conversations.ListByOwner(ctx, ownerID)
		}
	}
	return readWithFallback(ctx, s, fallback.KindConversation, remote, s.fallback.Conversations)
}

// GetMessages returns the messages of a conversation, oldest first.
func (s *DataService) GetMessages(ctx context.Context, conversationID string) ([]models.Message, models.DataSource) {
	var remote func(context.Context) ([]models.Message, error)
	if s.repos.Messages != nil {
		remote = func(ctx context.Context) ([]models.Message, error) {
			return s.repos.Messages.ListByConversation(ctx, conversationID)
		}
	}
	seed := func() []models.Message { return s.fallback.Messages(conversationID) }
	return readWithFallback(ctx, s, fallback.KindMessage, remote, seed)
}

// AddMessage returns the message appended to the conversation and schedules its write.
func (s *DataService) AddMessage(ctx context.Context, conversationID string, msg models.Message) models.Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
		msg.Provenance = models.ProvenanceRemote
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now().UTC()
	}
	msg.Provenance = s.resolveProvenance(fallback.KindMessage, msg.ID, msg.Provenance)

	var write func(context.Context) error
	if s.repos.Messages != nil {
		saved := msg
		write = func(ctx context.Context) error {
			return s.repos.Messages.Create(ctx, conversationID, saved)
		}
	}
	s.persist(ctx, fallback.KindMessage, msg.ID, msg.Provenance, write)
	return msg
}

// BuildMessage validates a message payload sent by the acting user.
func (s *DataService) BuildMessage(senderID string, req dto.MessageRequest) (models.Message, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := s.validator.Struct(req); err != nil {
		return models.Message{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "message text is required")
	}
	return models.Message{
		SenderID:  senderID,
		Text:      req.Text,
		Timestamp: s.now().UTC(),
		Read:      true,
	}, nil
}
