package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/models"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

type messageService interface {
	GetConversations(ctx context.Context, ownerID string) ([]models.Conversation, models.DataSource)
	GetMessages(ctx context.Context, conversationID string) ([]models.Message, models.DataSource)
	AddMessage(ctx context.Context, conversationID string, msg models.Message) models.Message
	BuildMessage(senderID string, req dto.MessageRequest) (models.Message, error)
}

type announcementService interface {
	GetAnnouncements(ctx context.Context) ([]models.Announcement, models.DataSource)
	CreateAnnouncement(ctx context.Context, announcement models.Announcement) models.Announcement
	BuildAnnouncement(author string, req dto.AnnouncementRequest) (models.Announcement, error)
	GetUser(ctx context.Context, id string) (*models.User, models.DataSource)
}

// MessageHandler exposes conversations and their messages.
type MessageHandler struct {
	service messageService
}

// NewMessageHandler builds a new handler.
func NewMessageHandler(service messageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Conversations godoc
// @Summary List a user's conversations
// @Tags Messages
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/conversations [get]
func (h *MessageHandler) Conversations(c *gin.Context) {
	conversations, source := h.service.GetConversations(c.Request.Context(), c.Param("id"))
	respondRead(c, conversations, source)
}

// Messages godoc
// @Summary List the messages of a conversation
// @Tags Messages
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} response.Envelope
// @Router /conversations/{id}/messages [get]
func (h *MessageHandler) Messages(c *gin.Context) {
	messages, source := h.service.GetMessages(c.Request.Context(), c.Param("id"))
	respondRead(c, messages, source)
}

// Send godoc
// @Summary Send a message as the acting user
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param X-User-ID header string true "Acting user"
// @Param payload body dto.MessageRequest true "Message payload"
// @Success 202 {object} response.Envelope
// @Router /conversations/{id}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.MessageRequest
	if !bindJSON(c, &req, "invalid message payload") {
		return
	}
	msg, err := h.service.BuildMessage(user.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, h.service.AddMessage(c.Request.Context(), c.Param("id"), msg))
}

// AnnouncementHandler exposes the school notice board.
type AnnouncementHandler struct {
	service announcementService
}

// NewAnnouncementHandler builds a new handler.
func NewAnnouncementHandler(service announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// List godoc
// @Summary List announcements, newest first
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, source := h.service.GetAnnouncements(c.Request.Context())
	respondRead(c, announcements, source)
}

// Create godoc
// @Summary Publish an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param X-User-Role header string true "Must be TEACHER"
// @Param payload body dto.AnnouncementRequest true "Announcement payload"
// @Success 202 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.AnnouncementRequest
	if !bindJSON(c, &req, "invalid announcement payload") {
		return
	}

	author := user.ID
	if profile, _ := h.service.GetUser(c.Request.Context(), user.ID); profile != nil {
		author = profile.Name
	}
	announcement, err := h.service.BuildAnnouncement(author, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, h.service.CreateAnnouncement(c.Request.Context(), announcement))
}
