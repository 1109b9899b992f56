package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/eduverse-api/internal/models"
)

const (
	defaultTranscriptLimit = 100
	defaultSessionLimit    = 1000
	chatSubject            = "General"
)

type chatSession struct {
	messages   []models.ChatMessage
	lastActive time.Time
}

// ChatStore keeps coach transcripts in memory, one per session. Transcripts are lost on
// restart and trimmed to the most recent messages. At most maxSessions sessions are kept;
// starting one more evicts the least recently active.
type ChatStore struct {
	mu          sync.Mutex
	sessions    map[string]*chatSession
	limit       int
	maxSessions int
	now         func() time.Time
	newID       func() string
}

// NewChatStore builds a transcript store keeping at most limit messages per session and
// maxSessions sessions.
func NewChatStore(limit, maxSessions int, clock func() time.Time, idProvider func() string) *ChatStore {
	if limit <= 0 {
		limit = defaultTranscriptLimit
	}
	if maxSessions <= 0 {
		maxSessions = defaultSessionLimit
	}
	if clock == nil {
		clock = time.Now
	}
	if idProvider == nil {
		idProvider = uuid.NewString
	}
	return &ChatStore{
		sessions:    map[string]*chatSession{},
		limit:       limit,
		maxSessions: maxSessions,
		now:         clock,
		newID:       idProvider,
	}
}

// Append adds a message to a session and returns a copy of the transcript.
func (s *ChatStore) Append(sessionID string, role models.ChatRole, text string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	session, ok := s.sessions[sessionID]
	if !ok {
		if len(s.sessions) >= s.maxSessions {
			s.evictIdlest()
		}
		session = &chatSession{}
		s.sessions[sessionID] = session
	}

	transcript := append(session.messages, models.ChatMessage{
		ID:        s.newID(),
		Role:      role,
		Text:      text,
		Timestamp: now,
	})
	if overflow := len(transcript) - s.limit; overflow > 0 {
		transcript = append([]models.ChatMessage(nil), transcript[overflow:]...)
	}
	session.messages = transcript
	session.lastActive = now
	return append([]models.ChatMessage{}, transcript...)
}

// Transcript returns a copy of a session's messages. Reading does not create a session.
func (s *ChatStore) Transcript(sessionID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return []models.ChatMessage{}
	}
	return append([]models.ChatMessage{}, session.messages...)
}

// Sessions returns the number of sessions held.
func (s *ChatStore) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictIdlest drops the least recently active session. Callers hold mu.
func (s *ChatStore) evictIdlest() {
	var (
		idlest string
		oldest time.Time
	)
	for id, session := range s.sessions {
		if idlest == "" || session.lastActive.Before(oldest) {
			idlest, oldest = id, session.lastActive
		}
	}
	if idlest != "" {
		delete(s.sessions, idlest)
	}
}

// Chat records the user's turn, answers it through ExplainConcept, and returns the
// updated transcript. An answer arriving after the caller went away is discarded.
func (s *CoachService) Chat(ctx context.Context, sessionID, text string) []models.ChatMessage {
	text = strings.TrimSpace(text)
	transcript := s.chats.Append(sessionID, models.ChatRoleUser, text)
	answer := s.ExplainConcept(ctx, text, chatSubject, DefaultGradeLevel)
	if ctx.Err() != nil {
		return transcript
	}
	return s.chats.Append(sessionID, models.ChatRoleAssistant, answer)
}

// Transcript returns the messages of a coach session.
func (s *CoachService) Transcript(sessionID string) []models.ChatMessage {
	return s.chats.Transcript(sessionID)
}
