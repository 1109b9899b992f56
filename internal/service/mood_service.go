package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
)

const moodKeyPrefix = "eduverse:mood:"

type moodStore interface {
	Enabled() bool
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// MoodService remembers the last mood each user reported. Redis backs it when enabled;
// the in-process map always holds the latest value and answers when Redis cannot.
type MoodService struct {
	store  moodStore
	logger *zap.Logger

	mu    sync.RWMutex
	local map[string]models.Mood
}

// NewMoodService constructs a MoodService. store may be nil.
func NewMoodService(store moodStore, logger *zap.Logger) *MoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoodService{store: store, logger: logger, local: map[string]models.Mood{}}
}

func moodKey(userID string) string {
	return moodKeyPrefix + userID
}

func (s *MoodService) remote() bool {
	return s.store != nil && s.store.Enabled()
}

// Get returns the user's mood or nil when none was reported.
func (s *MoodService) Get(ctx context.Context, userID string) *models.Mood {
	if s.remote() {
		var mood models.Mood
		err := s.store.Get(ctx, moodKey(userID), &mood)
		switch {
		case err == nil && mood.Valid():
			s.remember(userID, mood)
			return &mood
		case err != nil && !errors.Is(err, appErrors.ErrCacheMiss):
			s.logger.Warn("mood lookup failed, using local value", zap.String("user_id", userID), zap.Error(err))
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	mood, ok := s.local[userID]
	if !ok {
		return nil
	}
	return &mood
}

// Save records the user's mood. Remote failures are logged and absorbed.
func (s *MoodService) Save(ctx context.Context, userID string, mood models.Mood) {
	s.remember(userID, mood)
	if !s.remote() {
		return
	}
	if err := s.store.Set(ctx, moodKey(userID), mood, 0); err != nil {
		s.logger.Error("failed to persist mood", zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *MoodService) remember(userID string, mood models.Mood) {
	s.mu.Lock()
	s.local[userID] = mood
	s.mu.Unlock()
}
