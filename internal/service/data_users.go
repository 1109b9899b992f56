package service

import (
	"context"

	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/models"
)

// GetUsers returns every profile.
func (s *DataService) GetUsers(ctx context.Context) ([]models.User, models.DataSource) {
	var remote func(context.Context) ([]models.User, error)
	if s.repos.Profiles != nil {
		remote = s.repos.Profiles.List
	}
	return readWithFallback(ctx, s, fallback.KindUser, remote, s.fallback.Users)
}

// GetUser looks a profile up in the remote list first and then in the seed profiles.
// It returns nil when neither knows the id.
func (s *DataService) GetUser(ctx context.Context, id string) (*models.User, models.DataSource) {
	users, source := s.GetUsers(ctx)
	if user := findUser(users, id); user != nil {
		return user, source
	}
	if source == models.SourceRemote {
		if user := findUser(s.fallback.Users(), id); user != nil {
			return user, models.SourceFallback
		}
	}
	return nil, source
}

func findUser(users []models.User, id string) *models.User {
	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user
		}
	}
	return nil
}

// GetAchievements returns the static achievement catalogue.
func (s *DataService) GetAchievements(_ context.Context) ([]models.Achievement, models.DataSource) {
	return s.fallback.Achievements(), models.SourceFallback
}
