package service

import (
	"context"
	"strings"

	"github.com/noah-isme/eduverse-api/internal/dto"
	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
)

const completionDateLayout = "2006-01-02"

// GetHabits returns the habits of a user.
func (s *DataService) GetHabits(ctx context.Context, ownerID string) ([]models.Habit, models.DataSource) {
	var remote func(context.Context) ([]models.Habit, error)
	if s.repos.Habits != nil {
		remote = func(ctx context.Context) ([]models.Habit, error) {
			return s.repos.Habits.ListByOwner(ctx, ownerID)
		}
	}
	return readWithFallback(ctx, s, fallback.KindHabit, remote, s.fallback.Habits)
}

// FindHabit returns a habit of the user by id.
func (s *DataService) FindHabit(ctx context.Context, ownerID, habitID string) (*models.Habit, models.DataSource) {
	habits, source := s.GetHabits(ctx, ownerID)
	for i := range habits {
		if habits[i].ID == habitID {
			habit := habits[i]
			return &habit, source
		}
	}
	return nil, source
}

// UpdateHabit returns the habit as the new local state and schedules its durability write.
func (s *DataService) UpdateHabit(ctx context.Context, habit models.Habit, ownerID string) models.Habit {
	habit.Provenance = s.resolveProvenance(fallback.KindHabit, habit.ID, habit.Provenance)
	if habit.CompletedDates == nil {
		habit.CompletedDates = []string{}
	}

	var write func(context.Context) error
	if s.repos.Habits != nil {
		saved := habit
		saved.CompletedDates = append([]string{}, habit.CompletedDates...)
		write = func(ctx context.Context) error {
			return s.repos.Habits.Upsert(ctx, saved, ownerID)
		}
	}
	s.persist(ctx, fallback.KindHabit, habit.ID, habit.Provenance, write)
	return habit
}

// CompleteHabit marks the habit done for today: the streak grows by one and today's
// marker is appended. Completing twice on the same day changes nothing.
func (s *DataService) CompleteHabit(ctx context.Context, habit models.Habit, ownerID string) models.Habit {
	today := s.now().Format(completionDateLayout)
	for _, day := range habit.CompletedDates {
		if day == today {
			return habit
		}
	}
	habit.Streak++
	habit.CompletedDates = append(append([]string{}, habit.CompletedDates...), today)
	return s.UpdateHabit(ctx, habit, ownerID)
}

// BuildHabit validates a habit payload.
func (s *DataService) BuildHabit(id string, req dto.HabitRequest) (models.Habit, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Habit{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid habit payload")
	}
	return models.Habit{
		ID:             id,
		Name:           strings.TrimSpace(req.Name),
		Streak:         req.Streak,
		CompletedDates: append([]string{}, req.CompletedDates...),
		Category:       models.HabitCategory(req.Category),
	}, nil
}
