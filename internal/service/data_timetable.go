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

// GetTimetable returns the weekly schedule of a user.
func (s *DataService) GetTimetable(ctx context.Context, ownerID string) ([]models.TimeTableEntry, models.DataSource) {
	var remote func(context.Context) ([]models.TimeTableEntry, error)
	if s.repos.Timetable != nil {
		remote = func(ctx context.Context) ([]models.TimeTableEntry, error) {
			return s.repos.Timetable.ListByOwner(ctx, ownerID)
		}
	}
	return readWithFallback(ctx, s, fallback.KindTimetable, remote, s.fallback.Timetable)
}

// AddTimetableEntry returns the new entry and schedules its durability write.
func (s *DataService) AddTimetableEntry(ctx context.Context, entry models.TimeTableEntry, ownerID string) models.TimeTableEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
		entry.Provenance = models.ProvenanceRemote
	}
	if entry.Color == "" {
		entry.Color = models.DefaultTimetableColor
	}
	entry.Provenance = s.resolveProvenance(fallback.KindTimetable, entry.ID, entry.Provenance)

	var write func(context.Context) error
	if s.repos.Timetable != nil {
		saved := entry
		write = func(ctx context.Context) error {
			return s.repos.Timetable.Create(ctx, saved, ownerID)
		}
	}
	s.persist(ctx, fallback.KindTimetable, entry.ID, entry.Provenance, write)
	return entry
}

// BuildTimetableEntry validates a slot payload. Slots may overlap; a slot must end after it starts.
func (s *DataService) BuildTimetableEntry(req dto.TimetableEntryRequest) (models.TimeTableEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.TimeTableEntry{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	if req.EndTime <= req.StartTime {
		return models.TimeTableEntry{}, appErrors.Clone(appErrors.ErrValidation, "endTime must be after startTime")
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = models.DefaultTimetableColor
	}
	return models.TimeTableEntry{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Subject:   strings.TrimSpace(req.Subject),
		Room:      strings.TrimSpace(req.Room),
		Teacher:   strings.TrimSpace(req.Teacher),
		Color:     color,
	}, nil
}
