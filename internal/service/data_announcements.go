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

// GetAnnouncements returns school announcements, newest first.
func (s *DataService) GetAnnouncements(ctx context.Context) ([]models.Announcement, models.DataSource) {
	var remote func(context.Context) ([]models.Announcement, error)
	if s.repos.Announcements != nil {
		remote = s.repos.Announcements.List
	}
	return readWithFallback(ctx, s, fallback.KindAnnouncement, remote, s.fallback.Announcements)
}

// CreateAnnouncement returns the announcement and schedules its durability write.
func (s *DataService) CreateAnnouncement(ctx context.Context, announcement models.Announcement) models.Announcement {
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
		announcement.Provenance = models.ProvenanceRemote
	}
	if announcement.Date.IsZero() {
		announcement.Date = s.now().UTC()
	}
	if announcement.Tags == nil {
		announcement.Tags = []string{}
	}
	announcement.Provenance = s.resolveProvenance(fallback.KindAnnouncement, announcement.ID, announcement.Provenance)

	var write func(context.Context) error
	if s.repos.Announcements != nil {
		saved := announcement
		saved.Tags = append([]string{}, announcement.Tags...)
		write = func(ctx context.Context) error {
			return s.repos.Announcements.Create(ctx, saved)
		}
	}
	s.persist(ctx, fallback.KindAnnouncement, announcement.ID, announcement.Provenance, write)
	return announcement
}

// BuildAnnouncement validates an announcement payload authored by the acting teacher.
func (s *DataService) BuildAnnouncement(author string, req dto.AnnouncementRequest) (models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Announcement{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	priority := models.AnnouncementPriority(req.Priority)
	if priority == "" {
		priority = models.AnnouncementPriorityNormal
	}
	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		tags = append(tags, strings.TrimSpace(tag))
	}
	return models.Announcement{
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		Author:   author,
		Date:     s.now().UTC(),
		Priority: priority,
		Tags:     tags,
	}, nil
}
