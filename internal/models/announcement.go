package models

import "time"

// AnnouncementPriority defines ordering for announcements.
type AnnouncementPriority string

const (
	AnnouncementPriorityLow    AnnouncementPriority = "LOW"
	AnnouncementPriorityNormal AnnouncementPriority = "NORMAL"
	AnnouncementPriorityHigh   AnnouncementPriority = "HIGH"
)

// Announcement is a school-wide notice published by a teacher.
type Announcement struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Content    string               `json:"content"`
	Author     string               `json:"author"`
	Date       time.Time            `json:"date"`
	Priority   AnnouncementPriority `json:"priority"`
	Tags       []string             `json:"tags"`
	Provenance Provenance           `json:"provenance,omitempty"`
}
