// Package fallback holds the seed records served when the remote store is unreachable
// or returns nothing. Every record it hands out is tagged models.ProvenanceSeeded and is
// a fresh copy, so callers may mutate results freely.
package fallback

import (
	"time"

	"github.com/noah-isme/eduverse-api/internal/models"
)

// Kind names an entity collection of the dataset.
type Kind string

const (
	KindUser         Kind = "user"
	KindTask         Kind = "task"
	KindHabit        Kind = "habit"
	KindTimetable    Kind = "timetable"
	KindAchievement  Kind = "achievement"
	KindConversation Kind = "conversation"
	KindMessage      Kind = "message"
	KindAnnouncement Kind = "announcement"
)

// Dataset is the immutable fallback dataset. Relative dates are fixed when the dataset
// is built.
type Dataset struct {
	users         []models.User
	tasks         []models.Task
	habits        []models.Habit
	timetable     []models.TimeTableEntry
	achievements  []models.Achievement
	conversations []models.Conversation
	messages      map[string][]models.Message
	announcements []models.Announcement

	ids map[Kind]map[string]struct{}
}

// New builds the dataset relative to now.
func New(now time.Time) *Dataset {
	d := &Dataset{
		users:         seedUsers(),
		tasks:         seedTasks(now),
		habits:        seedHabits(),
		timetable:     seedTimetable(),
		achievements:  seedAchievements(),
		conversations: seedConversations(now),
		messages:      seedMessages(now),
		announcements: seedAnnouncements(now),
	}
	d.index()
	return d
}

func (d *Dataset) index() {
	d.ids = map[Kind]map[string]struct{}{}
	add := func(kind Kind, id string) {
		if d.ids[kind] == nil {
			d.ids[kind] = map[string]struct{}{}
		}
		d.ids[kind][id] = struct{}{}
	}
	for _, u := range d.users {
		add(KindUser, u.ID)
	}
	for _, t := range d.tasks {
		add(KindTask, t.ID)
	}
	for _, h := range d.habits {
		add(KindHabit, h.ID)
	}
	for _, e := range d.timetable {
		add(KindTimetable, e.ID)
	}
	for _, a := range d.achievements {
		add(KindAchievement, a.ID)
	}
	for _, c := range d.conversations {
		add(KindConversation, c.ID)
	}
	for _, list := range d.messages {
		for _, m := range list {
			add(KindMessage, m.ID)
		}
	}
	for _, a := range d.announcements {
		add(KindAnnouncement, a.ID)
	}
}

// IsSeeded reports whether id belongs to a seed record of the given kind.
func (d *Dataset) IsSeeded(kind Kind, id string) bool {
	if d == nil {
		return false
	}
	_, ok := d.ids[kind][id]
	return ok
}

// Users returns the seed profiles.
func (d *Dataset) Users() []models.User {
	out := make([]models.User, len(d.users))
	for i, u := range d.users {
		out[i] = u
		out[i].Level = copyInt(u.Level)
		out[i].XP = copyInt(u.XP)
	}
	return out
}

// Tasks returns the seed tasks. Seed tasks are not owner scoped.
func (d *Dataset) Tasks() []models.Task {
	return append([]models.Task(nil), d.tasks...)
}

// Habits returns the seed habits.
func (d *Dataset) Habits() []models.Habit {
	out := make([]models.Habit, len(d.habits))
	for i, h := range d.habits {
		out[i] = h
		out[i].CompletedDates = append([]string{}, h.CompletedDates...)
	}
	return out
}

// Timetable returns the seed weekly schedule.
func (d *Dataset) Timetable() []models.TimeTableEntry {
	return append([]models.TimeTableEntry(nil), d.timetable...)
}

// Achievements returns the static achievements.
func (d *Dataset) Achievements() []models.Achievement {
	return append([]models.Achievement(nil), d.achievements...)
}

// Conversations returns the seed conversation list.
func (d *Dataset) Conversations() []models.Conversation {
	return append([]models.Conversation(nil), d.conversations...)
}

// Messages returns the seed messages of a conversation, or an empty slice.
func (d *Dataset) Messages(conversationID string) []models.Message {
	return append([]models.Message{}, d.messages[conversationID]...)
}

// Announcements returns the seed announcements, newest first.
func (d *Dataset) Announcements() []models.Announcement {
	out := make([]models.Announcement, len(d.announcements))
	for i, a := range d.announcements {
		out[i] = a
		out[i].Tags = append([]string{}, a.Tags...)
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
