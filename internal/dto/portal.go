package dto

import "time"

// TaskRequest describes payload for creating or replacing a task.
type TaskRequest struct {
	Title                string     `json:"title" validate:"required,max=200"`
	Subject              string     `json:"subject" validate:"required,max=100"`
	DueDate              *time.Time `json:"dueDate" validate:"required"`
	Status               string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED"`
	Type                 string     `json:"type" validate:"omitempty,oneof=HOMEWORK PROJECT EXAM_PREP"`
	Description          string     `json:"description" validate:"max=2000"`
	EstimatedTimeMinutes int        `json:"estimatedTimeMinutes" validate:"gte=0,lte=1440"`
}

// HabitRequest describes payload for replacing a habit.
type HabitRequest struct {
	Name           string   `json:"name" validate:"required,max=120"`
	Streak         int      `json:"streak" validate:"gte=0"`
	CompletedDates []string `json:"completedDates" validate:"dive,datetime=2006-01-02"`
	Category       string   `json:"category" validate:"required,oneof=STUDY HEALTH MINDFULNESS"`
}

// TimetableEntryRequest describes payload for adding a weekly class slot.
type TimetableEntryRequest struct {
	Day       string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
	Subject   string `json:"subject" validate:"required,max=100"`
	Room      string `json:"room" validate:"max=50"`
	Teacher   string `json:"teacher" validate:"max=100"`
	Color     string `json:"color" validate:"max=120"`
}

// MessageRequest describes payload for sending a message.
type MessageRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

// AnnouncementRequest describes payload for publishing an announcement.
type AnnouncementRequest struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content" validate:"required"`
	Priority string   `json:"priority" validate:"omitempty,oneof=HIGH NORMAL LOW"`
	Tags     []string `json:"tags" validate:"max=10,dive,required,max=40"`
}

// MoodRequest describes payload for saving the current mood.
type MoodRequest struct {
	Mood string `json:"mood" validate:"required,oneof=HAPPY NEUTRAL STRESSED TIRED"`
}
