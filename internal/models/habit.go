package models

// HabitCategory is the closed set of habit categories.
type HabitCategory string

const (
	HabitCategoryStudy       HabitCategory = "STUDY"
	HabitCategoryHealth      HabitCategory = "HEALTH"
	HabitCategoryMindfulness HabitCategory = "MINDFULNESS"
)

// Habit is a recurring practice with a streak counter. CompletedDates holds
// YYYY-MM-DD markers.
type Habit struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Streak         int           `json:"streak"`
	CompletedDates []string      `json:"completedDates"`
	Category       HabitCategory `json:"category"`
	Provenance     Provenance    `json:"provenance,omitempty"`
}

// Achievement is static gamification content.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
	MaxProgress int    `json:"maxProgress"`
}
