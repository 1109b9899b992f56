package models

import "time"

// ChatRole identifies the author of a coach transcript message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one line of an AI coach transcript. Transcripts are session scoped.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// RoadmapStepType classifies a career roadmap milestone.
type RoadmapStepType string

const (
	RoadmapStepEducation  RoadmapStepType = "EDUCATION"
	RoadmapStepSkill      RoadmapStepType = "SKILL"
	RoadmapStepExperience RoadmapStepType = "EXPERIENCE"
)

// RoadmapStep is a generated career milestone.
type RoadmapStep struct {
	ID          string          `json:"id,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Timeframe   string          `json:"timeframe"`
	Type        RoadmapStepType `json:"type"`
	Completed   bool            `json:"completed"`
}

// CareerRoadmap is the structured output of the roadmap capability.
type CareerRoadmap struct {
	Roadmap []RoadmapStep `json:"roadmap"`
}

// CareerGoal groups a roadmap under the career the student asked about.
type CareerGoal struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Roadmap     []RoadmapStep `json:"roadmap"`
}

// StudySessionType separates study blocks from breaks.
type StudySessionType string

const (
	StudySessionStudy StudySessionType = "study"
	StudySessionBreak StudySessionType = "break"
)

// StudySession is one block of a generated study plan.
type StudySession struct {
	Time     string           `json:"time"`
	Activity string           `json:"activity"`
	Type     StudySessionType `json:"type"`
}

// StudyPlan is the structured output of the planner capability.
type StudyPlan struct {
	Plan []StudySession `json:"plan"`
	Tip  string         `json:"tip"`
}

// QuizQuestion is a generated multiple choice question.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// Quiz is the structured output of the quiz capability.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// Mood is the self-reported mood shown on the dashboard.
type Mood string

const (
	MoodHappy    Mood = "HAPPY"
	MoodNeutral  Mood = "NEUTRAL"
	MoodStressed Mood = "STRESSED"
	MoodTired    Mood = "TIRED"
)

// Valid reports whether the mood is one of the known values.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodStressed, MoodTired:
		return true
	default:
		return false
	}
}
