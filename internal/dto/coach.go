package dto

import "github.com/noah-isme/eduverse-api/internal/models"

// ExplainRequest asks the coach to explain a concept.
type ExplainRequest struct {
	Concept string `json:"concept" validate:"required,max=500"`
	Subject string `json:"subject" validate:"required,max=100"`
	Grade   string `json:"grade" validate:"max=40"`
}

// HintRequest asks for a hint on a homework task.
type HintRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
	Subject     string `json:"subject" validate:"required,max=100"`
}

// StudyPlanRequest asks for a plan covering the user's pending tasks.
type StudyPlanRequest struct {
	UserID         string  `json:"userId" validate:"required"`
	AvailableHours float64 `json:"availableHours" validate:"gt=0,lte=24"`
}

// RoadmapRequest asks for a career roadmap.
type RoadmapRequest struct {
	Career string `json:"career" validate:"required,max=120"`
}

// QuizRequest asks for a short multiple choice quiz.
type QuizRequest struct {
	Subject string `json:"subject" validate:"required,max=100"`
	Topic   string `json:"topic" validate:"required,max=200"`
}

// ChatRequest is one user turn in a coach session.
type ChatRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// TextResponse wraps a free-text coach answer.
type TextResponse struct {
	Text string `json:"text"`
}

// ChatTranscript is the state of a coach session.
type ChatTranscript struct {
	SessionID string               `json:"sessionId"`
	Messages  []models.ChatMessage `json:"messages"`
}
