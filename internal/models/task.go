package models

import "time"

// TaskStatus is the progress of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// TaskType classifies a task.
type TaskType string

const (
	TaskTypeHomework TaskType = "HOMEWORK"
	TaskTypeProject  TaskType = "PROJECT"
	TaskTypeExamPrep TaskType = "EXAM_PREP"
)

// Task is a homework, project, or exam preparation item owned by a user.
type Task struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Subject              string     `json:"subject"`
	DueDate              time.Time  `json:"dueDate"`
	Status               TaskStatus `json:"status"`
	Type                 TaskType   `json:"type"`
	Description          string     `json:"description"`
	EstimatedTimeMinutes int        `json:"estimatedTimeMinutes"`
	Provenance           Provenance `json:"provenance,omitempty"`
}
