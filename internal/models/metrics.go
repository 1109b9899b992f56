package models

import "time"

// SystemMetrics is a lightweight snapshot of service health counters.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	FallbackReads            uint64    `json:"fallback_reads"`
	WriteFailures            uint64    `json:"write_failures"`
	SkippedWrites            uint64    `json:"skipped_writes"`
	AIRequests               uint64    `json:"ai_requests"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
