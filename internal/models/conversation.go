package models

import "time"

// Conversation is a thread with another participant, seen from its owner.
type Conversation struct {
	ID            string     `json:"id"`
	ParticipantID string     `json:"participantId"`
	LastMessage   string     `json:"lastMessage"`
	Timestamp     time.Time  `json:"timestamp"`
	UnreadCount   int        `json:"unreadCount"`
	Provenance    Provenance `json:"provenance,omitempty"`
}

// Message belongs to a conversation; lists are ordered by timestamp ascending.
type Message struct {
	ID         string     `json:"id"`
	SenderID   string     `json:"senderId"`
	Text       string     `json:"text"`
	Timestamp  time.Time  `json:"timestamp"`
	Read       bool       `json:"read"`
	Provenance Provenance `json:"provenance,omitempty"`
}
