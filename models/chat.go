package models

import "time"

// ChatRole identifies the sender of a chat message.
type ChatRole string

const (
	RolePatient ChatRole = "patient"
	RoleAdvisor ChatRole = "advisor"
)

// ChatMessage is a single entry in a patient's advisory conversation.
// Messages are append-only; they are never mutated or deleted after creation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    ChatRole  `json:"sender"`
	Severity  Severity  `json:"severity,omitempty"` // Set on advisor messages only.
	Timestamp time.Time `json:"timestamp"`
}
