package models

import "time"

const (
	ReminderPending   = "pending"
	ReminderCompleted = "completed"
)

// Reminder is a patient's recurring medication reminder.
type Reminder struct {
	ID         string    `bson:"id" json:"id"`
	PatientID  string    `bson:"patientId" json:"patientId"`
	Medication string    `bson:"medication" json:"medication"`
	Time       string    `bson:"time" json:"time"`           // "HH:MM", local to the patient
	Frequency  string    `bson:"frequency" json:"frequency"` // e.g. "Daily", "As needed"
	Status     string    `bson:"status" json:"status"`       // pending | completed
	LastFired  time.Time `bson:"lastFired,omitempty" json:"lastFired,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the task body queued for asynchronous delivery. It
// carries everything a push needs so the worker never reads the database.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	PatientID  string `json:"patientId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
