// File: database/repository/reminder/interface.go
package reminderRepo

import (
	"context"
	"time"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderRepository persists medication reminders.
type ReminderRepository interface {
	Create(ctx context.Context, rem *models.Reminder) error
	GetByID(ctx context.Context, patientID, id string) (*models.Reminder, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Reminder, error)
	SetStatus(ctx context.Context, patientID, id, status string) error
	ListDue(ctx context.Context, timeOfDay string, notFiredSince time.Time) ([]models.Reminder, error)
	MarkFired(ctx context.Context, id string, at time.Time) error
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo constructs a new MongoDB ReminderRepository.
func NewMongoReminderRepo() ReminderRepository {
	db := database.MongoClient.Database("carelink")
	return &mongoReminderRepo{
		coll: db.Collection("reminders"),
	}
}
