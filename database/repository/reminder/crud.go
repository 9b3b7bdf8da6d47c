// File: database/repository/reminder/crud.go
package reminderRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"carelink/models"
)

func (r *mongoReminderRepo) Create(ctx context.Context, rem *models.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rem.ID == "" {
		rem.ID = uuid.New().String()
	}
	rem.Status = models.ReminderPending
	rem.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, rem)
	return err
}

func (r *mongoReminderRepo) GetByID(ctx context.Context, patientID, id string) (*models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rem models.Reminder
	err := r.coll.FindOne(ctx, bson.M{"id": id, "patientId": patientID}).Decode(&rem)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *mongoReminderRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *mongoReminderRepo) SetStatus(ctx context.Context, patientID, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "patientId": patientID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListDue returns pending reminders scheduled at timeOfDay ("HH:MM") that
// have not fired since notFiredSince. The scheduler tick calls this once a
// minute with the current wall-clock minute.
func (r *mongoReminderRepo) ListDue(ctx context.Context, timeOfDay string, notFiredSince time.Time) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"time":   timeOfDay,
		"status": models.ReminderPending,
		"$or": []bson.M{
			{"lastFired": bson.M{"$exists": false}},
			{"lastFired": bson.M{"$lt": notFiredSince}},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *mongoReminderRepo) MarkFired(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"lastFired": at}})
	return err
}
