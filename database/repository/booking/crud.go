// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carelink/models"
)

type bookingDoc struct {
	ID          string    `bson:"id"`
	ProviderID  string    `bson:"providerId"`
	Date        string    `bson:"date"`
	Time        string    `bson:"time"`
	RequesterID string    `bson:"requesterId"`
	CreatedAt   time.Time `bson:"createdAt"`
}

// EnsureIndexes creates the unique slot index backing slot exclusivity.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *mongoBookingRepo) Save(ctx context.Context, req models.BookingRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := bookingDoc{
		ID:          uuid.New().String(),
		ProviderID:  req.ProviderID,
		Date:        req.Date,
		Time:        req.Time,
		RequesterID: req.RequesterID,
		CreatedAt:   time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrSlotTaken
		}
		return "", err
	}
	return doc.ID, nil
}

func (r *mongoBookingRepo) ListUpcoming(ctx context.Context, requesterID string) ([]models.BookingConfirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	today := time.Now().Format("2006-01-02")
	filter := bson.M{
		"requesterId": requesterID,
		"date":        bson.M{"$gte": today},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	confirmations := make([]models.BookingConfirmation, 0, len(docs))
	for _, d := range docs {
		confirmations = append(confirmations, models.BookingConfirmation{
			BookingID:   d.ID,
			ProviderID:  d.ProviderID,
			Date:        d.Date,
			Time:        d.Time,
			RequesterID: d.RequesterID,
			CreatedAt:   d.CreatedAt,
		})
	}
	return confirmations, nil
}
