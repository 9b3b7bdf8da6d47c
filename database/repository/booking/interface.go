// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when a (provider, date, time) key already holds a
// confirmed booking. Slot exclusivity is an extension over the validation the
// coordinator performs; the coordinator surfaces this error verbatim.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository is the persistence gateway for confirmed bookings.
type BookingRepository interface {
	EnsureIndexes(ctx context.Context) error
	Save(ctx context.Context, req models.BookingRequest) (string, error)
	ListUpcoming(ctx context.Context, requesterID string) ([]models.BookingConfirmation, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("carelink")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
