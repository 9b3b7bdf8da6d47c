package booking

import (
	"context"

	"carelink/models"
)

// PersistenceGateway stores validated bookings. The coordinator calls it only
// after local validation passes; a save failure is surfaced verbatim to the
// caller, never retried here.
type PersistenceGateway interface {
	Save(ctx context.Context, req models.BookingRequest) (string, error)
	ListUpcoming(ctx context.Context, requesterID string) ([]models.BookingConfirmation, error)
}

// PaymentProcessor optionally opens a payment intent for the consultation fee
// once a booking is confirmed.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount float64, currency, bookingID string) (string, error)
}

// Coordinator validates and records booking requests.
type Coordinator interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
	ListUpcoming(ctx context.Context, requesterID string) ([]models.BookingConfirmation, error)
}
