package booking

import (
	"context"
	"time"

	"carelink/models"
	"carelink/services/availability"
	"carelink/services/directory"
	"carelink/utils"

	"go.uber.org/zap"
)

// DefaultCoordinator is the production Coordinator.
type DefaultCoordinator struct {
	Directory directory.Directory
	Gateway   PersistenceGateway
	Payments  PaymentProcessor // optional; nil disables payment intents
}

// Book validates the request against the directory and the provider's offered
// slot list, then hands it to the persistence gateway.
//
// Validation order is fixed: missing fields first (all of them enumerated),
// then provider resolution, then slot membership. Nothing is silently
// defaulted.
func (c *DefaultCoordinator) Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	var missing []string
	if req.ProviderID == "" {
		missing = append(missing, "providerId")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	provider, err := c.Directory.FindByID(req.ProviderID)
	if err != nil {
		return nil, &UnknownProviderError{ID: req.ProviderID}
	}

	offered := availability.OfferedSlots(*provider, req.Date)
	if !containsSlot(offered, req.Time) {
		return nil, &SlotNotOfferedError{
			ProviderID: req.ProviderID,
			Date:       req.Date,
			Time:       req.Time,
		}
	}

	bookingID, err := c.Gateway.Save(ctx, req)
	if err != nil {
		// Surfaced verbatim; retrying is the caller's decision.
		return nil, err
	}

	confirmation := &models.BookingConfirmation{
		BookingID:    bookingID,
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Specialty:    provider.Specialty,
		Date:         req.Date,
		Time:         req.Time,
		RequesterID:  req.RequesterID,
		Fee:          provider.Fee,
		Currency:     provider.Currency,
		CreatedAt:    time.Now(),
	}

	if c.Payments != nil {
		intentID, err := c.Payments.CreateIntent(ctx, provider.Fee, provider.Currency, bookingID)
		if err != nil {
			// The booking stands even when the payment intent fails.
			logger.Warn("Book: payment intent creation failed",
				zap.String("bookingId", bookingID), zap.Error(err))
		} else {
			confirmation.PaymentIntentID = intentID
		}
	}

	logger.Info("booking confirmed",
		zap.String("bookingId", bookingID),
		zap.String("providerId", provider.ID),
		zap.String("date", req.Date),
		zap.String("time", req.Time))
	return confirmation, nil
}

// ListUpcoming returns the requester's future bookings from the gateway.
func (c *DefaultCoordinator) ListUpcoming(ctx context.Context, requesterID string) ([]models.BookingConfirmation, error) {
	return c.Gateway.ListUpcoming(ctx, requesterID)
}

func containsSlot(offered []string, t string) bool {
	for _, s := range offered {
		if s == t {
			return true
		}
	}
	return false
}
