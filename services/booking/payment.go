package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripePaymentProcessor opens PaymentIntents for consultation fees.
type StripePaymentProcessor struct{}

// CreateIntent creates a Stripe PaymentIntent for the fee and returns its ID.
// Amounts are converted to the currency's minor unit.
func (p *StripePaymentProcessor) CreateIntent(ctx context.Context, amount float64, currency, bookingID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(strings.ToLower(currency)),
		Metadata: map[string]string{"bookingId": bookingID},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return intent.ID, nil
}
