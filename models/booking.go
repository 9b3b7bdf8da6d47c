package models

import "time"

// BookingRequest is a patient's request for a consultation slot.
type BookingRequest struct {
	ProviderID  string `bson:"providerId" json:"providerId"`
	Date        string `bson:"date" json:"date"` // "2006-01-02"
	Time        string `bson:"time" json:"time"` // "HH:MM", must be one of the provider's offered times
	RequesterID string `bson:"requesterId" json:"requesterId"`
}

// BookingConfirmation echoes the booked slot back to the patient after a
// successful save. It is the response payload, not the stored record.
type BookingConfirmation struct {
	BookingID       string    `bson:"bookingId" json:"bookingId"`
	ProviderID      string    `bson:"providerId" json:"providerId"`
	ProviderName    string    `bson:"providerName" json:"providerName"`
	Specialty       string    `bson:"specialty" json:"specialty"`
	Date            string    `bson:"date" json:"date"`
	Time            string    `bson:"time" json:"time"`
	RequesterID     string    `bson:"requesterId" json:"requesterId"`
	Fee             float64   `bson:"fee" json:"fee"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
