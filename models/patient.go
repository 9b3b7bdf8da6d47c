package models

import "time"

// Patient is the record behind the telehealth account.
type Patient struct {
	ID                string             `bson:"id" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Age               int                `bson:"age" json:"age"`
	Gender            string             `bson:"gender" json:"gender"`
	Phone             string             `bson:"phone" json:"phone"`
	Address           string             `bson:"address" json:"address"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"-" json:"password,omitempty"`
	PasswordHash      string             `bson:"passwordHash" json:"-"`
	TokenHash         string             `bson:"tokenHash,omitempty" json:"-"`
	FCMToken          string             `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	Vitals            *Vitals            `bson:"vitals,omitempty" json:"vitals,omitempty"`
	EmergencyContacts []EmergencyContact `bson:"emergencyContacts,omitempty" json:"emergencyContacts,omitempty"`
	Prescriptions     []Prescription     `bson:"prescriptions,omitempty" json:"prescriptions,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Vitals is the latest recorded set of basic measurements.
type Vitals struct {
	SystolicBP   int       `bson:"systolicBp" json:"systolicBp"`
	DiastolicBP  int       `bson:"diastolicBp" json:"diastolicBp"`
	HeartRate    int       `bson:"heartRate" json:"heartRate"` // beats per minute
	WeightKg     float64   `bson:"weightKg" json:"weightKg"`
	TemperatureC float64   `bson:"temperatureC" json:"temperatureC"`
	RecordedAt   time.Time `bson:"recordedAt" json:"recordedAt"`
}

// EmergencyContact is a person to reach when the patient cannot respond.
type EmergencyContact struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Relationship string `bson:"relationship" json:"relationship"`
	Phone        string `bson:"phone" json:"phone"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
}

// Prescription is a read model of an issued prescription.
type Prescription struct {
	ID         string    `bson:"id" json:"id"`
	Medication string    `bson:"medication" json:"medication"`
	Dosage     string    `bson:"dosage" json:"dosage"`       // e.g. "500mg"
	Frequency  string    `bson:"frequency" json:"frequency"` // e.g. "3 times daily"
	Prescriber string    `bson:"prescriber" json:"prescriber"`
	Refills    int       `bson:"refills" json:"refills"`
	IssuedAt   time.Time `bson:"issuedAt" json:"issuedAt"`
}
