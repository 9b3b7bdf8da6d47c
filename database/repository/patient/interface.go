// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository persists patient records, including embedded vitals,
// emergency contacts and prescriptions.
type PatientRepository interface {
	Create(ctx context.Context, p *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByEmail(ctx context.Context, email string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	SetVitals(ctx context.Context, id string, v models.Vitals) error
	AddEmergencyContact(ctx context.Context, id string, contact models.EmergencyContact) error
	RemoveEmergencyContact(ctx context.Context, id, contactID string) error
	AddPrescription(ctx context.Context, id string, rx models.Prescription) error
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database("carelink")
	return &mongoPatientRepo{
		coll: db.Collection("patients"),
	}
}
