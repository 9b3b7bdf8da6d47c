package patient

import (
	"context"

	patientRepo "carelink/database/repository/patient"
	"carelink/models"
)

// PatientService owns patient identity and records. Other services consume
// it read-only; it never mutates anything outside the patient collection.
type PatientService interface {
	Register(ctx context.Context, p models.Patient) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, patientID string) error

	GetByID(ctx context.Context, patientID string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)

	UpdateVitals(ctx context.Context, patientID string, v models.Vitals) error
	AddEmergencyContact(ctx context.Context, patientID string, c models.EmergencyContact) error
	RemoveEmergencyContact(ctx context.Context, patientID, contactID string) error
	AddPrescription(ctx context.Context, patientID string, rx models.Prescription) error
	UpdateFCMToken(ctx context.Context, patientID, token string) error
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}

// AuthResponse carries the patient's ID and a fresh bearer token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
