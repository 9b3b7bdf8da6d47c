package patient

import (
	"context"
	"errors"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a patient record and returns a bearer token. Name, phone
// and password are required; registration is rejected otherwise, never
// silently defaulted.
func (s *DefaultPatientService) Register(ctx context.Context, p models.Patient) (*AuthResponse, error) {
	logger := utils.GetLogger()

	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	if p.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p.Password = ""
	p.PasswordHash = string(hash)

	if err := s.Repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, &p)
	if err != nil {
		return nil, err
	}

	logger.Info("patient registered", zap.String("patientId", p.ID))
	return &AuthResponse{ID: p.ID, Name: p.Name, Email: p.Email, Token: token}, nil
}

// Authenticate checks email and password and rotates the bearer token.
func (s *DefaultPatientService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, p)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: p.ID, Name: p.Name, Email: p.Email, Token: token}, nil
}

func (s *DefaultPatientService) issueToken(ctx context.Context, p *models.Patient) (string, error) {
	token, err := utils.GenerateToken(p.ID, p.Email, tokenTTL)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateFields(ctx, p.ID, map[string]any{"tokenHash": utils.HashToken(token)}); err != nil {
		return "", err
	}
	return token, nil
}

// RevokeToken invalidates the patient's current bearer token.
func (s *DefaultPatientService) RevokeToken(ctx context.Context, patientID string) error {
	return s.translateErr(s.Repo.UpdateFields(ctx, patientID, map[string]any{"tokenHash": ""}))
}

func (s *DefaultPatientService) GetByID(ctx context.Context, patientID string) (*models.Patient, error) {
	p, err := s.Repo.GetByID(ctx, patientID)
	if err != nil {
		return nil, s.translateErr(err)
	}
	return p, nil
}

func (s *DefaultPatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultPatientService) UpdateVitals(ctx context.Context, patientID string, v models.Vitals) error {
	return s.translateErr(s.Repo.SetVitals(ctx, patientID, v))
}

// AddEmergencyContact requires name and phone, matching the record-entry
// rules of the patient portal.
func (s *DefaultPatientService) AddEmergencyContact(ctx context.Context, patientID string, c models.EmergencyContact) error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return s.translateErr(s.Repo.AddEmergencyContact(ctx, patientID, c))
}

func (s *DefaultPatientService) RemoveEmergencyContact(ctx context.Context, patientID, contactID string) error {
	return s.translateErr(s.Repo.RemoveEmergencyContact(ctx, patientID, contactID))
}

func (s *DefaultPatientService) AddPrescription(ctx context.Context, patientID string, rx models.Prescription) error {
	var missing []string
	if rx.Medication == "" {
		missing = append(missing, "medication")
	}
	if rx.Dosage == "" {
		missing = append(missing, "dosage")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return s.translateErr(s.Repo.AddPrescription(ctx, patientID, rx))
}

func (s *DefaultPatientService) UpdateFCMToken(ctx context.Context, patientID, token string) error {
	return s.translateErr(s.Repo.UpdateFields(ctx, patientID, map[string]any{"fcmToken": token}))
}

func (s *DefaultPatientService) translateErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrPatientNotFound
	}
	return err
}
