package patient

import (
	"context"
	"testing"
	"time"

	"carelink/models"
	"carelink/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type memoryRepo struct {
	patients map[string]*models.Patient
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{patients: make(map[string]*models.Patient)}
}

func (r *memoryRepo) Create(ctx context.Context, p *models.Patient) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (r *memoryRepo) GetByEmail(ctx context.Context, email string) (*models.Patient, error) {
	for _, p := range r.patients {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memoryRepo) GetAll(ctx context.Context) ([]models.Patient, error) {
	out := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memoryRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	p, ok := r.patients[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := fields["tokenHash"]; ok {
		p.TokenHash = v.(string)
	}
	if v, ok := fields["fcmToken"]; ok {
		p.FCMToken = v.(string)
	}
	return nil
}

func (r *memoryRepo) SetVitals(ctx context.Context, id string, v models.Vitals) error {
	p, ok := r.patients[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Vitals = &v
	return nil
}

func (r *memoryRepo) AddEmergencyContact(ctx context.Context, id string, contact models.EmergencyContact) error {
	p, ok := r.patients[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.EmergencyContacts = append(p.EmergencyContacts, contact)
	return nil
}

func (r *memoryRepo) RemoveEmergencyContact(ctx context.Context, id, contactID string) error {
	p, ok := r.patients[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	kept := p.EmergencyContacts[:0]
	for _, c := range p.EmergencyContacts {
		if c.ID != contactID {
			kept = append(kept, c)
		}
	}
	p.EmergencyContacts = kept
	return nil
}

func (r *memoryRepo) AddPrescription(ctx context.Context, id string, rx models.Prescription) error {
	p, ok := r.patients[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Prescriptions = append(p.Prescriptions, rx)
	return nil
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultPatientService{Repo: newMemoryRepo()}

	_, err := svc.Register(context.Background(), models.Patient{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"name", "phone", "password"}, validationErr.Fields)

	_, err = svc.Register(context.Background(), models.Patient{Name: "Asha", Phone: "9000000001"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"password"}, validationErr.Fields)
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	repo := newMemoryRepo()
	svc := &DefaultPatientService{Repo: repo}

	resp, err := svc.Register(context.Background(), models.Patient{
		Name:     "Asha",
		Phone:    "9000000001",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)

	stored := repo.patients[resp.ID]
	require.NotNil(t, stored)
	assert.Empty(t, stored.Password, "plaintext password never persists")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestAuthenticate(t *testing.T) {
	repo := newMemoryRepo()
	svc := &DefaultPatientService{Repo: repo}

	reg, err := svc.Register(context.Background(), models.Patient{
		Name:     "Asha",
		Phone:    "9000000001",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	resp, err := svc.Authenticate(context.Background(), "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate(context.Background(), "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeToken(t *testing.T) {
	repo := newMemoryRepo()
	svc := &DefaultPatientService{Repo: repo}

	reg, err := svc.Register(context.Background(), models.Patient{
		Name: "Asha", Phone: "9000000001", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), reg.ID))
	assert.Empty(t, repo.patients[reg.ID].TokenHash)

	assert.ErrorIs(t, svc.RevokeToken(context.Background(), "missing"), ErrPatientNotFound)
}

func TestEmergencyContactValidation(t *testing.T) {
	repo := newMemoryRepo()
	svc := &DefaultPatientService{Repo: repo}

	reg, err := svc.Register(context.Background(), models.Patient{
		Name: "Asha", Phone: "9000000001", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	err = svc.AddEmergencyContact(context.Background(), reg.ID, models.EmergencyContact{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"name", "phone"}, validationErr.Fields)

	require.NoError(t, svc.AddEmergencyContact(context.Background(), reg.ID, models.EmergencyContact{
		ID: "ec-1", Name: "Ravi", Phone: "9000000002", Relationship: "spouse",
	}))
	require.Len(t, repo.patients[reg.ID].EmergencyContacts, 1)

	require.NoError(t, svc.RemoveEmergencyContact(context.Background(), reg.ID, "ec-1"))
	assert.Empty(t, repo.patients[reg.ID].EmergencyContacts)
}

func TestNotFoundTranslation(t *testing.T) {
	svc := &DefaultPatientService{Repo: newMemoryRepo()}

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPatientNotFound)

	err = svc.UpdateVitals(context.Background(), "missing", models.Vitals{HeartRate: 70})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
