package reminder

import (
	"context"
	"testing"
	"time"

	"carelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	reminders []models.Reminder
	fired     map[string]time.Time
	setErr    error
}

func newFakeRepo(reminders ...models.Reminder) *fakeRepo {
	return &fakeRepo{reminders: reminders, fired: make(map[string]time.Time)}
}

func (r *fakeRepo) Create(ctx context.Context, rem *models.Reminder) error {
	if rem.ID == "" {
		rem.ID = "rem-1"
	}
	rem.Status = models.ReminderPending
	rem.CreatedAt = time.Now()
	r.reminders = append(r.reminders, *rem)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, patientID, id string) (*models.Reminder, error) {
	for _, rem := range r.reminders {
		if rem.ID == id && rem.PatientID == patientID {
			return &rem, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, rem := range r.reminders {
		if rem.PatientID == patientID {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *fakeRepo) SetStatus(ctx context.Context, patientID, id, status string) error {
	if r.setErr != nil {
		return r.setErr
	}
	for i, rem := range r.reminders {
		if rem.ID == id && rem.PatientID == patientID {
			r.reminders[i].Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeRepo) ListDue(ctx context.Context, timeOfDay string, notFiredSince time.Time) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, rem := range r.reminders {
		if rem.Time != timeOfDay || rem.Status != models.ReminderPending {
			continue
		}
		if !rem.LastFired.IsZero() && rem.LastFired.After(notFiredSince) {
			continue
		}
		out = append(out, rem)
	}
	return out, nil
}

func (r *fakeRepo) MarkFired(ctx context.Context, id string, at time.Time) error {
	r.fired[id] = at
	for i, rem := range r.reminders {
		if rem.ID == id {
			r.reminders[i].LastFired = at
		}
	}
	return nil
}

type fakeEnqueuer struct {
	payloads []models.ReminderPayload
	err      error
}

func (e *fakeEnqueuer) Enqueue(ctx context.Context, payload models.ReminderPayload) error {
	if e.err != nil {
		return e.err
	}
	e.payloads = append(e.payloads, payload)
	return nil
}

func TestCreateValidation(t *testing.T) {
	svc := &DefaultReminderService{Repo: newFakeRepo(), Queue: &fakeEnqueuer{}}

	tests := []struct {
		name string
		rem  models.Reminder
		want []string
	}{
		{
			name: "everything missing",
			rem:  models.Reminder{},
			want: []string{"medication", "time", "patientId"},
		},
		{
			name: "malformed time",
			rem:  models.Reminder{Medication: "Metformin", Time: "25:99", PatientID: "pat-1"},
			want: []string{"time"},
		},
		{
			name: "time without minutes",
			rem:  models.Reminder{Medication: "Metformin", Time: "9am", PatientID: "pat-1"},
			want: []string{"time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.rem)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.want, validationErr.Fields)
		})
	}
}

func TestCreateDefaultsFrequency(t *testing.T) {
	svc := &DefaultReminderService{Repo: newFakeRepo(), Queue: &fakeEnqueuer{}}

	created, err := svc.Create(context.Background(), models.Reminder{
		Medication: "Metformin",
		Time:       "08:00",
		PatientID:  "pat-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Daily", created.Frequency)
	assert.Equal(t, models.ReminderPending, created.Status)
}

func TestSetStatus(t *testing.T) {
	repo := newFakeRepo(models.Reminder{ID: "rem-1", PatientID: "pat-1", Status: models.ReminderPending})
	svc := &DefaultReminderService{Repo: repo, Queue: &fakeEnqueuer{}}

	err := svc.SetStatus(context.Background(), "pat-1", "rem-1", "paused")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"status"}, validationErr.Fields)

	err = svc.SetStatus(context.Background(), "pat-1", "rem-404", models.ReminderCompleted)
	assert.ErrorIs(t, err, ErrReminderNotFound)

	require.NoError(t, svc.SetStatus(context.Background(), "pat-1", "rem-1", models.ReminderCompleted))
	assert.Equal(t, models.ReminderCompleted, repo.reminders[0].Status)
}

func TestEnqueueDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		models.Reminder{ID: "rem-1", PatientID: "pat-1", Medication: "Metformin", Time: "08:00", Frequency: "Daily", Status: models.ReminderPending},
		models.Reminder{ID: "rem-2", PatientID: "pat-2", Medication: "Aspirin", Time: "20:00", Frequency: "Daily", Status: models.ReminderPending},
		models.Reminder{ID: "rem-3", PatientID: "pat-3", Medication: "Statin", Time: "08:00", Frequency: "Daily", Status: models.ReminderPending, LastFired: now.Add(-time.Hour)},
	)
	queue := &fakeEnqueuer{}
	svc := &DefaultReminderService{Repo: repo, Queue: queue}

	n, err := svc.EnqueueDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, queue.payloads, 1)
	p := queue.payloads[0]
	assert.Equal(t, "rem-1", p.ReminderID)
	assert.Equal(t, "pat-1", p.PatientID)
	assert.Contains(t, p.Body, "Metformin")
	assert.Contains(t, p.Body, "Daily")

	_, marked := repo.fired["rem-1"]
	assert.True(t, marked, "dispatched reminders are marked fired")
}

func TestEnqueueDueSkipsFailedEnqueues(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		models.Reminder{ID: "rem-1", PatientID: "pat-1", Medication: "Metformin", Time: "08:00", Status: models.ReminderPending},
	)
	svc := &DefaultReminderService{Repo: repo, Queue: &fakeEnqueuer{err: assert.AnError}}

	n, err := svc.EnqueueDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	_, marked := repo.fired["rem-1"]
	assert.False(t, marked, "a reminder that never reached the queue is not marked fired")
}
