package reminder

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Create validates and stores a new reminder. Medication and a valid "HH:MM"
// time are required; frequency defaults to daily.
func (s *DefaultReminderService) Create(ctx context.Context, rem models.Reminder) (*models.Reminder, error) {
	var bad []string
	if rem.Medication == "" {
		bad = append(bad, "medication")
	}
	if rem.Time == "" || !timeOfDayRe.MatchString(rem.Time) {
		bad = append(bad, "time")
	}
	if rem.PatientID == "" {
		bad = append(bad, "patientId")
	}
	if len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}
	if rem.Frequency == "" {
		rem.Frequency = "Daily"
	}

	if err := s.Repo.Create(ctx, &rem); err != nil {
		return nil, err
	}
	return &rem, nil
}

func (s *DefaultReminderService) List(ctx context.Context, patientID string) ([]models.Reminder, error) {
	return s.Repo.ListByPatient(ctx, patientID)
}

// SetStatus toggles a reminder between pending and completed.
func (s *DefaultReminderService) SetStatus(ctx context.Context, patientID, id, status string) error {
	if status != models.ReminderPending && status != models.ReminderCompleted {
		return &ValidationError{Fields: []string{"status"}}
	}
	err := s.Repo.SetStatus(ctx, patientID, id, status)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrReminderNotFound
	}
	return err
}

// EnqueueDue finds reminders due at the current minute and hands their
// payloads to the delivery queue. It returns the number enqueued. Reminders
// already fired within the last day are skipped so a tick never double-sends.
func (s *DefaultReminderService) EnqueueDue(ctx context.Context, now time.Time) (int, error) {
	logger := utils.GetLogger()
	minute := now.Format("15:04")

	due, err := s.Repo.ListDue(ctx, minute, now.Add(-24*time.Hour))
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	enqueued := 0
	for _, rem := range due {
		payload := models.ReminderPayload{
			ReminderID: rem.ID,
			PatientID:  rem.PatientID,
			Title:      "Medication reminder",
			Body:       fmt.Sprintf("Time to take %s (%s)", rem.Medication, rem.Frequency),
			FireDate:   now.Format(time.RFC3339),
		}
		if err := s.Queue.Enqueue(ctx, payload); err != nil {
			logger.Error("EnqueueDue: enqueue failed",
				zap.String("reminderId", rem.ID), zap.Error(err))
			continue
		}
		if err := s.Repo.MarkFired(ctx, rem.ID, now); err != nil {
			logger.Error("EnqueueDue: mark fired failed",
				zap.String("reminderId", rem.ID), zap.Error(err))
		}
		enqueued++
	}
	return enqueued, nil
}
