package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	reminderRepo "carelink/database/repository/reminder"
	"carelink/models"
)

// ErrReminderNotFound is returned for unknown reminder IDs.
var ErrReminderNotFound = errors.New("reminder not found")

// ValidationError enumerates every reminder field that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// TaskEnqueuer hands reminder payloads to the delivery queue. The reminder
// service only produces payloads; the worker owns delivery.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, payload models.ReminderPayload) error
}

// ReminderService manages medication reminders.
type ReminderService interface {
	Create(ctx context.Context, rem models.Reminder) (*models.Reminder, error)
	List(ctx context.Context, patientID string) ([]models.Reminder, error)
	SetStatus(ctx context.Context, patientID, id, status string) error
	EnqueueDue(ctx context.Context, now time.Time) (int, error)
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo  reminderRepo.ReminderRepository
	Queue TaskEnqueuer
}
