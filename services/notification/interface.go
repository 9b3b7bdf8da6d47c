package notification

import (
	"context"
	"fmt"

	"carelink/services/patient"
	"carelink/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService delivers pushes to patients. Producers hand it the data
// a notification needs; delivery scheduling lives elsewhere (the reminder
// worker), never in the producing service.
type NotificationService interface {
	SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error
}

// DefaultNotificationService sends through Firebase Cloud Messaging.
type DefaultNotificationService struct {
	Patients patient.PatientService
}

func NewDefaultNotificationService(patients patient.PatientService) (*DefaultNotificationService, error) {
	if patients == nil {
		return nil, fmt.Errorf("notification service initialization error: patient service is nil")
	}
	return &DefaultNotificationService{Patients: patients}, nil
}

// SendPatientPush looks up the patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error {
	logger := utils.GetLogger()

	p, err := s.Patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPush: could not find patient %s: %w", patientID, err)
	}
	if p.FCMToken == "" {
		return fmt.Errorf("SendPatientPush: patient %s has no FCM token", patientID)
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPatientPush: send failed for patient %s: %w", patientID, err)
	}
	logger.Debug("push delivered", zap.String("patientId", patientID), zap.String("title", title))
	return nil
}
