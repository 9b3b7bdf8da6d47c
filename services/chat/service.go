// File: services/chat/service.go
package chat

import (
	"context"
	"fmt"
	"time"

	"carelink/models"
	"carelink/services/triage"

	"github.com/google/uuid"
)

// Greeting opens every new conversation.
const Greeting = "Hello! I'm your care assistant. How can I help you today? " +
	"Please describe your symptoms or health concerns."

// ChatService runs the advisory chat: each patient message is appended to the
// conversation, triaged, and answered with an advisor message.
type ChatService interface {
	Send(ctx context.Context, patientID, text string) (*models.ChatMessage, error)
	History(ctx context.Context, patientID string) ([]models.ChatMessage, error)
	Reset(ctx context.Context, patientID string) error
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Store  ConversationStore
	Engine *triage.Engine
}

// Send appends the patient message and the triage-derived advisor reply, and
// returns the reply. Emergency classifications travel the same path as any
// other guidance; they are never an error.
func (s *DefaultChatService) Send(ctx context.Context, patientID, text string) (*models.ChatMessage, error) {
	now := time.Now()
	patientMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    models.RolePatient,
		Timestamp: now,
	}

	guidance := s.Engine.Evaluate(text)
	advisorMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      triage.Render(guidance),
		Sender:    models.RoleAdvisor,
		Severity:  guidance.Severity,
		Timestamp: now,
	}

	if err := s.Store.Append(ctx, patientID, patientMsg, advisorMsg); err != nil {
		return nil, fmt.Errorf("append conversation: %w", err)
	}
	return &advisorMsg, nil
}

// History returns the conversation so far, seeding the greeting for a
// conversation that has not started yet.
func (s *DefaultChatService) History(ctx context.Context, patientID string) ([]models.ChatMessage, error) {
	msgs, err := s.Store.History(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if len(msgs) == 0 {
		greeting := models.ChatMessage{
			ID:        uuid.New().String(),
			Text:      Greeting,
			Sender:    models.RoleAdvisor,
			Timestamp: time.Now(),
		}
		if err := s.Store.Append(ctx, patientID, greeting); err != nil {
			return nil, fmt.Errorf("seed conversation: %w", err)
		}
		return []models.ChatMessage{greeting}, nil
	}
	return msgs, nil
}

// Reset clears the conversation.
func (s *DefaultChatService) Reset(ctx context.Context, patientID string) error {
	return s.Store.Clear(ctx, patientID)
}
