package chat

import (
	"context"
	"testing"

	"carelink/models"
	"carelink/services/triage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	conversations map[string][]models.ChatMessage
}

func newMemoryStore() *memoryStore {
	return &memoryStore{conversations: make(map[string][]models.ChatMessage)}
}

func (s *memoryStore) Append(ctx context.Context, patientID string, msgs ...models.ChatMessage) error {
	s.conversations[patientID] = append(s.conversations[patientID], msgs...)
	return nil
}

func (s *memoryStore) History(ctx context.Context, patientID string) ([]models.ChatMessage, error) {
	return s.conversations[patientID], nil
}

func (s *memoryStore) Clear(ctx context.Context, patientID string) error {
	delete(s.conversations, patientID)
	return nil
}

func newService(store ConversationStore) *DefaultChatService {
	return &DefaultChatService{Store: store, Engine: triage.NewEngine()}
}

func TestSendAppendsPatientAndAdvisorMessages(t *testing.T) {
	store := newMemoryStore()
	svc := newService(store)

	reply, err := svc.Send(context.Background(), "pat-1", "I have a headache")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdvisor, reply.Sender)
	assert.Equal(t, models.SeverityModerate, reply.Severity)
	assert.Contains(t, reply.Text, "headache")

	msgs := store.conversations["pat-1"]
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RolePatient, msgs[0].Sender)
	assert.Equal(t, "I have a headache", msgs[0].Text)
	assert.Empty(t, msgs[0].Severity, "patient messages carry no severity")
	assert.Equal(t, *reply, msgs[1])
}

func TestSendEmergencyIsNotAnError(t *testing.T) {
	svc := newService(newMemoryStore())

	reply, err := svc.Send(context.Background(), "pat-1", "sudden chest pain")
	require.NoError(t, err)
	assert.Equal(t, models.SeverityEmergency, reply.Severity)
	assert.Contains(t, reply.Text, "108")
}

func TestConversationIsAppendOnly(t *testing.T) {
	store := newMemoryStore()
	svc := newService(store)

	_, err := svc.Send(context.Background(), "pat-1", "fever")
	require.NoError(t, err)
	first := append([]models.ChatMessage(nil), store.conversations["pat-1"]...)

	_, err = svc.Send(context.Background(), "pat-1", "cough too")
	require.NoError(t, err)

	msgs := store.conversations["pat-1"]
	require.Len(t, msgs, 4)
	assert.Equal(t, first, msgs[:2], "earlier messages are never rewritten")
}

func TestHistorySeedsGreeting(t *testing.T) {
	store := newMemoryStore()
	svc := newService(store)

	msgs, err := svc.History(context.Background(), "pat-1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleAdvisor, msgs[0].Sender)
	assert.Equal(t, Greeting, msgs[0].Text)

	// The greeting is persisted, not re-generated per call.
	again, err := svc.History(context.Background(), "pat-1")
	require.NoError(t, err)
	assert.Equal(t, msgs, again)
}

func TestReset(t *testing.T) {
	store := newMemoryStore()
	svc := newService(store)

	_, err := svc.Send(context.Background(), "pat-1", "headache")
	require.NoError(t, err)
	require.NoError(t, svc.Reset(context.Background(), "pat-1"))

	msgs, err := svc.History(context.Background(), "pat-1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Text)
}
