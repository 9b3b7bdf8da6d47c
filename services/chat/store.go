// File: services/chat/store.go
package chat

import (
	"context"
	"encoding/json"
	"time"

	"carelink/models"

	"github.com/go-redis/redis/v8"
)

const conversationPrefix = "chat:conv:"

// ConversationStore holds a patient's advisory conversation as an append-only
// message sequence.
type ConversationStore interface {
	Append(ctx context.Context, patientID string, msgs ...models.ChatMessage) error
	History(ctx context.Context, patientID string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, patientID string) error
}

// RedisConversationStore keeps each conversation in a Redis list with a
// rolling TTL.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{client: client, ttl: ttl}
}

func (s *RedisConversationStore) Append(ctx context.Context, patientID string, msgs ...models.ChatMessage) error {
	key := conversationPrefix + patientID
	values := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, b)
	}
	if err := s.client.RPush(ctx, key, values...).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

func (s *RedisConversationStore) History(ctx context.Context, patientID string) ([]models.ChatMessage, error) {
	key := conversationPrefix + patientID
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	msgs := make([]models.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var m models.ChatMessage
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *RedisConversationStore) Clear(ctx context.Context, patientID string) error {
	return s.client.Del(ctx, conversationPrefix+patientID).Err()
}
