package valkey

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Vasu1712/chatter-backend/internal/models"
	"github.com/Vasu1712/chatter-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

// MessageStore implements the message storage interface on Valkey. Each
// unordered user pair maps to one list; LPUSH on create keeps the list
// newest first, so ListBetween is a single LRANGE with no client-side sort.
type MessageStore struct {
	client valkey.Client
}

// NewMessageStore connects to a Valkey node.
func NewMessageStore(addr string) (*MessageStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to valkey: %w", err)
	}
	return &MessageStore{client: client}, nil
}

// pairKey normalizes the two user ids so both directions address the same
// list.
func pairKey(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("dm:%s:%s", userA, userB)
}

func (s *MessageStore) Create(ctx context.Context, senderID, receiverID, body string) (models.Message, error) {
	if senderID == "" || receiverID == "" || body == "" {
		return models.Message{}, storage.ErrValidation
	}

	msg := models.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: marshal: %w", storage.ErrUnavailable, err)
	}

	key := pairKey(senderID, receiverID)
	if err := s.client.Do(ctx, s.client.B().Lpush().Key(key).Element(string(data)).Build()).Error(); err != nil {
		return models.Message{}, fmt.Errorf("%w: lpush: %w", storage.ErrUnavailable, err)
	}

	return msg, nil
}

func (s *MessageStore) ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error) {
	key := pairKey(userA, userB)
	entries, err := s.client.Do(ctx, s.client.B().Lrange().Key(key).Start(0).Stop(-1).Build()).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("%w: lrange: %w", storage.ErrUnavailable, err)
	}

	msgs := make([]models.Message, 0, len(entries))
	for _, entry := range entries {
		var msg models.Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("%w: unmarshal: %w", storage.ErrUnavailable, err)
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

// Close releases the Valkey connection.
func (s *MessageStore) Close() {
	s.client.Close()
}
