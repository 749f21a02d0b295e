package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Vasu1712/chatter-backend/internal/models"
	"github.com/Vasu1712/chatter-backend/internal/storage"
	"github.com/google/uuid"
)

// MessageStore is an in-memory append log of messages, used for local
// development and tests.
type MessageStore struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{}
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

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	return msg, nil
}

func (s *MessageStore) ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Walk the log backwards so equal timestamps come out newest
	// insertion first; the stable sort below preserves that order.
	result := make([]models.Message, 0)
	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			result = append(result, m)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Len reports how many messages have been persisted, across all pairs.
func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
