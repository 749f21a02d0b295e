package storage

import (
	"context"
	"errors"

	"github.com/Vasu1712/chatter-backend/internal/models"
)

var (
	// ErrValidation marks a create call with missing or empty fields.
	ErrValidation = errors.New("invalid message input")
	// ErrUnavailable marks a backend read/write failure.
	ErrUnavailable = errors.New("message store unavailable")
)

// MessageStore is the durable record of messages. Implementations live in
// the memory, postgres and valkey subpackages and are chosen at startup.
type MessageStore interface {
	// Create persists a new message and returns it with its assigned id
	// and timestamp. Fails with ErrValidation if any field is empty and
	// with an ErrUnavailable-wrapped error on backend failure.
	Create(ctx context.Context, senderID, receiverID, body string) (models.Message, error)

	// ListBetween returns every message exchanged between the two users,
	// in either direction, newest first. An empty result is a nil-safe
	// empty slice, not an error.
	ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error)
}
