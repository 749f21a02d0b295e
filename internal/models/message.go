package models

import "time"

// Message is a single direct message between two users. Messages are
// immutable once created; the store hands out copies, never shared records.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
