package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Vasu1712/chatter-backend/internal/models"
	"github.com/Vasu1712/chatter-backend/internal/storage"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// MessageStore implements the message storage interface using PostgreSQL.
//
// Expected schema:
//
//	CREATE TABLE messages (
//	    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    seq         BIGSERIAL,
//	    sender_id   TEXT NOT NULL,
//	    receiver_id TEXT NOT NULL,
//	    body        TEXT NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
//	CREATE INDEX messages_pair_idx ON messages (sender_id, receiver_id, created_at DESC);
//
// seq breaks created_at ties so a same-timestamp burst still lists newest
// insertion first.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore opens and pings a PostgreSQL connection pool.
func NewMessageStore(dataSourceName string) (*MessageStore, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &MessageStore{db: db}, nil
}

func (s *MessageStore) Create(ctx context.Context, senderID, receiverID, body string) (models.Message, error) {
	if senderID == "" || receiverID == "" || body == "" {
		return models.Message{}, storage.ErrValidation
	}

	msg := models.Message{}
	query := `
		INSERT INTO messages (sender_id, receiver_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, sender_id, receiver_id, body, created_at
	`
	err := s.db.QueryRowContext(ctx, query, senderID, receiverID, body).Scan(
		&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.CreatedAt,
	)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: insert: %w", storage.ErrUnavailable, err)
	}

	return msg, nil
}

func (s *MessageStore) ListBetween(ctx context.Context, userA, userB string) ([]models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, body, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at DESC, seq DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %w", storage.ErrUnavailable, err)
	}
	defer rows.Close()

	msgs := make([]models.Message, 0)
	for rows.Next() {
		msg := models.Message{}
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %w", storage.ErrUnavailable, err)
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %w", storage.ErrUnavailable, err)
	}

	return msgs, nil
}

// Close closes the database connection pool.
func (s *MessageStore) Close() error {
	return s.db.Close()
}
