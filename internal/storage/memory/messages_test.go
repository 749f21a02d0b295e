package memory_test

import (
	"context"
	"testing"

	"github.com/Vasu1712/chatter-backend/internal/storage"
	"github.com/Vasu1712/chatter-backend/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

func TestMessageStore_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("it should reject empty fields and store nothing", func(t *testing.T) {
		store := memory.NewMessageStore()

		cases := []struct {
			name                   string
			sender, receiver, body string
		}{
			{"missing sender", "", "u2", "hi"},
			{"missing receiver", "u1", "", "hi"},
			{"missing body", "u1", "u2", ""},
		}

		for _, tc := range cases {
			_, err := store.Create(ctx, tc.sender, tc.receiver, tc.body)
			require.ErrorIs(t, err, storage.ErrValidation, tc.name)
		}
		require.Zero(t, store.Len())
	})

	t.Run("it should assign an id and timestamp", func(t *testing.T) {
		store := memory.NewMessageStore()

		msg, err := store.Create(ctx, "u1", "u2", "hi")
		require.NoError(t, err)
		require.NotEmpty(t, msg.ID)
		require.False(t, msg.CreatedAt.IsZero())
		require.Equal(t, "u1", msg.SenderID)
		require.Equal(t, "u2", msg.ReceiverID)
		require.Equal(t, "hi", msg.Body)
	})

	t.Run("it should permit self-messaging", func(t *testing.T) {
		store := memory.NewMessageStore()

		_, err := store.Create(ctx, "u1", "u1", "note to self")
		require.NoError(t, err)

		msgs, err := store.ListBetween(ctx, "u1", "u1")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
	})
}

func TestMessageStore_ListBetween(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("it should include a created message exactly once in both directions", func(t *testing.T) {
		store := memory.NewMessageStore()

		created, err := store.Create(ctx, "u1", "u2", "hi")
		require.NoError(t, err)

		forward, err := store.ListBetween(ctx, "u1", "u2")
		require.NoError(t, err)
		backward, err := store.ListBetween(ctx, "u2", "u1")
		require.NoError(t, err)

		require.Equal(t, forward, backward)
		require.Len(t, forward, 1)
		require.Equal(t, created, forward[0])
	})

	t.Run("it should return alternating messages in reverse insertion order", func(t *testing.T) {
		store := memory.NewMessageStore()

		bodies := []string{"one", "two", "three", "four", "five"}
		for i, body := range bodies {
			sender, receiver := "a", "b"
			if i%2 == 1 {
				sender, receiver = "b", "a"
			}
			_, err := store.Create(ctx, sender, receiver, body)
			require.NoError(t, err)
		}

		msgs, err := store.ListBetween(ctx, "a", "b")
		require.NoError(t, err)
		require.Len(t, msgs, len(bodies))

		for i, msg := range msgs {
			require.Equal(t, bodies[len(bodies)-1-i], msg.Body)
			require.False(t, i > 0 && msgs[i-1].CreatedAt.Before(msg.CreatedAt))
		}
	})

	t.Run("it should not leak messages from unrelated pairs", func(t *testing.T) {
		store := memory.NewMessageStore()

		_, err := store.Create(ctx, "a", "b", "between a and b")
		require.NoError(t, err)
		_, err = store.Create(ctx, "a", "c", "between a and c")
		require.NoError(t, err)

		msgs, err := store.ListBetween(ctx, "a", "b")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.Equal(t, "between a and b", msgs[0].Body)
	})

	t.Run("it should return an empty slice when no messages exist", func(t *testing.T) {
		store := memory.NewMessageStore()

		msgs, err := store.ListBetween(ctx, "a", "b")
		require.NoError(t, err)
		require.NotNil(t, msgs)
		require.Empty(t, msgs)
	})
}
