package auth_test

import (
	"testing"
	"time"

	"github.com/Vasu1712/chatter-backend/internal/auth"
	"github.com/stretchr/testify/require"
)

func TestGate_Authenticate(t *testing.T) {
	t.Parallel()

	gate := auth.NewGate("test-secret", 30*24*time.Hour)

	t.Run("it should return the embedded user id for a valid token", func(t *testing.T) {
		token, err := gate.Mint("u1")
		require.NoError(t, err)

		userID, err := gate.Authenticate(token)
		require.NoError(t, err)
		require.Equal(t, "u1", userID)
	})

	t.Run("it should reject an expired token", func(t *testing.T) {
		expired := auth.NewGate("test-secret", -time.Hour)
		token, err := expired.Mint("u1")
		require.NoError(t, err)

		_, err = gate.Authenticate(token)
		require.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("it should reject a token signed with another secret", func(t *testing.T) {
		other := auth.NewGate("other-secret", time.Hour)
		token, err := other.Mint("u1")
		require.NoError(t, err)

		_, err = gate.Authenticate(token)
		require.ErrorIs(t, err, auth.ErrUnauthorized)
	})

	t.Run("it should collapse every malformed credential into the same error", func(t *testing.T) {
		for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
			_, err := gate.Authenticate(token)
			require.ErrorIs(t, err, auth.ErrUnauthorized)
		}
	})
}
