package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrUnauthorized is the only error the gate ever returns. Absent,
// malformed, expired and badly-signed credentials are all collapsed into it
// so callers cannot distinguish the sub-cause.
var ErrUnauthorized = errors.New("not authorized")

// Claims is the payload embedded in a bearer token by the token authority.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Gate validates bearer credentials and extracts the caller identity. It is
// stateless; the signing secret is shared with the external token authority.
type Gate struct {
	secret []byte
	ttl    time.Duration
}

func NewGate(secret string, ttl time.Duration) *Gate {
	return &Gate{secret: []byte(secret), ttl: ttl}
}

// Authenticate parses and verifies a bearer token and returns the user id
// it carries.
func (g *Gate) Authenticate(token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid || claims.ID == "" {
		return "", ErrUnauthorized
	}

	return claims.ID, nil
}

// Mint signs a token for the given user id with the configured validity
// window. The production issuer is the token authority; this exists for the
// token command and for tests.
func (g *Gate) Mint(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}
