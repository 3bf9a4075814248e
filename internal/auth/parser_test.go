package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserRoundTrip(t *testing.T) {
	p := NewParser("secret")

	token, err := p.Sign(Claims{
		UserID: "user-1",
		Role:   "operator",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	claims, err := p.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "operator", claims.Role)
}

func TestParserFallsBackToSubject(t *testing.T) {
	p := NewParser("secret")

	token, err := p.Sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "svc-anpr"}})
	require.NoError(t, err)

	claims, err := p.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "svc-anpr", claims.UserID)
}

func TestParserRejects(t *testing.T) {
	p := NewParser("secret")

	expired, err := p.Sign(Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	require.NoError(t, err)

	otherKey, err := NewParser("other").Sign(Claims{UserID: "user-1"})
	require.NoError(t, err)

	noUser, err := p.Sign(Claims{Role: "operator"})
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":   expired,
		"other key": otherKey,
		"no user":   noUser,
		"garbage":   "not-a-token",
		"empty":     "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := p.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
