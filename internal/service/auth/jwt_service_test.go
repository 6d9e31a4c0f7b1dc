package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/bucketlist-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-very-secret-signing-key-of-32-chars!"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewJWTService(t *testing.T) {
	t.Run("valid_config", func(t *testing.T) {
		svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("short_secret", func(t *testing.T) {
		_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
		assert.Error(t, err)
	})

	t.Run("non_positive_lifetime", func(t *testing.T) {
		_, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	ctx := context.Background()
	issued := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := newHMACJWTService(testSecret, time.Hour, fixedClock(issued))

	token, err := svc.GenerateToken(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.Identity)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.True(t, claims.NotBefore.Equal(issued))
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(time.Hour)))
	assert.NotEmpty(t, claims.ID)

	other, err := svc.GenerateToken(ctx, 42)
	require.NoError(t, err)
	otherClaims, err := svc.ValidateToken(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, otherClaims.ID, "each token gets its own jti")
}

func TestValidateToken_Failures(t *testing.T) {
	ctx := context.Background()
	issued := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	issuer := newHMACJWTService(testSecret, time.Hour, fixedClock(issued))

	token, err := issuer.GenerateToken(ctx, 7)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := newHMACJWTService(testSecret, time.Hour, fixedClock(issued.Add(2*time.Hour)))
		_, err := later.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("within_leeway_after_expiry", func(t *testing.T) {
		later := newHMACJWTService(testSecret, time.Hour, fixedClock(issued.Add(time.Hour+time.Minute)))
		_, err := later.ValidateToken(ctx, token)
		assert.NoError(t, err)
	})

	t.Run("not_yet_valid", func(t *testing.T) {
		earlier := newHMACJWTService(testSecret, time.Hour, fixedClock(issued.Add(-10*time.Minute)))
		_, err := earlier.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrTokenNotYetValid)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other := newHMACJWTService("another-secret-that-is-32-chars-long", time.Hour, fixedClock(issued))
		_, err := other.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := issuer.ValidateToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered_payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		parts[1] = parts[1] + "x"
		_, err := issuer.ValidateToken(ctx, strings.Join(parts, "."))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing_identity", func(t *testing.T) {
		claims := jwtCustomClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(issued),
				ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = issuer.ValidateToken(ctx, signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing_expiry", func(t *testing.T) {
		claims := jwtCustomClaims{
			Identity:         7,
			RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(issued)},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = issuer.ValidateToken(ctx, signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other_signing_method", func(t *testing.T) {
		claims := jwtCustomClaims{
			Identity: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(issued),
				ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = issuer.ValidateToken(ctx, signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
