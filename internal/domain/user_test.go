package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser(" Ada ", "Lovelace", "ada@example.com", "analytical-engine")
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.FirstName, "first name should be trimmed")
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "analytical-engine", user.Password)
	assert.Empty(t, user.HashedPassword, "hashing is the store's job")
	assert.Zero(t, user.ID, "ID is assigned on insert")
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
		wantErr   error
	}{
		{"empty first name", "", "Lovelace", "ada@example.com", "secret", ErrEmptyFirstName},
		{"blank last name", "Ada", "   ", "ada@example.com", "secret", ErrEmptyLastName},
		{"empty email", "Ada", "Lovelace", "", "secret", ErrEmptyEmail},
		{"invalid email", "Ada", "Lovelace", "not-an-email", "secret", ErrInvalidEmail},
		{"empty password", "Ada", "Lovelace", "ada@example.com", "", ErrEmptyPassword},
		{
			"password too long",
			"Ada", "Lovelace", "ada@example.com",
			strings.Repeat("x", MaxPasswordLength+1),
			ErrPasswordTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.firstName, tc.lastName, tc.email, tc.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	user := User{
		ID:             7,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate(), "a hashed password stands in for the plaintext one")

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
