package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// MaxPasswordLength is the longest password bcrypt will hash without truncation.
const MaxPasswordLength = 72

// User validation errors
var (
	ErrEmptyFirstName  = fmt.Errorf("%w: first name cannot be empty", ErrValidation)
	ErrEmptyLastName   = fmt.Errorf("%w: last name cannot be empty", ErrValidation)
	ErrEmptyEmail      = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail    = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyPassword   = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
)

// User represents a registered owner of bucketlists.
type User struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only set between registration and storage
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeEmail returns email in the form it is stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// NewUser creates a new User from registration data. The ID is assigned by
// the store on insert. The plaintext password must be hashed by the store
// before it is persisted.
func NewUser(firstName, lastName, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     NormalizeEmail(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if u.LastName == "" {
		return ErrEmptyLastName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	// A stored user carries a hash instead of the plaintext password.
	if u.Password == "" {
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
		return nil
	}
	if len(u.Password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	return nil
}
