package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit. Registration rejects longer
// passwords, so a longer login attempt can never match.
const maxPasswordBytes = 72

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

// BcryptVerifier verifies hashes written by the user stores.
type BcryptVerifier struct{}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare returns nil only if password matches hashedPassword.
func (BcryptVerifier) Compare(hashedPassword, password string) error {
	if len(password) > maxPasswordBytes {
		return bcrypt.ErrPasswordTooLong
	}
	if !strings.HasPrefix(hashedPassword, "$2") {
		return bcrypt.ErrHashTooShort
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
