package mocks

import "errors"

// ErrPasswordMismatch is returned by MockPasswordVerifier when ShouldSucceed is false.
var ErrPasswordMismatch = errors.New("password mismatch")

// CompareCall records the arguments of one Compare call.
type CompareCall struct {
	HashedPassword string
	Password       string
}

// MockPasswordVerifier implements auth.PasswordVerifier. CompareFn, when set,
// takes precedence over ShouldSucceed.
type MockPasswordVerifier struct {
	ShouldSucceed bool
	CompareFn     func(hashedPassword, password string) error

	Calls []CompareCall
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.Calls = append(m.Calls, CompareCall{HashedPassword: hashedPassword, Password: password})

	switch {
	case m.CompareFn != nil:
		return m.CompareFn(hashedPassword, password)
	case m.ShouldSucceed:
		return nil
	default:
		return ErrPasswordMismatch
	}
}
