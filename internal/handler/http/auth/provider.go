// Package auth implements admin authentication: credential validation,
// JWT token issuance, and the authorization middleware for admin routes.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidCredentials is returned when the supplied username or password
// does not match the configured admin user.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Credentials represents a username/password pair submitted for authentication.
type Credentials struct {
	Username string
	Password string
}

// Provider validates credentials against some backing store.
type Provider interface {
	Validate(creds Credentials) error
}

// EnvProvider validates against the single admin user configured via
// ADMIN_USERNAME and ADMIN_PASSWORD. Comparison is constant-time over
// SHA-256 digests so neither length nor content leaks through timing.
type EnvProvider struct {
	usernameHash [32]byte
	passwordHash [32]byte
}

// NewEnvProvider reads the admin credentials from the environment.
// Both variables must be set and the password must be at least 8 characters.
func NewEnvProvider() (*EnvProvider, error) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return nil, fmt.Errorf("NewEnvProvider: ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("NewEnvProvider: ADMIN_PASSWORD must be at least 8 characters")
	}
	return &EnvProvider{
		usernameHash: sha256.Sum256([]byte(username)),
		passwordHash: sha256.Sum256([]byte(password)),
	}, nil
}

// Validate checks the supplied credentials against the configured admin user.
func (p *EnvProvider) Validate(creds Credentials) error {
	userHash := sha256.Sum256([]byte(creds.Username))
	passHash := sha256.Sum256([]byte(creds.Password))

	userOK := subtle.ConstantTimeCompare(userHash[:], p.usernameHash[:])
	passOK := subtle.ConstantTimeCompare(passHash[:], p.passwordHash[:])
	if userOK&passOK != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
