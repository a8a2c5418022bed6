// Package auth defines admin authentication.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
)

// RoleAdmin is the only role issued by the portal
const RoleAdmin = "admin"

var (
	// ErrInvalidCredentials is returned for a wrong username or password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a token cannot be verified
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Credentials is a login request
type Credentials struct {
	Username string `validate:"required,max=100"`
	Password string `validate:"required,max=200"`
}

// Validate for validating Credentials struct
func (c *Credentials) Validate() error {
	return validators.Struct(c)
}

// Token is an issued access token
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Principal is the identity carried by a valid token
type Principal struct {
	Subject string
	Role    string
}

// AuthService issues and verifies admin tokens
type AuthService interface {
	// Login checks credentials against the configured admin account and issues a token.
	Login(ctx context.Context, credentials *Credentials) (*Token, error)
	// Verify parses a token and returns its principal.
	Verify(token string) (*Principal, error)
}
