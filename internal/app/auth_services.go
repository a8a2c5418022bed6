package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/auth"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "school-portal"

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// authService implements the AuthService interface for the single configured admin account
type authService struct {
	settings *config.AuthSettings
	now      func() time.Time
	logger   logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(settings *config.AuthSettings, logger logger.Logger) (auth.AuthService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if _, err := bcrypt.Cost([]byte(settings.AdminPasswordHash)); err != nil {
		return nil, fmt.Errorf("admin password hash is not a bcrypt hash: %w", err)
	}

	return &authService{
		settings: settings,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// Login checks credentials against the admin account and issues an HS256 token
func (s *authService) Login(_ context.Context, credentials *auth.Credentials) (*auth.Token, error) {
	if err := credentials.Validate(); err != nil {
		return nil, err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(s.settings.AdminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.settings.AdminPasswordHash), []byte(credentials.Password))
	if !usernameOK || passwordErr != nil {
		s.logger.Warn("Rejected admin login", "username", credentials.Username)
		return nil, auth.ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.settings.TokenTTL)
	claims := adminClaims{
		Role: auth.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.settings.AdminUsername,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.settings.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("Admin logged in", "username", credentials.Username)
	return &auth.Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses token and returns its principal
func (s *authService) Verify(token string) (*auth.Principal, error) {
	if token == "" {
		return nil, auth.ErrInvalidToken
	}

	claims := &adminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.settings.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token not valid")
		}
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if claims.Role != auth.RoleAdmin {
		return nil, fmt.Errorf("%w: unexpected role %q", auth.ErrInvalidToken, claims.Role)
	}

	return &auth.Principal{Subject: claims.Subject, Role: claims.Role}, nil
}

// HashPassword returns the bcrypt hash stored in auth.admin_password_hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
