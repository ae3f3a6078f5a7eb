// Package auth issues and verifies bearer tokens for the single admin
// account of the HTTP API.
package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"procwatch/internal/domain"
)

type service struct {
	username     string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	now          func() time.Time
}

// NewService returns an AuthService for one account. With an empty secret
// or password hash, authentication is disabled and the API is open.
func NewService(username, passwordHash, jwtSecret string, jwtExpiry time.Duration) domain.AuthService {
	return &service{
		username:     username,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		now:          time.Now,
	}
}

func (s *service) Enabled() bool {
	return s.jwtSecret != "" && s.passwordHash != ""
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if !s.Enabled() {
		return nil, domain.ErrAuthDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.jwtExpiry)

	claims := jwt.MapClaims{
		"sub": s.username,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		AccessToken: tokenString,
		ExpiresAt:   expiresAt.UTC(),
	}, nil
}

func (s *service) Verify(token string) (jwt.MapClaims, error) {
	if !s.Enabled() {
		return nil, domain.ErrAuthDisabled
	}
	return domain.ValidateToken(token, s.jwtSecret)
}
