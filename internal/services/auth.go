package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventbook/internal/domain"
)

type authService struct {
	adminEmail        string
	adminPasswordHash string
	issuer            domain.TokenIssuer
	tokenExpiry       time.Duration
}

// NewAuthService returns an AuthService that authenticates the single admin
// identity configured via environment: adminPasswordHash is a bcrypt hash.
func NewAuthService(adminEmail, adminPasswordHash string, issuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		adminEmail:        domain.NormalizeEmail(adminEmail),
		adminPasswordHash: adminPasswordHash,
		issuer:            issuer,
		tokenExpiry:       tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	if !strings.EqualFold(domain.NormalizeEmail(email), s.adminEmail) {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.issuer.Issue("admin", s.adminEmail, s.tokenExpiry)
}
