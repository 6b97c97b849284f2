package domain

import (
	"context"
	"time"
)

// TokenIssuer signs access tokens for the admin identity.
type TokenIssuer interface {
	Issue(subject, email string, expiry time.Duration) (string, error)
}

// TokenVerifier validates an access token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthService authenticates the admin identity that may create and update
// events. There is no user collection: credentials come from configuration.
type AuthService interface {
	// Login returns a signed token, or ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (token string, err error)
}
