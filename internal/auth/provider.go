package auth

import (
	"context"
	"errors"

	"github.com/Ashish-Code-01/internshp-project/internal"
)

var ErrInvalidToken = errors.New("auth: invalid token")

// Provider maps a bearer token to the intern it was issued for.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (int, error)
}

// TokenIssuer hands out tokens on login.
type TokenIssuer interface {
	Issue(intern internal.Intern) (string, error)
}

// Authority both issues and validates tokens.
type Authority interface {
	Provider
	TokenIssuer
}

// NewAuthority returns a JWT authority when secret is set and the
// placeholder-token authority otherwise.
func NewAuthority(secret string, currentInternID int, logger internal.Logger) (Authority, error) {
	if secret == "" {
		return NewLocalAuthProvider(currentInternID, logger), nil
	}
	return NewJWTProvider(secret, logger)
}
