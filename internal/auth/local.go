package auth

import (
	"context"

	"github.com/Ashish-Code-01/internshp-project/internal"
)

// PlaceholderToken is what the dashboard receives when no signing secret
// is configured.
const PlaceholderToken = "mock-jwt-token"

// LocalAuthProvider issues the placeholder token to everyone and accepts
// only that token, mapping it to the configured current intern.
type LocalAuthProvider struct {
	Token    string
	InternID int
	logger   internal.Logger
}

func NewLocalAuthProvider(internID int, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{Token: PlaceholderToken, InternID: internID, logger: logger}
}

func (a *LocalAuthProvider) Issue(intern internal.Intern) (string, error) {
	return a.Token, nil
}

func (a *LocalAuthProvider) ValidateToken(ctx context.Context, token string) (int, error) {
	if token == a.Token {
		return a.InternID, nil
	}
	a.logger.Debugf("rejected unknown token")
	return 0, ErrInvalidToken
}

var _ Provider = (*LocalAuthProvider)(nil)
var _ TokenIssuer = (*LocalAuthProvider)(nil)
