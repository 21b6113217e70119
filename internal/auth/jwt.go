package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/golang-jwt/jwt/v5"
)

const (
	jwtIssuer   = "fundboard"
	jwtLifetime = 24 * time.Hour
)

type internClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// JWTProvider signs and verifies HS256 tokens whose subject is the intern id.
type JWTProvider struct {
	secret []byte
	now    func() time.Time
	logger internal.Logger
}

func NewJWTProvider(secret string, logger internal.Logger) (*JWTProvider, error) {
	if secret == "" {
		return nil, errors.New("auth: jwt secret is required")
	}
	return &JWTProvider{secret: []byte(secret), now: time.Now, logger: logger}, nil
}

func (p *JWTProvider) Issue(intern internal.Intern) (string, error) {
	now := p.now()
	claims := internClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Subject:   strconv.Itoa(intern.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtLifetime)),
		},
		Name:  intern.Name,
		Email: intern.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		p.logger.Errorf("failed to sign token: %v", err)
		return "", err
	}
	return signed, nil
}

func (p *JWTProvider) ValidateToken(ctx context.Context, token string) (int, error) {
	var claims internClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(jwtIssuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		p.logger.Debugf("jwt rejected: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return id, nil
}

var _ Provider = (*JWTProvider)(nil)
var _ TokenIssuer = (*JWTProvider)(nil)
