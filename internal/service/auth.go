package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/auth"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var validate = validator.New()

const signupMessage = "Account created successfully"

// LoginRequest is accepted as-is; credentials are never checked.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateSignupRequest(req *SignupRequest) error {
	return validate.Struct(req)
}

// AuthDeps groups what the mock login and signup flows need.
type AuthDeps struct {
	Interns         storage.InternRepository
	Tokens          auth.TokenIssuer
	Logger          internal.Logger
	CurrentInternID int
	Delay           time.Duration
	ReferralSuffix  string
	Now             func() time.Time
}

func (d AuthDeps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// DeriveReferralCode lower-cases name with full Unicode rules, strips all
// whitespace and appends suffix. Codes are not checked for uniqueness.
func DeriveReferralCode(name, suffix string) string {
	lowered := cases.Lower(language.Und).String(name)
	return strings.Map(func(r rune) rune {
		if isReferralSpace(r) {
			return -1
		}
		return r
	}, lowered) + suffix
}

// isReferralSpace matches the White_Space set plus the byte-order mark,
// excluding NEL (U+0085).
func isReferralSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Login waits out the simulated latency and signs in as the current intern
// regardless of the credentials supplied.
func Login(ctx context.Context, deps AuthDeps, req *LoginRequest) (*internal.AuthResponse, error) {
	if err := simulateLatency(ctx, deps.Delay); err != nil {
		return nil, err
	}
	user, err := RankedIntern(ctx, deps.Interns, deps.CurrentInternID)
	if err != nil {
		return nil, err
	}
	token, err := deps.Tokens.Issue(*user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	deps.Logger.Debugf("login accepted for %q as intern %d", req.Email, user.ID)
	return &internal.AuthResponse{Success: true, User: user, Token: token}, nil
}

// Signup fabricates an intern record from req. Nothing is stored.
func Signup(ctx context.Context, deps AuthDeps, req *SignupRequest) (*internal.AuthResponse, error) {
	if err := ValidateSignupRequest(req); err != nil {
		return nil, internal.WrapAppError(400, "Signup validation failed", err)
	}
	if err := simulateLatency(ctx, deps.Delay); err != nil {
		return nil, err
	}
	interns, err := deps.Interns.ListInterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interns: %w", err)
	}

	now := deps.now()
	user := &internal.Intern{
		ID:              int(now.UnixMilli()),
		Name:            req.Name,
		Email:           req.Email,
		ReferralCode:    DeriveReferralCode(req.Name, deps.ReferralSuffix),
		JoinDate:        internal.DateOf(now),
		Rank:            len(interns) + 1,
		Achievements:    []string{},
		RecentDonations: []internal.Donation{},
	}
	for _, in := range interns {
		if in.ReferralCode == user.ReferralCode {
			deps.Logger.Debugf("referral code %q already belongs to intern %d", user.ReferralCode, in.ID)
			break
		}
	}
	return &internal.AuthResponse{Success: true, Message: signupMessage, User: user}, nil
}

func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
