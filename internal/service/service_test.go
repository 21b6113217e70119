package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/auth"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func names(interns []internal.Intern) []string {
	out := make([]string, len(interns))
	for i, in := range interns {
		out[i] = in.Name
	}
	return out
}

func TestRankInterns_SeedOrder(t *testing.T) {
	ranked := RankInterns(storage.SeedInterns())
	assert.Equal(t, []string{"Sarah Chen", "Mike Rodriguez", "Alex Johnson", "Emma Wilson", "David Kim"}, names(ranked))
	for i, in := range ranked {
		assert.Equal(t, i+1, in.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].TotalRaised, in.TotalRaised)
		}
	}
}

func TestRankInterns_EdgeCases(t *testing.T) {
	empty := RankInterns(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	single := RankInterns([]internal.Intern{{ID: 7, TotalRaised: 10, Rank: 99}})
	require.Len(t, single, 1)
	assert.Equal(t, 1, single[0].Rank)

	tied := RankInterns([]internal.Intern{
		{ID: 3, Name: "c", TotalRaised: 50},
		{ID: 1, Name: "a", TotalRaised: 50},
		{ID: 2, Name: "b", TotalRaised: 75},
	})
	assert.Equal(t, []string{"b", "a", "c"}, names(tied))
}

func TestRankInterns_DoesNotMutateInput(t *testing.T) {
	input := storage.SeedInterns()
	RankInterns(input)
	assert.Equal(t, storage.SeedInterns(), input)
}

func TestRankedIntern(t *testing.T) {
	repo := storage.NewMemoryStorage(storage.SeedDataset())

	alex, err := RankedIntern(context.Background(), repo, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", alex.Name)
	assert.Equal(t, 3, alex.Rank)

	_, err = RankedIntern(context.Background(), repo, 404)
	var appErr *internal.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Intern not found", appErr.Message)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

type countingRepo struct {
	storage.InternRepository
	lists, gets int
}

func (r *countingRepo) ListInterns(ctx context.Context) ([]internal.Intern, error) {
	r.lists++
	return r.InternRepository.ListInterns(ctx)
}

func (r *countingRepo) GetIntern(ctx context.Context, id int) (*internal.Intern, error) {
	r.gets++
	return r.InternRepository.GetIntern(ctx, id)
}

func TestRankedIntern_LooksUpByID(t *testing.T) {
	repo := &countingRepo{InternRepository: storage.NewMemoryStorage(storage.SeedDataset())}

	_, err := RankedIntern(context.Background(), repo, 404)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, 1, repo.gets)
	assert.Zero(t, repo.lists, "unknown id must not build the leaderboard")

	sarah, err := RankedIntern(context.Background(), repo, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, sarah.Rank)
	assert.Equal(t, 2, repo.gets)
	assert.Equal(t, 1, repo.lists)
}

func TestSummarize(t *testing.T) {
	s := Summarize(RankInterns(storage.SeedInterns()))
	assert.Equal(t, 5, s.Participants)
	assert.InDelta(t, 80276.75, s.TotalRaised, 0.001)
	assert.Equal(t, 229, s.TotalDonations)
	assert.InDelta(t, 16055.35, s.AverageRaised, 0.001)
	assert.Equal(t, []string{"Sarah Chen", "Mike Rodriguez", "Alex Johnson"}, names(s.Podium))

	empty := Summarize(nil)
	assert.Zero(t, empty.Participants)
	assert.Zero(t, empty.AverageRaised)
	assert.NotNil(t, empty.Podium)
}

func TestResolveAchievements(t *testing.T) {
	catalog := storage.SeedAchievements()
	alex := storage.SeedInterns()[0]

	got := ResolveAchievements(alex, catalog)
	require.Len(t, got, len(catalog))
	want := map[string]bool{
		"First Donation":   true,
		"Team Player":      true,
		"Rising Star":      true,
		"Top Performer":    false,
		"Community Leader": false,
		"Marathon Runner":  false,
	}
	for i, a := range got {
		assert.Equal(t, catalog[i].ID, a.ID, "catalog order")
		assert.Equal(t, want[a.Name], a.Unlocked, a.Name)
	}
	for _, a := range catalog {
		assert.False(t, a.Unlocked, "catalog must not be mutated")
	}
}

func TestResolveAchievements_MatchesByExactName(t *testing.T) {
	catalog := []internal.Achievement{{ID: 1, Name: "Team Player"}, {ID: 2, Name: "Rising Star"}}
	intern := internal.Intern{Achievements: []string{"team player", "2", "Rising Star"}}
	got := ResolveAchievements(intern, catalog)
	assert.False(t, got[0].Unlocked)
	assert.True(t, got[1].Unlocked)

	assert.Empty(t, ResolveAchievements(intern, nil))
}

func TestAchievementsFor(t *testing.T) {
	defer goleak.VerifyNone(t)
	repo := storage.NewMemoryStorage(storage.SeedDataset())
	got, err := AchievementsFor(context.Background(), repo, repo, 2)
	require.NoError(t, err)
	unlocked := 0
	for _, a := range got {
		if a.Unlocked {
			unlocked++
		}
	}
	assert.Equal(t, 5, unlocked)

	_, err = AchievementsFor(context.Background(), repo, repo, 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeriveReferralCode(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":          "janedoe2025",
		"  Mary  Ann\tLee ": "maryannlee2025",
		"ALEX":              "alex2025",
		"":                  "2025",
		"ΟΔΟΣ ΜΟΥ":          "οδοςμου2025",
		"İlker":             "i\u0307lker2025",
		"\uFEFFAnn Lee":     "annlee2025",
		"Ann\u00a0Lee":      "annlee2025",
		"Ann\u0085Lee":      "ann\u0085lee2025",
	}
	for name, want := range tests {
		assert.Equal(t, want, DeriveReferralCode(name, "2025"), name)
	}
}

func testDeps() AuthDeps {
	repo := storage.NewMemoryStorage(storage.SeedDataset())
	return AuthDeps{
		Interns:         repo,
		Tokens:          auth.NewLocalAuthProvider(1, internal.NopLogger()),
		Logger:          internal.NopLogger(),
		CurrentInternID: 1,
		ReferralSuffix:  "2025",
		Now:             func() time.Time { return time.Date(2025, time.March, 4, 15, 30, 0, 0, time.UTC) },
	}
}

func TestLogin_IgnoresCredentials(t *testing.T) {
	resp, err := Login(context.Background(), testDeps(), &LoginRequest{Email: "who@example.com", Password: "wrong"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, auth.PlaceholderToken, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, 1, resp.User.ID)
	assert.Equal(t, 3, resp.User.Rank)
}

func TestLogin_HonoursCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)
	deps := testDeps()
	deps.Delay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Login(ctx, deps, &LoginRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSignup_FabricatesUser(t *testing.T) {
	deps := testDeps()
	resp, err := Signup(context.Background(), deps, &SignupRequest{Name: "Jane Doe", Email: "jane@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Account created successfully", resp.Message)
	assert.Empty(t, resp.Token)

	u := resp.User
	require.NotNil(t, u)
	assert.Equal(t, int(deps.Now().UnixMilli()), u.ID)
	assert.Equal(t, "janedoe2025", u.ReferralCode)
	assert.Equal(t, 6, u.Rank)
	assert.Zero(t, u.TotalRaised)
	assert.NotNil(t, u.Achievements)
	assert.Equal(t, "2025-03-04", u.JoinDate.String())

	// Nothing was stored.
	list, err := deps.Interns.ListInterns(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestSignup_RequiresName(t *testing.T) {
	_, err := Signup(context.Background(), testDeps(), &SignupRequest{Email: "x@example.com"})
	var appErr *internal.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}
