package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
)

const podiumSize = 3

type LeaderboardSummary struct {
	Participants   int               `json:"participants"`
	TotalRaised    float64           `json:"totalRaised"`
	TotalDonations int               `json:"totalDonations"`
	AverageRaised  float64           `json:"averageRaised"`
	Podium         []internal.Intern `json:"podium"`
}

// RankInterns orders interns by amount raised, highest first, and sets each
// Rank to its 1-based position. Equal totals keep ascending id order. The
// input slice is left untouched.
func RankInterns(interns []internal.Intern) []internal.Intern {
	ranked := make([]internal.Intern, len(interns))
	for i, in := range interns {
		ranked[i] = in.Clone()
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalRaised != ranked[j].TotalRaised {
			return ranked[i].TotalRaised > ranked[j].TotalRaised
		}
		return ranked[i].ID < ranked[j].ID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func Leaderboard(ctx context.Context, repo storage.InternRepository) ([]internal.Intern, error) {
	interns, err := repo.ListInterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interns: %w", err)
	}
	return RankInterns(interns), nil
}

// RankedIntern returns one intern with its rank derived from the full
// leaderboard, or a 404 AppError if no such intern exists. Unknown ids are
// rejected by the repository before the leaderboard is built.
func RankedIntern(ctx context.Context, repo storage.InternRepository, id int) (*internal.Intern, error) {
	intern, err := repo.GetIntern(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, internal.WrapAppError(http.StatusNotFound, "Intern not found", err)
	}
	if err != nil {
		return nil, fmt.Errorf("get intern %d: %w", id, err)
	}

	ranked, err := Leaderboard(ctx, repo)
	if err != nil {
		return nil, err
	}
	intern.Rank = 0
	for i := range ranked {
		if ranked[i].ID == id {
			intern.Rank = ranked[i].Rank
			break
		}
	}
	return intern, nil
}

// Summarize aggregates an already-ranked leaderboard.
func Summarize(ranked []internal.Intern) LeaderboardSummary {
	s := LeaderboardSummary{Participants: len(ranked), Podium: []internal.Intern{}}
	for _, in := range ranked {
		s.TotalRaised += in.TotalRaised
		s.TotalDonations += in.TotalDonations
	}
	if s.Participants > 0 {
		s.AverageRaised = s.TotalRaised / float64(s.Participants)
	}
	n := podiumSize
	if len(ranked) < n {
		n = len(ranked)
	}
	s.Podium = append(s.Podium, ranked[:n]...)
	return s
}
