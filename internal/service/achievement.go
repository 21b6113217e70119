package service

import (
	"context"
	"fmt"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
	"golang.org/x/sync/errgroup"
)

// ResolveAchievements marks each catalog entry unlocked when its name
// appears verbatim in the intern's achievement list. Matching is by name,
// not id. Catalog order is preserved.
func ResolveAchievements(intern internal.Intern, catalog []internal.Achievement) []internal.Achievement {
	unlocked := make(map[string]struct{}, len(intern.Achievements))
	for _, name := range intern.Achievements {
		unlocked[name] = struct{}{}
	}
	out := make([]internal.Achievement, len(catalog))
	for i, a := range catalog {
		_, ok := unlocked[a.Name]
		a.Unlocked = ok
		out[i] = a
	}
	return out
}

func AchievementsFor(ctx context.Context, interns storage.InternRepository, achievements storage.AchievementRepository, internID int) ([]internal.Achievement, error) {
	var (
		intern  *internal.Intern
		catalog []internal.Achievement
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		intern, err = RankedIntern(egCtx, interns, internID)
		return err
	})
	eg.Go(func() error {
		var err error
		if catalog, err = achievements.ListAchievements(egCtx); err != nil {
			return fmt.Errorf("list achievements: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return ResolveAchievements(*intern, catalog), nil
}
