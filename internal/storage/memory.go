package storage

import (
	"context"
	"fmt"

	"github.com/Ashish-Code-01/internshp-project/internal"
)

// MemoryStorage serves a dataset fixed at construction. It is never written
// after NewMemoryStorage returns, so reads need no locking.
type MemoryStorage struct {
	interns      []internal.Intern
	byID         map[int]int // intern id -> index into interns
	achievements []internal.Achievement
}

func NewMemoryStorage(ds Dataset) *MemoryStorage {
	s := &MemoryStorage{
		interns:      make([]internal.Intern, 0, len(ds.Interns)),
		byID:         make(map[int]int, len(ds.Interns)),
		achievements: append([]internal.Achievement{}, ds.Achievements...),
	}
	for _, in := range ds.Interns {
		if _, dup := s.byID[in.ID]; dup {
			continue
		}
		s.byID[in.ID] = len(s.interns)
		s.interns = append(s.interns, in.Clone())
	}
	return s
}

// --- InternRepository ---
func (s *MemoryStorage) ListInterns(ctx context.Context) ([]internal.Intern, error) {
	out := make([]internal.Intern, len(s.interns))
	for i, in := range s.interns {
		out[i] = in.Clone()
	}
	return out, nil
}

func (s *MemoryStorage) GetIntern(ctx context.Context, id int) (*internal.Intern, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("intern %d: %w", id, ErrNotFound)
	}
	in := s.interns[idx].Clone()
	return &in, nil
}

// --- AchievementRepository ---
func (s *MemoryStorage) ListAchievements(ctx context.Context) ([]internal.Achievement, error) {
	return append([]internal.Achievement{}, s.achievements...), nil
}

// Dataset returns a copy of everything held.
func (s *MemoryStorage) Dataset() Dataset {
	interns, _ := s.ListInterns(context.Background())
	achievements, _ := s.ListAchievements(context.Background())
	return Dataset{Interns: interns, Achievements: achievements}
}

// --- Compile-time assertions ---
var _ InternRepository = (*MemoryStorage)(nil)
var _ AchievementRepository = (*MemoryStorage)(nil)
