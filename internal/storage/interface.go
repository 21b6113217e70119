package storage

import (
	"context"
	"errors"

	"github.com/Ashish-Code-01/internshp-project/internal"
)

var ErrNotFound = errors.New("storage: not found")

// InternRepository reads intern records. Implementations return copies.
type InternRepository interface {
	ListInterns(ctx context.Context) ([]internal.Intern, error)
	GetIntern(ctx context.Context, id int) (*internal.Intern, error)
}

// AchievementRepository reads the achievement catalog in catalog order.
type AchievementRepository interface {
	ListAchievements(ctx context.Context) ([]internal.Achievement, error)
}

// Dataset is the full contents of a backend, also the file backend's format.
type Dataset struct {
	Interns      []internal.Intern      `json:"interns"`
	Achievements []internal.Achievement `json:"achievements"`
}
