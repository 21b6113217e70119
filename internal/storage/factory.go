package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewRepositories opens the backend selected by cfg.StorageBackend. The
// returned closer releases backend resources.
func NewRepositories(ctx context.Context, cfg *config.Config, logger internal.Logger) (InternRepository, AchievementRepository, io.Closer, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		s := NewMemoryStorage(SeedDataset())
		return s, s, nopCloser{}, nil
	case config.BackendFile:
		s, err := NewFileStorage(cfg.DataFile, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, nopCloser{}, nil
	case config.BackendSQLite:
		s, err := NewSQLiteStorage(ctx, cfg.SQLitePath, SeedDataset(), logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, s, nil
	case config.BackendPostgres:
		s, err := NewPostgresStorage(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, nil, nil, err
		}
		return s, s, s, nil
	default:
		return nil, nil, nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}
