package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ashish-Code-01/internshp-project/internal"
	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS interns (
		id              INTEGER PRIMARY KEY,
		name            TEXT    NOT NULL,
		email           TEXT    NOT NULL,
		referral_code   TEXT    NOT NULL,
		total_raised    REAL    NOT NULL DEFAULT 0,
		total_donations INTEGER NOT NULL DEFAULT 0,
		join_date       TEXT,
		stored_rank     INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		icon        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS intern_achievements (
		intern_id        INTEGER NOT NULL REFERENCES interns(id),
		position         INTEGER NOT NULL,
		achievement_name TEXT    NOT NULL,
		PRIMARY KEY (intern_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS donations (
		intern_id  INTEGER NOT NULL REFERENCES interns(id),
		position   INTEGER NOT NULL,
		amount     REAL    NOT NULL,
		donor      TEXT    NOT NULL,
		donated_on TEXT    NOT NULL,
		PRIMARY KEY (intern_id, position)
	)`,
}

const (
	sqliteListInterns = `SELECT id, name, email, referral_code, total_raised, total_donations, join_date, stored_rank FROM interns ORDER BY id`
	sqliteGetIntern   = `SELECT id, name, email, referral_code, total_raised, total_donations, join_date, stored_rank FROM interns WHERE id = ?`

	sqliteListInternAchievements = `SELECT intern_id, achievement_name FROM intern_achievements ORDER BY intern_id, position`
	sqliteGetInternAchievements  = `SELECT intern_id, achievement_name FROM intern_achievements WHERE intern_id = ? ORDER BY position`

	sqliteListDonations = `SELECT intern_id, amount, donor, donated_on FROM donations ORDER BY intern_id, position`
	sqliteGetDonations  = `SELECT intern_id, amount, donor, donated_on FROM donations WHERE intern_id = ? ORDER BY position`

	sqliteListAchievements = `SELECT id, name, description, icon FROM achievements ORDER BY id`
)

// SQLiteStorage reads the dataset from an embedded SQLite database. The
// schema is created on open and seeded when the interns table is empty.
type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

// NewSQLiteStorage opens path (":memory:" is allowed) and seeds it from
// seed if it holds no interns.
func NewSQLiteStorage(ctx context.Context, path string, seed Dataset, logger internal.Logger) (*SQLiteStorage, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Errorf("failed to open sqlite %s: %v", path, err)
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	s := &SQLiteStorage{db: db, logger: logger}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedIfEmpty(ctx, seed); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) migrate(ctx context.Context) error {
	for _, stmt := range sqliteSchema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			s.logger.Errorf("sqlite: migrate failed: %v", err)
			return fmt.Errorf("sqlite: migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStorage) seedIfEmpty(ctx context.Context, seed Dataset) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interns`).Scan(&count); err != nil {
		return fmt.Errorf("sqlite: count interns: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, a := range seed.Achievements {
		if _, err := tx.ExecContext(ctx, `INSERT INTO achievements (id, name, description, icon) VALUES (?, ?, ?, ?)`,
			a.ID, a.Name, a.Description, a.Icon); err != nil {
			return fmt.Errorf("sqlite: seed achievement %q: %w", a.Name, err)
		}
	}
	for _, in := range seed.Interns {
		if _, err := tx.ExecContext(ctx, `INSERT INTO interns (id, name, email, referral_code, total_raised, total_donations, join_date, stored_rank) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			in.ID, in.Name, in.Email, in.ReferralCode, in.TotalRaised, in.TotalDonations, in.JoinDate, in.Rank); err != nil {
			return fmt.Errorf("sqlite: seed intern %d: %w", in.ID, err)
		}
		for pos, name := range in.Achievements {
			if _, err := tx.ExecContext(ctx, `INSERT INTO intern_achievements (intern_id, position, achievement_name) VALUES (?, ?, ?)`,
				in.ID, pos, name); err != nil {
				return fmt.Errorf("sqlite: seed intern achievement: %w", err)
			}
		}
		for pos, d := range in.RecentDonations {
			if _, err := tx.ExecContext(ctx, `INSERT INTO donations (intern_id, position, amount, donor, donated_on) VALUES (?, ?, ?, ?, ?)`,
				in.ID, pos, d.Amount, d.Donor, d.Date); err != nil {
				return fmt.Errorf("sqlite: seed donation: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Infof("sqlite: seeded %d interns and %d achievements", len(seed.Interns), len(seed.Achievements))
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// --- InternRepository ---
func (s *SQLiteStorage) ListInterns(ctx context.Context) ([]internal.Intern, error) {
	return s.loadInterns(ctx, sqliteListInterns, sqliteListInternAchievements, sqliteListDonations)
}

func (s *SQLiteStorage) GetIntern(ctx context.Context, id int) (*internal.Intern, error) {
	interns, err := s.loadInterns(ctx, sqliteGetIntern, sqliteGetInternAchievements, sqliteGetDonations, id)
	if err != nil {
		return nil, err
	}
	if len(interns) == 0 {
		return nil, fmt.Errorf("intern %d: %w", id, ErrNotFound)
	}
	return &interns[0], nil
}

func (s *SQLiteStorage) loadInterns(ctx context.Context, internsQ, achievementsQ, donationsQ string, args ...any) ([]internal.Intern, error) {
	r, err := s.db.QueryContext(ctx, internsQ, args...)
	if err != nil {
		s.logger.Errorf("failed to query interns: %v", err)
		return nil, err
	}
	interns, err := scanInterns(r)
	r.Close()
	if err != nil {
		return nil, err
	}
	if len(interns) == 0 {
		return interns, nil
	}

	r, err = s.db.QueryContext(ctx, achievementsQ, args...)
	if err != nil {
		return nil, err
	}
	err = attachAchievements(interns, r)
	r.Close()
	if err != nil {
		return nil, err
	}

	r, err = s.db.QueryContext(ctx, donationsQ, args...)
	if err != nil {
		return nil, err
	}
	err = attachDonations(interns, r)
	r.Close()
	if err != nil {
		return nil, err
	}
	return interns, nil
}

// --- AchievementRepository ---
func (s *SQLiteStorage) ListAchievements(ctx context.Context) ([]internal.Achievement, error) {
	r, err := s.db.QueryContext(ctx, sqliteListAchievements)
	if err != nil {
		s.logger.Errorf("failed to query achievements: %v", err)
		return nil, err
	}
	defer r.Close()
	return scanAchievements(r)
}

// --- Compile-time assertions ---
var _ InternRepository = (*SQLiteStorage)(nil)
var _ AchievementRepository = (*SQLiteStorage)(nil)
