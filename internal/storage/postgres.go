package storage

import (
	"context"
	"fmt"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSchema is the layout PostgresStorage reads from. It mirrors the
// SQLite schema with native DATE and NUMERIC columns.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS interns (
	id              INTEGER PRIMARY KEY,
	name            TEXT           NOT NULL,
	email           TEXT           NOT NULL,
	referral_code   TEXT           NOT NULL,
	total_raised    NUMERIC(12, 2) NOT NULL DEFAULT 0,
	total_donations INTEGER        NOT NULL DEFAULT 0,
	join_date       DATE,
	stored_rank     INTEGER        NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS achievements (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL,
	icon        TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS intern_achievements (
	intern_id        INTEGER NOT NULL REFERENCES interns(id),
	position         INTEGER NOT NULL,
	achievement_name TEXT    NOT NULL,
	PRIMARY KEY (intern_id, position)
);
CREATE TABLE IF NOT EXISTS donations (
	intern_id  INTEGER        NOT NULL REFERENCES interns(id),
	position   INTEGER        NOT NULL,
	amount     NUMERIC(12, 2) NOT NULL,
	donor      TEXT           NOT NULL,
	donated_on DATE           NOT NULL,
	PRIMARY KEY (intern_id, position)
);
`

const (
	pgListInterns = `SELECT id, name, email, referral_code, total_raised::float8, total_donations, join_date, stored_rank FROM interns ORDER BY id`
	pgGetIntern   = `SELECT id, name, email, referral_code, total_raised::float8, total_donations, join_date, stored_rank FROM interns WHERE id = $1`

	pgListInternAchievements = `SELECT intern_id, achievement_name FROM intern_achievements ORDER BY intern_id, position`
	pgGetInternAchievements  = `SELECT intern_id, achievement_name FROM intern_achievements WHERE intern_id = $1 ORDER BY position`

	pgListDonations = `SELECT intern_id, amount::float8, donor, donated_on FROM donations ORDER BY intern_id, position`
	pgGetDonations  = `SELECT intern_id, amount::float8, donor, donated_on FROM donations WHERE intern_id = $1 ORDER BY position`

	pgListAchievements = `SELECT id, name, description, icon FROM achievements ORDER BY id`
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(ctx context.Context, dsn string, logger internal.Logger) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Errorf("failed to ping postgres: %v", err)
		pool.Close()
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// EnsureSchema creates the tables if they are missing.
func (p *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, PostgresSchema); err != nil {
		p.logger.Errorf("failed to create schema: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- InternRepository ---
func (p *PostgresStorage) ListInterns(ctx context.Context) ([]internal.Intern, error) {
	return p.loadInterns(ctx, pgListInterns, pgListInternAchievements, pgListDonations)
}

func (p *PostgresStorage) GetIntern(ctx context.Context, id int) (*internal.Intern, error) {
	interns, err := p.loadInterns(ctx, pgGetIntern, pgGetInternAchievements, pgGetDonations, id)
	if err != nil {
		return nil, err
	}
	if len(interns) == 0 {
		return nil, fmt.Errorf("intern %d: %w", id, ErrNotFound)
	}
	return &interns[0], nil
}

func (p *PostgresStorage) loadInterns(ctx context.Context, internsQ, achievementsQ, donationsQ string, args ...any) ([]internal.Intern, error) {
	rows, err := p.pool.Query(ctx, internsQ, args...)
	if err != nil {
		p.logger.Errorf("failed to query interns: %v", err)
		return nil, err
	}
	interns, err := scanInterns(rows)
	rows.Close()
	if err != nil {
		p.logger.Errorf("failed to scan interns: %v", err)
		return nil, err
	}
	if len(interns) == 0 {
		return interns, nil
	}

	rows, err = p.pool.Query(ctx, achievementsQ, args...)
	if err != nil {
		return nil, err
	}
	err = attachAchievements(interns, rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	rows, err = p.pool.Query(ctx, donationsQ, args...)
	if err != nil {
		return nil, err
	}
	err = attachDonations(interns, rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	return interns, nil
}

// --- AchievementRepository ---
func (p *PostgresStorage) ListAchievements(ctx context.Context) ([]internal.Achievement, error) {
	rows, err := p.pool.Query(ctx, pgListAchievements)
	if err != nil {
		p.logger.Errorf("failed to query achievements: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanAchievements(rows)
}

// --- Compile-time assertions ---
var _ InternRepository = (*PostgresStorage)(nil)
var _ AchievementRepository = (*PostgresStorage)(nil)
