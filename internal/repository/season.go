package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/felttable/tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type seasonRepo struct{}

// NewSeasonRepository returns a pgx-backed SeasonRepository.
func NewSeasonRepository() SeasonRepository {
	return &seasonRepo{}
}

func (r *seasonRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Season, error) {
	row := db.QueryRow(ctx, `
		SELECT id, name, start_date, end_date, created_at
		FROM seasons WHERE id = $1`, id)
	return scanSeason(row)
}

func (r *seasonRepo) FindByName(ctx context.Context, db DBTX, name string) (*domain.Season, error) {
	row := db.QueryRow(ctx, `
		SELECT id, name, start_date, end_date, created_at
		FROM seasons WHERE name = $1`, name)
	return scanSeason(row)
}

func (r *seasonRepo) List(ctx context.Context, db DBTX) ([]domain.Season, error) {
	rows, err := db.Query(ctx, `
		SELECT id, name, start_date, end_date, created_at
		FROM seasons ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	var seasons []domain.Season
	for rows.Next() {
		var s domain.Season
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}

func (r *seasonRepo) Create(ctx context.Context, db DBTX, name string, startDate time.Time) (*domain.Season, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO seasons (name, start_date)
		VALUES ($1, $2)
		RETURNING id, name, start_date, end_date, created_at`, name, startDate)
	return scanSeason(row)
}

func (r *seasonRepo) Update(ctx context.Context, db DBTX, id uuid.UUID, upd domain.SeasonUpdate) (*domain.Season, error) {
	row := db.QueryRow(ctx, `
		UPDATE seasons SET name = $2, start_date = $3, end_date = $4
		WHERE id = $1
		RETURNING id, name, start_date, end_date, created_at`,
		id, upd.Name, upd.StartDate, upd.EndDate)
	return scanSeason(row)
}

func (r *seasonRepo) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `DELETE FROM seasons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	return nil
}

func scanSeason(row pgx.Row) (*domain.Season, error) {
	var s domain.Season
	err := row.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan season: %w", err)
	}
	return &s, nil
}
