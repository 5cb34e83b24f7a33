package repository

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type gameRepo struct{}

// NewGameRepository returns a pgx-backed GameRepository.
func NewGameRepository() GameRepository {
	return &gameRepo{}
}

func (r *gameRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Game, error) {
	row := db.QueryRow(ctx, `
		SELECT id, season_id, game_number, start_time, end_time, created_at
		FROM games WHERE id = $1`, id)
	return scanGame(row)
}

func (r *gameRepo) FindByNumber(ctx context.Context, db DBTX, gameNumber int) (*domain.Game, error) {
	row := db.QueryRow(ctx, `
		SELECT id, season_id, game_number, start_time, end_time, created_at
		FROM games WHERE game_number = $1
		ORDER BY created_at DESC
		LIMIT 1`, gameNumber)
	return scanGame(row)
}

func (r *gameRepo) FindFirstBySeason(ctx context.Context, db DBTX, seasonID uuid.UUID) (*domain.Game, error) {
	row := db.QueryRow(ctx, `
		SELECT id, season_id, game_number, start_time, end_time, created_at
		FROM games WHERE season_id = $1
		ORDER BY created_at, id
		LIMIT 1`, seasonID)
	return scanGame(row)
}

func (r *gameRepo) List(ctx context.Context, db DBTX) ([]domain.Game, error) {
	rows, err := db.Query(ctx, `
		SELECT id, season_id, game_number, start_time, end_time, created_at
		FROM games ORDER BY game_number, id`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.SeasonID, &g.GameNumber, &g.StartTime, &g.EndTime, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *gameRepo) Create(ctx context.Context, db DBTX, seasonID uuid.UUID, gameNumber int) (*domain.Game, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO games (season_id, game_number)
		VALUES ($1, $2)
		RETURNING id, season_id, game_number, start_time, end_time, created_at`,
		seasonID, gameNumber)
	return scanGame(row)
}

func (r *gameRepo) Update(ctx context.Context, db DBTX, id uuid.UUID, upd domain.GameUpdate) (*domain.Game, error) {
	row := db.QueryRow(ctx, `
		UPDATE games SET season_id = $2, game_number = $3, start_time = $4, end_time = $5
		WHERE id = $1
		RETURNING id, season_id, game_number, start_time, end_time, created_at`,
		id, upd.SeasonID, upd.GameNumber, upd.StartTime, upd.EndTime)
	return scanGame(row)
}

func (r *gameRepo) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	err := row.Scan(&g.ID, &g.SeasonID, &g.GameNumber, &g.StartTime, &g.EndTime, &g.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan game: %w", err)
	}
	return &g, nil
}
