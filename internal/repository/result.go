package repository

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/infra"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type resultRepo struct{}

// NewResultRepository returns a pgx-backed ResultRepository.
func NewResultRepository() ResultRepository {
	return &resultRepo{}
}

func (r *resultRepo) Insert(ctx context.Context, db DBTX, params domain.RecordResultParams) (*domain.GameResult, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO game_results (game_id, season_player_id, winnings)
		VALUES ($1, $2, $3)
		RETURNING id, game_id, season_player_id, winnings, created_at`,
		params.GameID, params.SeasonPlayerID, infra.DecimalToNumeric(params.Winnings))
	return scanResult(row)
}

func (r *resultRepo) FindByGameAndAccount(ctx context.Context, db DBTX, gameID, accountID uuid.UUID) (*domain.GameResult, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, winnings, created_at
		FROM game_results WHERE game_id = $1 AND season_player_id = $2`, gameID, accountID)
	return scanResult(row)
}

func (r *resultRepo) FindFirstByGame(ctx context.Context, db DBTX, gameID uuid.UUID) (*domain.GameResult, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, winnings, created_at
		FROM game_results WHERE game_id = $1
		ORDER BY created_at, id
		LIMIT 1`, gameID)
	return scanResult(row)
}

func (r *resultRepo) FindFirstByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (*domain.GameResult, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, winnings, created_at
		FROM game_results WHERE season_player_id = $1
		ORDER BY created_at, id
		LIMIT 1`, accountID)
	return scanResult(row)
}

func (r *resultRepo) SumByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := db.QueryRow(ctx, `
		SELECT COALESCE(SUM(winnings), 0)
		FROM game_results WHERE season_player_id = $1`, accountID).Scan(&sum)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("sum winnings: %w", err)
	}
	return infra.NumericToDecimal(sum)
}

func scanResult(row pgx.Row) (*domain.GameResult, error) {
	var res domain.GameResult
	var winningsNum pgtype.Numeric
	err := row.Scan(&res.ID, &res.GameID, &res.SeasonPlayerID, &winningsNum, &res.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan result: %w", err)
	}

	var convErr error
	res.Winnings, convErr = infra.NumericToDecimal(winningsNum)
	if convErr != nil {
		return nil, fmt.Errorf("convert winnings: %w", convErr)
	}
	return &res, nil
}
