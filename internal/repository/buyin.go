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

type buyInRepo struct{}

// NewBuyInRepository returns a pgx-backed BuyInRepository.
func NewBuyInRepository() BuyInRepository {
	return &buyInRepo{}
}

func (r *buyInRepo) Insert(ctx context.Context, db DBTX, params domain.RecordBuyInParams) (*domain.GameBuyIn, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO game_buy_ins (game_id, season_player_id, buy_in_amount)
		VALUES ($1, $2, $3)
		RETURNING id, game_id, season_player_id, buy_in_amount, created_at`,
		params.GameID, params.SeasonPlayerID, infra.DecimalToNumeric(params.Amount))
	return scanBuyIn(row)
}

func (r *buyInRepo) FindByGameAndAccount(ctx context.Context, db DBTX, gameID, accountID uuid.UUID) (*domain.GameBuyIn, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, buy_in_amount, created_at
		FROM game_buy_ins WHERE game_id = $1 AND season_player_id = $2`, gameID, accountID)
	return scanBuyIn(row)
}

func (r *buyInRepo) FindFirstByGame(ctx context.Context, db DBTX, gameID uuid.UUID) (*domain.GameBuyIn, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, buy_in_amount, created_at
		FROM game_buy_ins WHERE game_id = $1
		ORDER BY created_at, id
		LIMIT 1`, gameID)
	return scanBuyIn(row)
}

func (r *buyInRepo) FindFirstByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (*domain.GameBuyIn, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, buy_in_amount, created_at
		FROM game_buy_ins WHERE season_player_id = $1
		ORDER BY created_at, id
		LIMIT 1`, accountID)
	return scanBuyIn(row)
}

func (r *buyInRepo) SumByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (decimal.Decimal, error) {
	var sum pgtype.Numeric
	err := db.QueryRow(ctx, `
		SELECT COALESCE(SUM(buy_in_amount), 0)
		FROM game_buy_ins WHERE season_player_id = $1`, accountID).Scan(&sum)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("sum buy-ins: %w", err)
	}
	return infra.NumericToDecimal(sum)
}

func scanBuyIn(row pgx.Row) (*domain.GameBuyIn, error) {
	var b domain.GameBuyIn
	var amountNum pgtype.Numeric
	err := row.Scan(&b.ID, &b.GameID, &b.SeasonPlayerID, &amountNum, &b.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan buy-in: %w", err)
	}

	var convErr error
	b.BuyInAmount, convErr = infra.NumericToDecimal(amountNum)
	if convErr != nil {
		return nil, fmt.Errorf("convert buy_in_amount: %w", convErr)
	}
	return &b, nil
}
