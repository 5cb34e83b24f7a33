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

const accountColumns = `id, season_id, player_id, allocated_pot_size, min_buy_in, current_pot_size, created_at, updated_at`

type accountRepo struct{}

// NewAccountRepository returns a pgx-backed AccountRepository.
func NewAccountRepository() AccountRepository {
	return &accountRepo{}
}

func (r *accountRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	row := db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM season_players WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *accountRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM season_players WHERE id = $1 FOR UPDATE`, id)
	return scanAccount(row)
}

func (r *accountRepo) FindBySeasonAndPlayer(ctx context.Context, db DBTX, seasonID, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	row := db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM season_players WHERE season_id = $1 AND player_id = $2`, seasonID, playerID)
	return scanAccount(row)
}

func (r *accountRepo) FindFirstBySeason(ctx context.Context, db DBTX, seasonID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	row := db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM season_players WHERE season_id = $1
		ORDER BY created_at, id
		LIMIT 1`, seasonID)
	return scanAccount(row)
}

func (r *accountRepo) FindFirstByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	row := db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM season_players WHERE player_id = $1
		ORDER BY created_at, id
		LIMIT 1`, playerID)
	return scanAccount(row)
}

func (r *accountRepo) List(ctx context.Context, db DBTX) ([]domain.SeasonPlayerAccount, error) {
	rows, err := db.Query(ctx, `
		SELECT `+accountColumns+`
		FROM season_players ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.SeasonPlayerAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (r *accountRepo) Create(ctx context.Context, db DBTX, params domain.OpenAccountParams) (*domain.SeasonPlayerAccount, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO season_players (season_id, player_id, allocated_pot_size, min_buy_in, current_pot_size)
		VALUES ($1, $2, $3, $4, $3)
		RETURNING `+accountColumns,
		params.SeasonID,
		params.PlayerID,
		infra.DecimalToNumeric(params.AllocatedPotSize),
		infra.DecimalToNumeric(params.MinBuyIn),
	)
	return scanAccount(row)
}

func (r *accountRepo) Update(ctx context.Context, db DBTX, id uuid.UUID, upd domain.AccountUpdate) (*domain.SeasonPlayerAccount, error) {
	row := db.QueryRow(ctx, `
		UPDATE season_players
		SET season_id = $2, player_id = $3, allocated_pot_size = $4, min_buy_in = $5,
		    current_pot_size = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns,
		id,
		upd.SeasonID,
		upd.PlayerID,
		infra.DecimalToNumeric(upd.AllocatedPotSize),
		infra.DecimalToNumeric(upd.MinBuyIn),
		infra.DecimalToNumeric(upd.CurrentPotSize),
	)
	return scanAccount(row)
}

func (r *accountRepo) SetCurrentPot(ctx context.Context, db DBTX, id uuid.UUID, pot decimal.Decimal) (*domain.SeasonPlayerAccount, error) {
	row := db.QueryRow(ctx, `
		UPDATE season_players
		SET current_pot_size = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns,
		id, infra.DecimalToNumeric(pot))
	return scanAccount(row)
}

func (r *accountRepo) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `DELETE FROM season_players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.SeasonPlayerAccount, error) {
	var a domain.SeasonPlayerAccount
	var allocNum, minNum, potNum pgtype.Numeric
	err := row.Scan(&a.ID, &a.SeasonID, &a.PlayerID, &allocNum, &minNum, &potNum, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	var convErr error
	a.AllocatedPotSize, convErr = infra.NumericToDecimal(allocNum)
	if convErr != nil {
		return nil, fmt.Errorf("convert allocated_pot_size: %w", convErr)
	}
	a.MinBuyIn, convErr = infra.NumericToDecimal(minNum)
	if convErr != nil {
		return nil, fmt.Errorf("convert min_buy_in: %w", convErr)
	}
	a.CurrentPotSize, convErr = infra.NumericToDecimal(potNum)
	if convErr != nil {
		return nil, fmt.Errorf("convert current_pot_size: %w", convErr)
	}

	return &a, nil
}
