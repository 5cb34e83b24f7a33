package ledger

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ExecuteRecordBuyIn appends a buy-in event against an account. The account
// balance is untouched; reconciliation recomputes it from the event log.
// Pattern: validate, duplicate check, insert, outbox.
func (e *Engine) ExecuteRecordBuyIn(ctx context.Context, tx pgx.Tx, params domain.RecordBuyInParams) (*domain.GameBuyIn, error) {
	if err := domain.ValidateMoney(params.Amount); err != nil {
		return nil, err
	}
	if err := e.requireAccount(ctx, tx, params.SeasonPlayerID); err != nil {
		return nil, err
	}

	existing, err := e.buyIns.FindByGameAndAccount(ctx, tx, params.GameID, params.SeasonPlayerID)
	if err != nil {
		return nil, fmt.Errorf("record buy-in: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("buy-in already recorded for this game and account")
	}

	buyIn, err := e.buyIns.Insert(ctx, tx, params)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrConflict("buy-in already recorded for this game and account")
		}
		return nil, fmt.Errorf("record buy-in: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewBuyInRecordedEvent(buyIn)); err != nil {
		return nil, fmt.Errorf("record buy-in outbox: %w", err)
	}
	return buyIn, nil
}
