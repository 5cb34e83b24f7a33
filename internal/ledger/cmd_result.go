package ledger

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ExecuteRecordResult appends a winnings event against an account.
// Pattern: validate, duplicate check, insert, outbox.
func (e *Engine) ExecuteRecordResult(ctx context.Context, tx pgx.Tx, params domain.RecordResultParams) (*domain.GameResult, error) {
	if err := domain.ValidateMoney(params.Winnings); err != nil {
		return nil, err
	}
	if err := e.requireAccount(ctx, tx, params.SeasonPlayerID); err != nil {
		return nil, err
	}

	existing, err := e.results.FindByGameAndAccount(ctx, tx, params.GameID, params.SeasonPlayerID)
	if err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("result already recorded for this game and account")
	}

	result, err := e.results.Insert(ctx, tx, params)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrConflict("result already recorded for this game and account")
		}
		return nil, fmt.Errorf("record result: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewResultRecordedEvent(result)); err != nil {
		return nil, fmt.Errorf("record result outbox: %w", err)
	}
	return result, nil
}
