// Package ledger owns the per-season buy-in accounts and the append-only
// event tables recorded against them. Commands follow a fixed pattern:
// validate, check for a duplicate, insert, write the outbox event. All
// commands run inside the caller's transaction.
package ledger

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Engine provides the account and event-recording commands.
type Engine struct {
	accounts       repository.AccountRepository
	seasons        repository.SeasonRepository
	players        repository.PlayerRepository
	buyIns         repository.BuyInRepository
	results        repository.ResultRepository
	participations repository.ParticipationRepository
	outbox         repository.OutboxRepository
}

// NewEngine creates a ledger engine with the given repositories.
func NewEngine(
	accounts repository.AccountRepository,
	seasons repository.SeasonRepository,
	players repository.PlayerRepository,
	buyIns repository.BuyInRepository,
	results repository.ResultRepository,
	participations repository.ParticipationRepository,
	outbox repository.OutboxRepository,
) *Engine {
	return &Engine{
		accounts:       accounts,
		seasons:        seasons,
		players:        players,
		buyIns:         buyIns,
		results:        results,
		participations: participations,
		outbox:         outbox,
	}
}

// LockAccountForUpdate acquires a row-level lock and returns the account.
// Must be called within a transaction.
func (e *Engine) LockAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	account, err := e.accounts.LockForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, fmt.Errorf("lock account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound("account", accountID.String())
	}
	return account, nil
}

// GetAccount returns an account by id.
func (e *Engine) GetAccount(ctx context.Context, db repository.DBTX, accountID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	account, err := e.accounts.FindByID(ctx, db, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound("account", accountID.String())
	}
	return account, nil
}

// requireAccount verifies the target account exists before an event insert.
func (e *Engine) requireAccount(ctx context.Context, db repository.DBTX, accountID uuid.UUID) error {
	account, err := e.accounts.FindByID(ctx, db, accountID)
	if err != nil {
		return fmt.Errorf("check account: %w", err)
	}
	if account == nil {
		return domain.ErrNotFound("account", accountID.String())
	}
	return nil
}
