package ledger

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ExecuteReconcileAccount recomputes the account's pot from the event log:
//
//	currentPotSize = allocatedPotSize - sum(buy-ins) + sum(winnings)
//
// and persists it. The row lock keeps concurrent event inserts from racing
// the recomputation within the transaction.
func (e *Engine) ExecuteReconcileAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	account, err := e.LockAccountForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	buyIns, err := e.buyIns.SumByAccount(ctx, tx, accountID)
	if err != nil {
		return nil, fmt.Errorf("reconcile account: %w", err)
	}
	winnings, err := e.results.SumByAccount(ctx, tx, accountID)
	if err != nil {
		return nil, fmt.Errorf("reconcile account: %w", err)
	}

	pot := account.AllocatedPotSize.Sub(buyIns).Add(winnings)
	updated, err := e.accounts.SetCurrentPot(ctx, tx, accountID, pot)
	if err != nil {
		return nil, fmt.Errorf("reconcile account: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewAccountReconciledEvent(updated)); err != nil {
		return nil, fmt.Errorf("reconcile account outbox: %w", err)
	}
	return updated, nil
}
