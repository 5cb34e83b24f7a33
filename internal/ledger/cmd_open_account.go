package ledger

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ExecuteOpenAccount enrolls a player into a season by creating the buy-in
// account linking them. The opening pot equals the allocated pot size.
// A second account for the same (season, player) pair is a Conflict; the
// unique constraint backstops the explicit check under concurrency.
func (e *Engine) ExecuteOpenAccount(ctx context.Context, tx pgx.Tx, params domain.OpenAccountParams) (*domain.SeasonPlayerAccount, error) {
	if err := domain.ValidateMoney(params.MinBuyIn); err != nil {
		return nil, err
	}
	if err := domain.ValidateMoney(params.AllocatedPotSize); err != nil {
		return nil, err
	}

	existing, err := e.accounts.FindBySeasonAndPlayer(ctx, tx, params.SeasonID, params.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("account already open for this season and player")
	}

	account, err := e.accounts.Create(ctx, tx, params)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrConflict("account already open for this season and player")
		}
		return nil, fmt.Errorf("open account: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewAccountOpenedEvent(account)); err != nil {
		return nil, fmt.Errorf("open account outbox: %w", err)
	}
	return account, nil
}

// UpdateAccount replaces the account's monetary fields and referenced ids.
// The referenced season and player must exist; a dangling id is NotFound
// rather than a foreign-key fault from the store.
func (e *Engine) UpdateAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, upd domain.AccountUpdate) (*domain.SeasonPlayerAccount, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	season, err := e.seasons.FindByID(ctx, tx, upd.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	if season == nil {
		return nil, domain.ErrNotFound("season", upd.SeasonID.String())
	}
	player, err := e.players.FindByID(ctx, tx, upd.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	if player == nil {
		return nil, domain.ErrNotFound("player", upd.PlayerID.String())
	}

	if _, err := e.LockAccountForUpdate(ctx, tx, accountID); err != nil {
		return nil, err
	}

	account, err := e.accounts.Update(ctx, tx, accountID, upd)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrConflict("account already open for this season and player")
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	return account, nil
}
