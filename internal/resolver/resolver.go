// Package resolver translates natural keys (player names, season names,
// game numbers) into internal ids. Every ledger operation passes through
// here before touching the event tables.
package resolver

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/google/uuid"
)

// Resolver resolves natural keys against the current database state.
type Resolver struct {
	players  repository.PlayerRepository
	seasons  repository.SeasonRepository
	games    repository.GameRepository
	accounts repository.AccountRepository
}

// New builds a Resolver over the given repositories.
func New(
	players repository.PlayerRepository,
	seasons repository.SeasonRepository,
	games repository.GameRepository,
	accounts repository.AccountRepository,
) *Resolver {
	return &Resolver{players: players, seasons: seasons, games: games, accounts: accounts}
}

// PlayerID resolves a player name to its id. Missing players are NotFound.
func (r *Resolver) PlayerID(ctx context.Context, db repository.DBTX, name string) (uuid.UUID, error) {
	if err := domain.ValidatePlayerName(name); err != nil {
		return uuid.Nil, err
	}
	p, err := r.players.FindByName(ctx, db, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve player: %w", err)
	}
	if p == nil {
		return uuid.Nil, domain.ErrNotFound("player", name)
	}
	return p.ID, nil
}

// EnsurePlayerID resolves a player name, creating the player if absent.
// The second return reports whether a new player row was created. Two
// concurrent calls for the same new name both succeed with the same id:
// the insert skips on conflict instead of erroring, so the loser's
// transaction stays usable and its retry lookup finds the winner's row.
func (r *Resolver) EnsurePlayerID(ctx context.Context, db repository.DBTX, name string) (uuid.UUID, bool, error) {
	if err := domain.ValidatePlayerName(name); err != nil {
		return uuid.Nil, false, err
	}

	p, err := r.players.FindByName(ctx, db, name)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("resolve player: %w", err)
	}
	if p != nil {
		return p.ID, false, nil
	}

	created, err := r.players.Create(ctx, db, name)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("create player: %w", err)
	}
	if created != nil {
		return created.ID, true, nil
	}

	// Lost the creation race: a concurrent insert committed the name
	// between the lookup and our insert.
	existing, err := r.players.FindByName(ctx, db, name)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("resolve player after conflict: %w", err)
	}
	if existing == nil {
		return uuid.Nil, false, domain.ErrInternal("player vanished after insert conflict", nil)
	}
	return existing.ID, false, nil
}

// SeasonID resolves a season name to its id.
func (r *Resolver) SeasonID(ctx context.Context, db repository.DBTX, name string) (uuid.UUID, error) {
	if err := domain.ValidateSeasonName(name); err != nil {
		return uuid.Nil, err
	}
	s, err := r.seasons.FindByName(ctx, db, name)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve season: %w", err)
	}
	if s == nil {
		return uuid.Nil, domain.ErrNotFound("season", name)
	}
	return s.ID, nil
}

// GameByNumber resolves a game number to the game record.
func (r *Resolver) GameByNumber(ctx context.Context, db repository.DBTX, gameNumber int) (*domain.Game, error) {
	if err := domain.ValidateGameNumber(gameNumber); err != nil {
		return nil, err
	}
	g, err := r.games.FindByNumber(ctx, db, gameNumber)
	if err != nil {
		return nil, fmt.Errorf("resolve game: %w", err)
	}
	if g == nil {
		return nil, domain.ErrNotFound("game", fmt.Sprintf("#%d", gameNumber))
	}
	return g, nil
}

// AccountID resolves a (season name, player name) pair to the id of the
// ledger account linking them. Each stage fails with its own NotFound so
// callers can tell a missing player from a missing enrollment.
func (r *Resolver) AccountID(ctx context.Context, db repository.DBTX, seasonName, playerName string) (uuid.UUID, error) {
	seasonID, err := r.SeasonID(ctx, db, seasonName)
	if err != nil {
		return uuid.Nil, err
	}
	playerID, err := r.PlayerID(ctx, db, playerName)
	if err != nil {
		return uuid.Nil, err
	}

	account, err := r.accounts.FindBySeasonAndPlayer(ctx, db, seasonID, playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve account: %w", err)
	}
	if account == nil {
		return uuid.Nil, domain.ErrNotFound("account", fmt.Sprintf("%s/%s", seasonName, playerName))
	}
	return account.ID, nil
}
