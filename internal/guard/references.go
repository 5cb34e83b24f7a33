// Package guard refuses deletes that would orphan dependent ledger records.
// Checks run in a fixed priority order so the same blocking record is
// reported every time.
package guard

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/google/uuid"
)

// Guard answers whether an entity is still referenced by dependent records.
type Guard struct {
	games          repository.GameRepository
	accounts       repository.AccountRepository
	buyIns         repository.BuyInRepository
	results        repository.ResultRepository
	participations repository.ParticipationRepository
}

// New builds a Guard over the given repositories.
func New(
	games repository.GameRepository,
	accounts repository.AccountRepository,
	buyIns repository.BuyInRepository,
	results repository.ResultRepository,
	participations repository.ParticipationRepository,
) *Guard {
	return &Guard{
		games:          games,
		accounts:       accounts,
		buyIns:         buyIns,
		results:        results,
		participations: participations,
	}
}

// CheckReferences returns the first blocking reference for the entity, or
// nil if the entity is safe to delete.
//
// Priority order per kind:
//
//	season:       account, game
//	player:       account
//	game:         buy-in, result, participation
//	seasonPlayer: buy-in, result, participation
func (g *Guard) CheckReferences(ctx context.Context, db repository.DBTX, kind domain.EntityKind, id uuid.UUID) (*domain.ReferenceWarning, error) {
	switch kind {
	case domain.KindSeason:
		return g.checkSeason(ctx, db, id)
	case domain.KindPlayer:
		return g.checkPlayer(ctx, db, id)
	case domain.KindGame:
		return g.checkGame(ctx, db, id)
	case domain.KindAccount:
		return g.checkAccount(ctx, db, id)
	default:
		return nil, fmt.Errorf("unknown entity kind: %s", kind)
	}
}

func (g *Guard) checkSeason(ctx context.Context, db repository.DBTX, seasonID uuid.UUID) (*domain.ReferenceWarning, error) {
	account, err := g.accounts.FindFirstBySeason(ctx, db, seasonID)
	if err != nil {
		return nil, fmt.Errorf("check season accounts: %w", err)
	}
	if account != nil {
		return &domain.ReferenceWarning{Key: domain.WarnSeasonAccount, ReferencedBy: account.ID}, nil
	}

	game, err := g.games.FindFirstBySeason(ctx, db, seasonID)
	if err != nil {
		return nil, fmt.Errorf("check season games: %w", err)
	}
	if game != nil {
		return &domain.ReferenceWarning{Key: domain.WarnSeasonGame, ReferencedBy: game.ID}, nil
	}
	return nil, nil
}

func (g *Guard) checkPlayer(ctx context.Context, db repository.DBTX, playerID uuid.UUID) (*domain.ReferenceWarning, error) {
	account, err := g.accounts.FindFirstByPlayer(ctx, db, playerID)
	if err != nil {
		return nil, fmt.Errorf("check player accounts: %w", err)
	}
	if account != nil {
		return &domain.ReferenceWarning{Key: domain.WarnPlayerAccount, ReferencedBy: account.ID}, nil
	}
	return nil, nil
}

func (g *Guard) checkGame(ctx context.Context, db repository.DBTX, gameID uuid.UUID) (*domain.ReferenceWarning, error) {
	buyIn, err := g.buyIns.FindFirstByGame(ctx, db, gameID)
	if err != nil {
		return nil, fmt.Errorf("check game buy-ins: %w", err)
	}
	if buyIn != nil {
		return &domain.ReferenceWarning{Key: domain.WarnGameBuyIn, ReferencedBy: buyIn.ID}, nil
	}

	result, err := g.results.FindFirstByGame(ctx, db, gameID)
	if err != nil {
		return nil, fmt.Errorf("check game results: %w", err)
	}
	if result != nil {
		return &domain.ReferenceWarning{Key: domain.WarnGameResult, ReferencedBy: result.ID}, nil
	}

	participation, err := g.participations.FindFirstByGame(ctx, db, gameID)
	if err != nil {
		return nil, fmt.Errorf("check game participations: %w", err)
	}
	if participation != nil {
		return &domain.ReferenceWarning{Key: domain.WarnGameParticipation, ReferencedBy: participation.ID}, nil
	}
	return nil, nil
}

func (g *Guard) checkAccount(ctx context.Context, db repository.DBTX, accountID uuid.UUID) (*domain.ReferenceWarning, error) {
	buyIn, err := g.buyIns.FindFirstByAccount(ctx, db, accountID)
	if err != nil {
		return nil, fmt.Errorf("check account buy-ins: %w", err)
	}
	if buyIn != nil {
		return &domain.ReferenceWarning{Key: domain.WarnAccountBuyIn, ReferencedBy: buyIn.ID}, nil
	}

	result, err := g.results.FindFirstByAccount(ctx, db, accountID)
	if err != nil {
		return nil, fmt.Errorf("check account results: %w", err)
	}
	if result != nil {
		return &domain.ReferenceWarning{Key: domain.WarnAccountResult, ReferencedBy: result.ID}, nil
	}

	participation, err := g.participations.FindFirstByAccount(ctx, db, accountID)
	if err != nil {
		return nil, fmt.Errorf("check account participations: %w", err)
	}
	if participation != nil {
		return &domain.ReferenceWarning{Key: domain.WarnAccountParticipation, ReferencedBy: participation.ID}, nil
	}
	return nil, nil
}
