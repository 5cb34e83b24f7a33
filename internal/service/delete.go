package service

import (
	"context"

	"github.com/felttable/tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Guarded deletes. Each runs the reference check and the delete in the same
// transaction so no dependent record can slip in between. Fail-closed, no
// cascade.

func (s *TournamentService) DeleteSeason(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		season, err := s.seasons.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if season == nil {
			return domain.ErrNotFound("season", id.String())
		}
		if err := s.checkAndDelete(ctx, tx, domain.KindSeason, id); err != nil {
			return err
		}
		return s.seasons.Delete(ctx, tx, id)
	})
}

func (s *TournamentService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		player, err := s.players.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrNotFound("player", id.String())
		}
		if err := s.checkAndDelete(ctx, tx, domain.KindPlayer, id); err != nil {
			return err
		}
		return s.players.Delete(ctx, tx, id)
	})
}

func (s *TournamentService) DeleteGame(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		game, err := s.games.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrNotFound("game", id.String())
		}
		if err := s.checkAndDelete(ctx, tx, domain.KindGame, id); err != nil {
			return err
		}
		return s.games.Delete(ctx, tx, id)
	})
}

func (s *TournamentService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		account, err := s.accounts.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound("account", id.String())
		}
		if err := s.checkAndDelete(ctx, tx, domain.KindAccount, id); err != nil {
			return err
		}
		return s.accounts.Delete(ctx, tx, id)
	})
}

// checkAndDelete runs the reference check and writes the deletion event.
// The caller performs the actual row delete.
func (s *TournamentService) checkAndDelete(ctx context.Context, tx pgx.Tx, kind domain.EntityKind, id uuid.UUID) error {
	warning, err := s.guard.CheckReferences(ctx, tx, kind, id)
	if err != nil {
		return err
	}
	if warning != nil {
		return domain.ErrReferenceBlocked(warning)
	}
	return s.outbox.Insert(ctx, tx, domain.NewEntityDeletedEvent(kind, id))
}
