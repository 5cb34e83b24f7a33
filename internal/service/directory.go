package service

import (
	"context"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Directory reads and full-replace updates for the four entity kinds.
// Reads go straight to the pool; updates run in a transaction.

func (s *TournamentService) GetSeason(ctx context.Context, id uuid.UUID) (*domain.Season, error) {
	season, err := s.seasons.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, domain.ErrNotFound("season", id.String())
	}
	return season, nil
}

func (s *TournamentService) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	return s.seasons.List(ctx, s.pool)
}

func (s *TournamentService) UpdateSeason(ctx context.Context, id uuid.UUID, upd domain.SeasonUpdate) (*domain.Season, error) {
	if err := domain.ValidateSeasonName(upd.Name); err != nil {
		return nil, err
	}

	var season *domain.Season
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		var err error
		season, err = s.seasons.Update(ctx, tx, id, upd)
		if err != nil {
			if repository.IsUniqueViolation(err) {
				return domain.ErrConflict("season name already in use")
			}
			return err
		}
		if season == nil {
			return domain.ErrNotFound("season", id.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return season, nil
}

func (s *TournamentService) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	player, err := s.players.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domain.ErrNotFound("player", id.String())
	}
	return player, nil
}

func (s *TournamentService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	return s.players.List(ctx, s.pool)
}

func (s *TournamentService) RenamePlayer(ctx context.Context, id uuid.UUID, name string) (*domain.Player, error) {
	if err := domain.ValidatePlayerName(name); err != nil {
		return nil, err
	}

	var player *domain.Player
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		var err error
		player, err = s.players.Rename(ctx, tx, id, name)
		if err != nil {
			if repository.IsUniqueViolation(err) {
				return domain.ErrConflict("player name already in use")
			}
			return err
		}
		if player == nil {
			return domain.ErrNotFound("player", id.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

func (s *TournamentService) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	game, err := s.games.FindByID(ctx, s.pool, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, domain.ErrNotFound("game", id.String())
	}
	return game, nil
}

func (s *TournamentService) ListGames(ctx context.Context) ([]domain.Game, error) {
	return s.games.List(ctx, s.pool)
}

func (s *TournamentService) UpdateGame(ctx context.Context, id uuid.UUID, upd domain.GameUpdate) (*domain.Game, error) {
	if err := domain.ValidateGameNumber(upd.GameNumber); err != nil {
		return nil, err
	}

	var game *domain.Game
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		var err error
		game, err = s.games.Update(ctx, tx, id, upd)
		if err != nil {
			if repository.IsUniqueViolation(err) {
				return domain.ErrConflict("game number already in use")
			}
			return err
		}
		if game == nil {
			return domain.ErrNotFound("game", id.String())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *TournamentService) GetAccount(ctx context.Context, id uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	return s.engine.GetAccount(ctx, s.pool, id)
}

func (s *TournamentService) ListAccounts(ctx context.Context) ([]domain.SeasonPlayerAccount, error) {
	return s.accounts.List(ctx, s.pool)
}

func (s *TournamentService) UpdateAccount(ctx context.Context, id uuid.UUID, upd domain.AccountUpdate) (*domain.SeasonPlayerAccount, error) {
	var account *domain.SeasonPlayerAccount
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		var err error
		account, err = s.engine.UpdateAccount(ctx, tx, id, upd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}
