// Package service orchestrates the public tournament operations. Each
// operation resolves natural keys, runs the ledger command, and commits as
// a single transaction.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/guard"
	"github.com/felttable/tracker/internal/ledger"
	"github.com/felttable/tracker/internal/repository"
	"github.com/felttable/tracker/internal/resolver"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var txOpts = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

// TournamentService is the public surface of the tracker. Operations that
// write run inside one pgx transaction; reads go straight to the pool.
type TournamentService struct {
	pool     *pgxpool.Pool
	players  repository.PlayerRepository
	seasons  repository.SeasonRepository
	games    repository.GameRepository
	accounts repository.AccountRepository
	outbox   repository.OutboxRepository
	resolver *resolver.Resolver
	engine   *ledger.Engine
	guard    *guard.Guard
	logger   *slog.Logger
}

// NewTournamentService creates a TournamentService.
func NewTournamentService(
	pool *pgxpool.Pool,
	players repository.PlayerRepository,
	seasons repository.SeasonRepository,
	games repository.GameRepository,
	accounts repository.AccountRepository,
	outbox repository.OutboxRepository,
	res *resolver.Resolver,
	engine *ledger.Engine,
	g *guard.Guard,
	logger *slog.Logger,
) *TournamentService {
	return &TournamentService{
		pool:     pool,
		players:  players,
		seasons:  seasons,
		games:    games,
		accounts: accounts,
		outbox:   outbox,
		resolver: res,
		engine:   engine,
		guard:    g,
		logger:   logger,
	}
}

// CreateSeason opens a new season under a unique name. The start date
// defaults to the current day.
func (s *TournamentService) CreateSeason(ctx context.Context, name string) (*domain.Season, error) {
	if err := domain.ValidateSeasonName(name); err != nil {
		return nil, err
	}

	var season *domain.Season
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		existing, err := s.seasons.FindByName(ctx, tx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrConflict("season name already in use")
		}

		season, err = s.seasons.Create(ctx, tx, name, time.Now())
		if err != nil {
			if repository.IsUniqueViolation(err) {
				return domain.ErrConflict("season name already in use")
			}
			return err
		}
		return s.outbox.Insert(ctx, tx, domain.NewSeasonCreatedEvent(season))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("season created", "season_id", season.ID, "name", season.Name)
	return season, nil
}

// EnrollPlayer opens a buy-in account for a player in a season, creating
// the player on first reference.
func (s *TournamentService) EnrollPlayer(ctx context.Context, seasonName, playerName string, minBuyIn, allocatedPotSize decimal.Decimal) (*domain.SeasonPlayerAccount, error) {
	var account *domain.SeasonPlayerAccount
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		seasonID, err := s.resolver.SeasonID(ctx, tx, seasonName)
		if err != nil {
			return err
		}
		playerID, playerCreated, err := s.resolver.EnsurePlayerID(ctx, tx, playerName)
		if err != nil {
			return err
		}
		if playerCreated {
			player, err := s.players.FindByID(ctx, tx, playerID)
			if err != nil {
				return err
			}
			if err := s.outbox.Insert(ctx, tx, domain.NewPlayerCreatedEvent(player)); err != nil {
				return err
			}
		}

		account, err = s.engine.ExecuteOpenAccount(ctx, tx, domain.OpenAccountParams{
			SeasonID:         seasonID,
			PlayerID:         playerID,
			MinBuyIn:         minBuyIn,
			AllocatedPotSize: allocatedPotSize,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("player enrolled", "account_id", account.ID, "season", seasonName, "player", playerName)
	return account, nil
}

// CreateGame schedules a game in a season under a globally unique number.
func (s *TournamentService) CreateGame(ctx context.Context, seasonName string, gameNumber int) (*domain.Game, error) {
	if err := domain.ValidateGameNumber(gameNumber); err != nil {
		return nil, err
	}

	var game *domain.Game
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		seasonID, err := s.resolver.SeasonID(ctx, tx, seasonName)
		if err != nil {
			return err
		}

		existing, err := s.games.FindByNumber(ctx, tx, gameNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrConflict("game number already in use")
		}

		game, err = s.games.Create(ctx, tx, seasonID, gameNumber)
		if err != nil {
			if repository.IsUniqueViolation(err) {
				return domain.ErrConflict("game number already in use")
			}
			return err
		}
		return s.outbox.Insert(ctx, tx, domain.NewGameCreatedEvent(game))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game created", "game_id", game.ID, "number", game.GameNumber)
	return game, nil
}

// RecordBuyIn appends a buy-in for a player in the game identified by its
// number. The account is the player's account in the game's season.
func (s *TournamentService) RecordBuyIn(ctx context.Context, gameNumber int, playerName string, amount decimal.Decimal) (*domain.GameBuyIn, error) {
	var buyIn *domain.GameBuyIn
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		game, accountID, err := s.resolveGameAccount(ctx, tx, gameNumber, playerName)
		if err != nil {
			return err
		}
		buyIn, err = s.engine.ExecuteRecordBuyIn(ctx, tx, domain.RecordBuyInParams{
			GameID:         game.ID,
			SeasonPlayerID: accountID,
			Amount:         amount,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("buy-in recorded", "buy_in_id", buyIn.ID, "game", gameNumber, "player", playerName)
	return buyIn, nil
}

// RecordResult appends a winnings entry for a player in a game.
func (s *TournamentService) RecordResult(ctx context.Context, gameNumber int, playerName string, winnings decimal.Decimal) (*domain.GameResult, error) {
	var result *domain.GameResult
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		game, accountID, err := s.resolveGameAccount(ctx, tx, gameNumber, playerName)
		if err != nil {
			return err
		}
		result, err = s.engine.ExecuteRecordResult(ctx, tx, domain.RecordResultParams{
			GameID:         game.ID,
			SeasonPlayerID: accountID,
			Winnings:       winnings,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("result recorded", "result_id", result.ID, "game", gameNumber, "player", playerName)
	return result, nil
}

// RecordParticipation stores a player's attendance decision for a game.
func (s *TournamentService) RecordParticipation(ctx context.Context, gameNumber int, playerName string, participated bool) (*domain.PlayerParticipation, error) {
	var participation *domain.PlayerParticipation
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		game, accountID, err := s.resolveGameAccount(ctx, tx, gameNumber, playerName)
		if err != nil {
			return err
		}
		participation, err = s.engine.ExecuteRecordParticipation(ctx, tx, domain.RecordParticipationParams{
			GameID:         game.ID,
			SeasonPlayerID: accountID,
			Participated:   participated,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("participation recorded", "participation_id", participation.ID, "game", gameNumber, "player", playerName)
	return participation, nil
}

// FindAccount resolves a (season name, player name) pair to the account
// linking them.
func (s *TournamentService) FindAccount(ctx context.Context, seasonName, playerName string) (*domain.SeasonPlayerAccount, error) {
	accountID, err := s.resolver.AccountID(ctx, s.pool, seasonName, playerName)
	if err != nil {
		return nil, err
	}
	return s.engine.GetAccount(ctx, s.pool, accountID)
}

// ReconcileAccount recomputes an account's pot from its event log.
func (s *TournamentService) ReconcileAccount(ctx context.Context, accountID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	var account *domain.SeasonPlayerAccount
	err := pgx.BeginTxFunc(ctx, s.pool, txOpts, func(tx pgx.Tx) error {
		var err error
		account, err = s.engine.ExecuteReconcileAccount(ctx, tx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account reconciled", "account_id", account.ID, "pot", account.CurrentPotSize)
	return account, nil
}

// resolveGameAccount resolves a game number and a player name to the game
// and the player's account in the game's season. The player is resolved in
// the season the game belongs to, so a player enrolled elsewhere is still
// NotFound here.
func (s *TournamentService) resolveGameAccount(ctx context.Context, tx pgx.Tx, gameNumber int, playerName string) (*domain.Game, uuid.UUID, error) {
	game, err := s.resolver.GameByNumber(ctx, tx, gameNumber)
	if err != nil {
		return nil, uuid.Nil, err
	}
	playerID, err := s.resolver.PlayerID(ctx, tx, playerName)
	if err != nil {
		return nil, uuid.Nil, err
	}

	account, err := s.accounts.FindBySeasonAndPlayer(ctx, tx, game.SeasonID, playerID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if account == nil {
		return nil, uuid.Nil, domain.ErrNotFound("account", playerName)
	}
	return game, account.ID, nil
}
