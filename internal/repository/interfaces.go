package repository

import (
	"context"
	"errors"
	"time"

	"github.com/felttable/tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). Unique indexes are the final arbiter for the
// natural-key and composite-uniqueness invariants; callers translate this
// into a Conflict or retry a lookup.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PlayerRepository provides access to players.
type PlayerRepository interface {
	// FindByID returns a player by id, or nil if absent.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Player, error)

	// FindByName returns a player by exact name match, or nil if absent.
	FindByName(ctx context.Context, db DBTX, name string) (*domain.Player, error)

	// List returns all players ordered by creation time.
	List(ctx context.Context, db DBTX) ([]domain.Player, error)

	// Create inserts a new player with a server-assigned id and timestamp.
	// Returns nil without error when the name already exists, so a lost
	// creation race never aborts the caller's transaction.
	Create(ctx context.Context, db DBTX, name string) (*domain.Player, error)

	// Rename replaces the player's display name.
	Rename(ctx context.Context, db DBTX, id uuid.UUID, name string) (*domain.Player, error)

	// Delete removes a player row. Callers run the integrity guard first.
	Delete(ctx context.Context, db DBTX, id uuid.UUID) error
}

// SeasonRepository provides access to seasons.
type SeasonRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Season, error)
	FindByName(ctx context.Context, db DBTX, name string) (*domain.Season, error)
	List(ctx context.Context, db DBTX) ([]domain.Season, error)
	Create(ctx context.Context, db DBTX, name string, startDate time.Time) (*domain.Season, error)
	Update(ctx context.Context, db DBTX, id uuid.UUID, upd domain.SeasonUpdate) (*domain.Season, error)
	Delete(ctx context.Context, db DBTX, id uuid.UUID) error
}

// GameRepository provides access to games.
type GameRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Game, error)

	// FindByNumber resolves a game by its number alone. Game numbers are
	// globally unique; the most recently created match wins if the unique
	// index is ever relaxed.
	FindByNumber(ctx context.Context, db DBTX, gameNumber int) (*domain.Game, error)

	// FindFirstBySeason returns the first game owned by a season, used by
	// the integrity guard.
	FindFirstBySeason(ctx context.Context, db DBTX, seasonID uuid.UUID) (*domain.Game, error)

	List(ctx context.Context, db DBTX) ([]domain.Game, error)
	Create(ctx context.Context, db DBTX, seasonID uuid.UUID, gameNumber int) (*domain.Game, error)
	Update(ctx context.Context, db DBTX, id uuid.UUID, upd domain.GameUpdate) (*domain.Game, error)
	Delete(ctx context.Context, db DBTX, id uuid.UUID) error
}

// AccountRepository provides access to season_players, the ledger accounts.
type AccountRepository interface {
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.SeasonPlayerAccount, error)

	// LockForUpdate acquires a row-level lock (SELECT FOR UPDATE) on the account.
	LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.SeasonPlayerAccount, error)

	// FindBySeasonAndPlayer returns the unique account for a (season, player)
	// pair, or nil if none exists.
	FindBySeasonAndPlayer(ctx context.Context, db DBTX, seasonID, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error)

	// FindFirstBySeason and FindFirstByPlayer serve the integrity guard.
	FindFirstBySeason(ctx context.Context, db DBTX, seasonID uuid.UUID) (*domain.SeasonPlayerAccount, error)
	FindFirstByPlayer(ctx context.Context, db DBTX, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error)

	List(ctx context.Context, db DBTX) ([]domain.SeasonPlayerAccount, error)
	Create(ctx context.Context, db DBTX, params domain.OpenAccountParams) (*domain.SeasonPlayerAccount, error)
	Update(ctx context.Context, db DBTX, id uuid.UUID, upd domain.AccountUpdate) (*domain.SeasonPlayerAccount, error)

	// SetCurrentPot persists a reconciled pot balance.
	SetCurrentPot(ctx context.Context, db DBTX, id uuid.UUID, pot decimal.Decimal) (*domain.SeasonPlayerAccount, error)

	Delete(ctx context.Context, db DBTX, id uuid.UUID) error
}

// BuyInRepository provides access to game_buy_ins, the debit events.
type BuyInRepository interface {
	Insert(ctx context.Context, db DBTX, params domain.RecordBuyInParams) (*domain.GameBuyIn, error)
	FindByGameAndAccount(ctx context.Context, db DBTX, gameID, accountID uuid.UUID) (*domain.GameBuyIn, error)
	FindFirstByGame(ctx context.Context, db DBTX, gameID uuid.UUID) (*domain.GameBuyIn, error)
	FindFirstByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (*domain.GameBuyIn, error)

	// SumByAccount totals all buy-ins recorded against an account.
	SumByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (decimal.Decimal, error)
}

// ResultRepository provides access to game_results, the credit events.
type ResultRepository interface {
	Insert(ctx context.Context, db DBTX, params domain.RecordResultParams) (*domain.GameResult, error)
	FindByGameAndAccount(ctx context.Context, db DBTX, gameID, accountID uuid.UUID) (*domain.GameResult, error)
	FindFirstByGame(ctx context.Context, db DBTX, gameID uuid.UUID) (*domain.GameResult, error)
	FindFirstByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (*domain.GameResult, error)

	// SumByAccount totals all winnings recorded against an account.
	SumByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (decimal.Decimal, error)
}

// ParticipationRepository provides access to player_participations.
type ParticipationRepository interface {
	Insert(ctx context.Context, db DBTX, params domain.RecordParticipationParams) (*domain.PlayerParticipation, error)
	FindByGameAndAccount(ctx context.Context, db DBTX, gameID, accountID uuid.UUID) (*domain.PlayerParticipation, error)
	FindFirstByGame(ctx context.Context, db DBTX, gameID uuid.UUID) (*domain.PlayerParticipation, error)
	FindFirstByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (*domain.PlayerParticipation, error)
}

// OutboxRepository provides access to the event_outbox table.
type OutboxRepository interface {
	// Insert writes an outbox event (within the same transaction as the
	// operation it describes).
	Insert(ctx context.Context, db DBTX, draft domain.OutboxDraft) error

	// FetchUnpublished returns unpublished events for the outbox poller.
	FetchUnpublished(ctx context.Context, db DBTX, limit int) ([]domain.OutboxDraft, error)

	// MarkPublished stamps events as published.
	MarkPublished(ctx context.Context, db DBTX, ids []uuid.UUID) error
}
