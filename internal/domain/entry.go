package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameBuyIn is a debit event: a player staking money into a specific game.
// Unique per (game, account); recording one never mutates the account's
// pot directly, balances are derived by reconciliation.
type GameBuyIn struct {
	ID             uuid.UUID       `json:"id"`
	GameID         uuid.UUID       `json:"game_id"`
	SeasonPlayerID uuid.UUID       `json:"season_player_id"`
	BuyInAmount    decimal.Decimal `json:"buy_in_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// GameResult is a credit event: a player's winnings from a specific game.
// Unique per (game, account). Winnings may be zero.
type GameResult struct {
	ID             uuid.UUID       `json:"id"`
	GameID         uuid.UUID       `json:"game_id"`
	SeasonPlayerID uuid.UUID       `json:"season_player_id"`
	Winnings       decimal.Decimal `json:"winnings"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PlayerParticipation records whether a player took part in a game,
// with the server timestamp of the decision.
type PlayerParticipation struct {
	ID             uuid.UUID `json:"id"`
	GameID         uuid.UUID `json:"game_id"`
	SeasonPlayerID uuid.UUID `json:"season_player_id"`
	Participated   bool      `json:"participated"`
	DecidedAt      time.Time `json:"decided_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordBuyInParams is the input to ExecuteRecordBuyIn.
type RecordBuyInParams struct {
	GameID         uuid.UUID
	SeasonPlayerID uuid.UUID
	Amount         decimal.Decimal
}

// RecordResultParams is the input to ExecuteRecordResult.
type RecordResultParams struct {
	GameID         uuid.UUID
	SeasonPlayerID uuid.UUID
	Winnings       decimal.Decimal
}

// RecordParticipationParams is the input to ExecuteRecordParticipation.
type RecordParticipationParams struct {
	GameID         uuid.UUID
	SeasonPlayerID uuid.UUID
	Participated   bool
}
