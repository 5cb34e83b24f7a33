package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeasonPlayerAccount is the ledger entity: a player's financial standing
// within one season. At most one account exists per (season, player) pair.
//
// Invariant at creation: CurrentPotSize == AllocatedPotSize. Thereafter
// CurrentPotSize only moves through explicit reconciliation (see the
// ledger package) or a full-replace update.
type SeasonPlayerAccount struct {
	ID               uuid.UUID       `json:"id"`
	SeasonID         uuid.UUID       `json:"season_id"`
	PlayerID         uuid.UUID       `json:"player_id"`
	AllocatedPotSize decimal.Decimal `json:"allocated_pot_size"`
	MinBuyIn         decimal.Decimal `json:"min_buy_in"`
	CurrentPotSize   decimal.Decimal `json:"current_pot_size"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OpenAccountParams is the input to ExecuteOpenAccount. Natural keys are
// resolved by the caller before the command runs.
type OpenAccountParams struct {
	SeasonID         uuid.UUID
	PlayerID         uuid.UUID
	MinBuyIn         decimal.Decimal
	AllocatedPotSize decimal.Decimal
}

// AccountUpdate holds the full replacement state for a season-player
// account. All four mutable fields are supplied on every update.
type AccountUpdate struct {
	SeasonID         uuid.UUID       `json:"season_id"`
	PlayerID         uuid.UUID       `json:"player_id"`
	AllocatedPotSize decimal.Decimal `json:"allocated_pot_size"`
	MinBuyIn         decimal.Decimal `json:"min_buy_in"`
	CurrentPotSize   decimal.Decimal `json:"current_pot_size"`
}

// Validate applies the monetary guard to all three amounts.
func (u AccountUpdate) Validate() error {
	for _, d := range []decimal.Decimal{u.AllocatedPotSize, u.MinBuyIn, u.CurrentPotSize} {
		if err := ValidateMoney(d); err != nil {
			return err
		}
	}
	return nil
}
