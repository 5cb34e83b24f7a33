package domain

import (
	"time"

	"github.com/google/uuid"
)

// Season represents a seasons row. A season owns its games and its
// season-player accounts.
type Season struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// SeasonUpdate holds the full replacement state for a season. Missing
// optional fields become null.
type SeasonUpdate struct {
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Game represents a games row. Game numbers are globally unique across
// seasons so a game can be resolved by number alone.
type Game struct {
	ID         uuid.UUID  `json:"id"`
	SeasonID   uuid.UUID  `json:"season_id"`
	GameNumber int        `json:"game_number"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// GameUpdate holds the full replacement state for a game.
type GameUpdate struct {
	SeasonID   uuid.UUID  `json:"season_id"`
	GameNumber int        `json:"game_number"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
}
