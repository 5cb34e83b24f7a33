package domain

import "github.com/google/uuid"

// EntityKind identifies the deletable entities guarded against orphaned
// ledger records.
type EntityKind string

const (
	KindSeason  EntityKind = "season"
	KindPlayer  EntityKind = "player"
	KindGame    EntityKind = "game"
	KindAccount EntityKind = "seasonPlayer"
)

// Reference warning keys, one per (owner, dependent) edge, checked in a
// fixed priority order by the guard.
const (
	WarnSeasonAccount        = "season.seasonPlayer.season.referenced"
	WarnSeasonGame           = "season.game.season.referenced"
	WarnPlayerAccount        = "player.seasonPlayer.player.referenced"
	WarnGameBuyIn            = "game.gameBuyIn.game.referenced"
	WarnGameResult           = "game.gameResult.game.referenced"
	WarnGameParticipation    = "game.playerParticipation.game.referenced"
	WarnAccountBuyIn         = "seasonPlayer.gameBuyIn.seasonPlayer.referenced"
	WarnAccountResult        = "seasonPlayer.gameResult.seasonPlayer.referenced"
	WarnAccountParticipation = "seasonPlayer.playerParticipation.seasonPlayer.referenced"
)

// ReferenceWarning is the structured refusal reason returned when a delete
// would orphan dependent records. Key is machine-readable; ReferencedBy is
// the id of the first blocking record found.
type ReferenceWarning struct {
	Key          string    `json:"key"`
	ReferencedBy uuid.UUID `json:"referenced_by"`
}
