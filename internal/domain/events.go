package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

func newDraft(agg AggregateType, aggID uuid.UUID, evt EventType, payload any) OutboxDraft {
	body, _ := json.Marshal(payload)
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: agg,
		AggregateID:   aggID.String(),
		EventType:     evt,
		PartitionKey:  aggID.String(),
		Headers:       json.RawMessage(`{}`),
		Payload:       body,
		OccurredAt:    time.Now(),
	}
}

// NewSeasonCreatedEvent creates a season lifecycle event.
func NewSeasonCreatedEvent(s *Season) OutboxDraft {
	return newDraft(AggregateSeason, s.ID, EventSeasonCreated, s)
}

// NewPlayerCreatedEvent creates a player lifecycle event, emitted when the
// resolver creates a player on first reference.
func NewPlayerCreatedEvent(p *Player) OutboxDraft {
	return newDraft(AggregatePlayer, p.ID, EventPlayerCreated, p)
}

// NewGameCreatedEvent creates a game lifecycle event.
func NewGameCreatedEvent(g *Game) OutboxDraft {
	return newDraft(AggregateGame, g.ID, EventGameCreated, g)
}

// NewAccountOpenedEvent creates an account lifecycle event.
func NewAccountOpenedEvent(a *SeasonPlayerAccount) OutboxDraft {
	return newDraft(AggregateAccount, a.ID, EventAccountOpened, a)
}

// NewBuyInRecordedEvent creates the ledger event for a buy-in row.
func NewBuyInRecordedEvent(b *GameBuyIn) OutboxDraft {
	return newDraft(AggregateAccount, b.SeasonPlayerID, EventBuyInRecorded, b)
}

// NewResultRecordedEvent creates the ledger event for a result row.
func NewResultRecordedEvent(r *GameResult) OutboxDraft {
	return newDraft(AggregateAccount, r.SeasonPlayerID, EventResultRecorded, r)
}

// NewParticipationRecordedEvent creates the ledger event for a participation row.
func NewParticipationRecordedEvent(p *PlayerParticipation) OutboxDraft {
	return newDraft(AggregateAccount, p.SeasonPlayerID, EventParticipationRecorded, p)
}

// NewAccountReconciledEvent records a pot recomputation.
func NewAccountReconciledEvent(a *SeasonPlayerAccount) OutboxDraft {
	return newDraft(AggregateAccount, a.ID, EventAccountReconciled, a)
}

// NewEntityDeletedEvent records a guarded delete that went through.
func NewEntityDeletedEvent(kind EntityKind, id uuid.UUID) OutboxDraft {
	evt := map[EntityKind]EventType{
		KindSeason:  EventSeasonDeleted,
		KindPlayer:  EventPlayerDeleted,
		KindGame:    EventGameDeleted,
		KindAccount: EventAccountDeleted,
	}[kind]
	agg := map[EntityKind]AggregateType{
		KindSeason:  AggregateSeason,
		KindPlayer:  AggregatePlayer,
		KindGame:    AggregateGame,
		KindAccount: AggregateAccount,
	}[kind]
	return newDraft(agg, id, evt, map[string]string{"id": id.String(), "kind": string(kind)})
}
