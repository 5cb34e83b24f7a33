package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates all domain event types.
type EventType string

const (
	EventSeasonCreated         EventType = "tracker.season.created"
	EventSeasonDeleted         EventType = "tracker.season.deleted"
	EventPlayerCreated         EventType = "tracker.player.created"
	EventPlayerDeleted         EventType = "tracker.player.deleted"
	EventGameCreated           EventType = "tracker.game.created"
	EventGameDeleted           EventType = "tracker.game.deleted"
	EventAccountOpened         EventType = "tracker.account.opened"
	EventAccountDeleted        EventType = "tracker.account.deleted"
	EventAccountReconciled     EventType = "tracker.account.reconciled"
	EventBuyInRecorded         EventType = "tracker.ledger.buyin.recorded"
	EventResultRecorded        EventType = "tracker.ledger.result.recorded"
	EventParticipationRecorded EventType = "tracker.ledger.participation.recorded"
)

// AggregateType enumerates the aggregate root types for outbox events.
type AggregateType string

const (
	AggregateSeason  AggregateType = "season"
	AggregatePlayer  AggregateType = "player"
	AggregateGame    AggregateType = "game"
	AggregateAccount AggregateType = "account"
)

// OutboxDraft is the payload written to the event_outbox table, inside the
// same transaction as the operation it describes.
type OutboxDraft struct {
	EventID       uuid.UUID       `json:"eventId"`
	AggregateType AggregateType   `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	EventType     EventType       `json:"eventType"`
	PartitionKey  string          `json:"partitionKey"`
	Headers       json.RawMessage `json:"headers"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurredAt"`
}
