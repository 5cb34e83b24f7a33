package ledger

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ExecuteRecordParticipation records a player's attendance decision for a
// game. The decision timestamp is assigned server-side on insert.
func (e *Engine) ExecuteRecordParticipation(ctx context.Context, tx pgx.Tx, params domain.RecordParticipationParams) (*domain.PlayerParticipation, error) {
	if err := e.requireAccount(ctx, tx, params.SeasonPlayerID); err != nil {
		return nil, err
	}

	existing, err := e.participations.FindByGameAndAccount(ctx, tx, params.GameID, params.SeasonPlayerID)
	if err != nil {
		return nil, fmt.Errorf("record participation: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("participation already recorded for this game and account")
	}

	participation, err := e.participations.Insert(ctx, tx, params)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrConflict("participation already recorded for this game and account")
		}
		return nil, fmt.Errorf("record participation: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewParticipationRecordedEvent(participation)); err != nil {
		return nil, fmt.Errorf("record participation outbox: %w", err)
	}
	return participation, nil
}
