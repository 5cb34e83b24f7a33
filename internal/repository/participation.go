package repository

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type participationRepo struct{}

// NewParticipationRepository returns a pgx-backed ParticipationRepository.
func NewParticipationRepository() ParticipationRepository {
	return &participationRepo{}
}

func (r *participationRepo) Insert(ctx context.Context, db DBTX, params domain.RecordParticipationParams) (*domain.PlayerParticipation, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO player_participations (game_id, season_player_id, participated)
		VALUES ($1, $2, $3)
		RETURNING id, game_id, season_player_id, participated, decided_at, created_at`,
		params.GameID, params.SeasonPlayerID, params.Participated)
	return scanParticipation(row)
}

func (r *participationRepo) FindByGameAndAccount(ctx context.Context, db DBTX, gameID, accountID uuid.UUID) (*domain.PlayerParticipation, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, participated, decided_at, created_at
		FROM player_participations WHERE game_id = $1 AND season_player_id = $2`, gameID, accountID)
	return scanParticipation(row)
}

func (r *participationRepo) FindFirstByGame(ctx context.Context, db DBTX, gameID uuid.UUID) (*domain.PlayerParticipation, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, participated, decided_at, created_at
		FROM player_participations WHERE game_id = $1
		ORDER BY created_at, id
		LIMIT 1`, gameID)
	return scanParticipation(row)
}

func (r *participationRepo) FindFirstByAccount(ctx context.Context, db DBTX, accountID uuid.UUID) (*domain.PlayerParticipation, error) {
	row := db.QueryRow(ctx, `
		SELECT id, game_id, season_player_id, participated, decided_at, created_at
		FROM player_participations WHERE season_player_id = $1
		ORDER BY created_at, id
		LIMIT 1`, accountID)
	return scanParticipation(row)
}

func scanParticipation(row pgx.Row) (*domain.PlayerParticipation, error) {
	var p domain.PlayerParticipation
	err := row.Scan(&p.ID, &p.GameID, &p.SeasonPlayerID, &p.Participated, &p.DecidedAt, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan participation: %w", err)
	}
	return &p, nil
}
