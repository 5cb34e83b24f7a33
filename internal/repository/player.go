package repository

import (
	"context"
	"fmt"

	"github.com/felttable/tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type playerRepo struct{}

// NewPlayerRepository returns a pgx-backed PlayerRepository.
func NewPlayerRepository() PlayerRepository {
	return &playerRepo{}
}

func (r *playerRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Player, error) {
	row := db.QueryRow(ctx, `
		SELECT id, name, created_at
		FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

func (r *playerRepo) FindByName(ctx context.Context, db DBTX, name string) (*domain.Player, error) {
	row := db.QueryRow(ctx, `
		SELECT id, name, created_at
		FROM players WHERE name = $1`, name)
	return scanPlayer(row)
}

func (r *playerRepo) List(ctx context.Context, db DBTX) ([]domain.Player, error) {
	rows, err := db.Query(ctx, `
		SELECT id, name, created_at
		FROM players ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *playerRepo) Create(ctx context.Context, db DBTX, name string) (*domain.Player, error) {
	// ON CONFLICT DO NOTHING keeps a lost name race from raising an error
	// and aborting the enclosing transaction; the caller sees nil and
	// retries the lookup instead.
	row := db.QueryRow(ctx, `
		INSERT INTO players (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, created_at`, name)
	return scanPlayer(row)
}

func (r *playerRepo) Rename(ctx context.Context, db DBTX, id uuid.UUID, name string) (*domain.Player, error) {
	row := db.QueryRow(ctx, `
		UPDATE players SET name = $2
		WHERE id = $1
		RETURNING id, name, created_at`, id, name)
	return scanPlayer(row)
}

func (r *playerRepo) Delete(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}
	return &p, nil
}
