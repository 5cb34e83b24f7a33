package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a players row. Players are created lazily the first
// time a name is referenced without an existing match.
type Player struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
