package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck groups a user's cards for study and queue scoping.
type Deck struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeckWithCounts is a deck together with its per-state card counts,
// computed in SQL for list views.
type DeckWithCounts struct {
	Deck
	CardCount int
	DueCount  int
	NewCount  int
}

// DeckUpdateParams holds the mutable deck fields. Nil means keep current value.
type DeckUpdateParams struct {
	Name        *string
	Description *string
}
