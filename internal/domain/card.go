package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a flashcard owned by a user inside a deck, together with its
// FSRS scheduling state. A freshly created card is in state NEW with zero
// counters; the scheduling fields become meaningful after the first review.
type Card struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DeckID     uuid.UUID
	Front      string
	Back       string
	State      CardState
	Step       int
	Stability  float64
	Difficulty float64
	Due        time.Time
	LastReview *time.Time
	Reps       int
	Lapses     int
	// ScheduledDays is the interval the last scheduling decision assigned,
	// in fractional days (learning steps are sub-day). Stored unrounded;
	// rounding is a display concern only.
	ScheduledDays float64
	// ElapsedDays is recomputed from LastReview at scheduling time; the
	// stored value is reset to 0 after every review.
	ElapsedDays float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDue returns true if the card needs review at the given time.
//   - NEW cards are always due.
//   - Other cards are due when Due <= now.
func (c *Card) IsDue(now time.Time) bool {
	if c.State == CardStateNew {
		return true
	}
	return !c.Due.After(now)
}

// CardContentUpdateParams holds the mutable content fields of a card.
// Nil means keep current value. Scheduling fields change only through
// SRSUpdateParams.
type CardContentUpdateParams struct {
	Front *string
	Back  *string
}

// ReviewLog records a single review event for a card. Rows are append-only
// and are used for statistics and audit; the scheduler never reads them back.
type ReviewLog struct {
	ID            uuid.UUID
	CardID        uuid.UUID
	UserID        uuid.UUID
	Grade         ReviewGrade
	State         CardState // state the review produced
	ElapsedDays   float64
	ScheduledDays float64
	DurationMs    *int
	ReviewedAt    time.Time
}
