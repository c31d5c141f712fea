package domain

import (
	"time"

	"github.com/google/uuid"
)

// SRSConfig holds global spaced-repetition parameters (pure domain type).
// Per-user overrides live in UserSettings.
type SRSConfig struct {
	DesiredRetention float64
	MaxIntervalDays  int
	EnableFuzz       bool
	LearningSteps    []time.Duration
	RelearningSteps  []time.Duration
	NewCardsPerDay   int
	QueueLimit       int
}

// SRSUpdateParams holds the scheduling fields to persist on a card after a
// review. The repo upserts exactly this set.
type SRSUpdateParams struct {
	State         CardState
	Step          int
	Stability     float64
	Difficulty    float64
	Due           time.Time
	LastReview    *time.Time
	Reps          int
	Lapses        int
	ScheduledDays float64
	ElapsedDays   float64
}

// UserSettings holds per-learner study preferences.
type UserSettings struct {
	UserID           uuid.UUID
	DesiredRetention float64
	MaxIntervalDays  int
	NewCardsPerDay   int
	Timezone         string
	UpdatedAt        time.Time
}

// DefaultUserSettings returns the settings used when a user has no stored row.
func DefaultUserSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:           userID,
		DesiredRetention: 0.9,
		MaxIntervalDays:  365,
		NewCardsPerDay:   20,
		Timezone:         "UTC",
	}
}

// CardStatusCounts holds the count of cards per state.
type CardStatusCounts struct {
	New        int
	Learning   int
	Review     int
	Relearning int
	Total      int
}

// Dashboard holds aggregated study statistics for the user.
type Dashboard struct {
	DueCount      int
	NewCount      int
	ReviewedToday int
	NewToday      int
	StatusCounts  CardStatusCounts
}
