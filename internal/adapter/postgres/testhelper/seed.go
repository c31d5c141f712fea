package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avolkovv/memobox-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUserID returns a fresh user id. There is no users table: users live in
// the identity provider and rows only carry an opaque user_id.
func SeedUserID() uuid.UUID {
	return uuid.New()
}

// SeedDeck creates a deck for the given user. Returns a filled domain.Deck.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Deck {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	deck := domain.Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "Test Deck " + suffix,
		Description: "Seeded deck " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO decks (id, user_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		deck.ID, deck.UserID, deck.Name, deck.Description, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck insert deck: %v", err)
	}

	return deck
}

// SeedCard creates a card in the given deck with state NEW and zero review
// history. Returns a filled domain.Card.
func SeedCard(t *testing.T, pool *pgxpool.Pool, userID, deckID uuid.UUID) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:        uuid.New(),
		UserID:    userID,
		DeckID:    deckID,
		Front:     "front " + suffix,
		Back:      "back " + suffix,
		State:     domain.CardStateNew,
		Due:       now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	insertCard(t, pool, card)
	return card
}

// SeedCardWithState creates a card with the given SRS state, due at the given
// time. Stability and difficulty get mid-range values suitable for review flows.
func SeedCardWithState(t *testing.T, pool *pgxpool.Pool, userID, deckID uuid.UUID, state domain.CardState, due time.Time) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	lastReview := due.Add(-24 * time.Hour)
	card := domain.Card{
		ID:            uuid.New(),
		UserID:        userID,
		DeckID:        deckID,
		Front:         "front " + suffix,
		Back:          "back " + suffix,
		State:         state,
		Stability:     5.0,
		Difficulty:    5.0,
		Due:           due.UTC().Truncate(time.Microsecond),
		LastReview:    &lastReview,
		Reps:          1,
		ScheduledDays: 1,
		ElapsedDays:   0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	insertCard(t, pool, card)
	return card
}

func insertCard(t *testing.T, pool *pgxpool.Pool, card domain.Card) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, user_id, deck_id, front, back, state, step, stability, difficulty,
		                    due, last_review, reps, lapses, scheduled_days, elapsed_days, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		card.ID, card.UserID, card.DeckID, card.Front, card.Back, string(card.State), card.Step,
		card.Stability, card.Difficulty, card.Due, card.LastReview, card.Reps, card.Lapses,
		card.ScheduledDays, card.ElapsedDays, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert card: %v", err)
	}
}

// SeedSettings creates user_settings with default values for the given user.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.UserSettings {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	settings := domain.DefaultUserSettings(userID)
	settings.UpdatedAt = now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_settings (user_id, desired_retention, max_interval_days, new_cards_per_day, timezone, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		settings.UserID, settings.DesiredRetention, settings.MaxIntervalDays, settings.NewCardsPerDay, settings.Timezone, settings.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings insert user_settings: %v", err)
	}

	return *settings
}

// SeedReviewLog creates a review log row for the given card.
func SeedReviewLog(t *testing.T, pool *pgxpool.Pool, userID, cardID uuid.UUID, grade domain.ReviewGrade, reviewedAt time.Time) domain.ReviewLog {
	t.Helper()

	log := domain.ReviewLog{
		ID:            uuid.New(),
		CardID:        cardID,
		UserID:        userID,
		Grade:         grade,
		State:         domain.CardStateLearning,
		ElapsedDays:   0,
		ScheduledDays: 1,
		ReviewedAt:    reviewedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_logs (id, card_id, user_id, grade, state, elapsed_days, scheduled_days, duration_ms, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, log.CardID, log.UserID, string(log.Grade), string(log.State),
		log.ElapsedDays, log.ScheduledDays, log.DurationMs, log.ReviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewLog insert review_log: %v", err)
	}

	return log
}
