// Package card implements the card repository using PostgreSQL.
// Simple CRUD goes through squirrel builders; queue and counter queries
// use raw SQL.
package card

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/avolkovv/memobox-backend/internal/adapter/postgres"
	"github.com/avolkovv/memobox-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const cardColumns = `id, user_id, deck_id, front, back, state, step, stability, difficulty,
       due, last_review, reps, lapses, scheduled_days, elapsed_days, created_at, updated_at`

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository. db is typically a *pgxpool.Pool;
// tests may pass a pgxmock pool instead.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL for queue and counter queries
// ---------------------------------------------------------------------------

const getDueCardsSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1
  AND state != 'NEW'
  AND due <= $2
  AND ($3::uuid IS NULL OR deck_id = $3)
ORDER BY due ASC
LIMIT $4`

const getNewCardsSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1
  AND state = 'NEW'
  AND ($2::uuid IS NULL OR deck_id = $2)
ORDER BY created_at ASC
LIMIT $3`

const countDueSQL = `
SELECT count(*) FROM cards
WHERE user_id = $1 AND state != 'NEW' AND due <= $2`

const countNewSQL = `
SELECT count(*) FROM cards
WHERE user_id = $1 AND state = 'NEW'`

const countByStateSQL = `
SELECT state, count(*) AS count
FROM cards
WHERE user_id = $1
GROUP BY state`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"id": cardID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card query: %w", err)
	}

	var card domain.Card
	if err := pgxscan.Get(ctx, q, &card, query, args...); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return &card, nil
}

// GetByIDForUpdate returns a card by primary key with a row lock. Call it
// inside a transaction so concurrent reviews of the same card serialize on
// the row.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"id": cardID, "user_id": userID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card for update query: %w", err)
	}

	var card domain.Card
	if err := pgxscan.Get(ctx, q, &card, query, args...); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return &card, nil
}

// GetDueCards returns non-NEW cards with due <= now, most overdue first.
// A non-nil deckID restricts the result to one deck.
func (r *Repo) GetDueCards(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var cards []*domain.Card
	if err := pgxscan.Select(ctx, q, &cards, getDueCardsSQL, userID, now, deckID, limit); err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	if cards == nil {
		cards = []*domain.Card{}
	}
	return cards, nil
}

// GetNewCards returns NEW cards in creation order.
// A non-nil deckID restricts the result to one deck.
func (r *Repo) GetNewCards(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, limit int) ([]*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var cards []*domain.Card
	if err := pgxscan.Select(ctx, q, &cards, getNewCardsSQL, userID, deckID, limit); err != nil {
		return nil, fmt.Errorf("get new cards: %w", err)
	}

	if cards == nil {
		cards = []*domain.Card{}
	}
	return cards, nil
}

// ListByDeck returns a page of cards in a deck plus the total count.
func (r *Repo) ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]*domain.Card, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countQuery, countArgs, err := builder.
		Select("count(*)").
		From("cards").
		Where(sq.Eq{"user_id": userID, "deck_id": deckID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count cards query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cards in deck: %w", err)
	}

	listQuery, listArgs, err := builder.
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"user_id": userID, "deck_id": deckID}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list cards query: %w", err)
	}

	var cards []*domain.Card
	if err := pgxscan.Select(ctx, q, &cards, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list cards in deck: %w", err)
	}

	if cards == nil {
		cards = []*domain.Card{}
	}
	return cards, total, nil
}

// CountDue returns the count of non-NEW cards with due <= now.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countDueSQL, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}
	return count, nil
}

// CountNew returns the count of NEW cards.
func (r *Repo) CountNew(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countNewSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count new cards: %w", err)
	}
	return count, nil
}

// CountByState returns card counts grouped by SRS state.
func (r *Repo) CountByState(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, countByStateSQL, userID)
	if err != nil {
		return domain.CardStatusCounts{}, fmt.Errorf("count cards by state: %w", err)
	}
	defer rows.Close()

	var counts domain.CardStatusCounts
	for rows.Next() {
		var state string
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return domain.CardStatusCounts{}, fmt.Errorf("scan state count: %w", err)
		}

		switch domain.CardState(state) {
		case domain.CardStateNew:
			counts.New = count
		case domain.CardStateLearning:
			counts.Learning = count
		case domain.CardStateReview:
			counts.Review = count
		case domain.CardStateRelearning:
			counts.Relearning = count
		}
		counts.Total += count
	}
	if err := rows.Err(); err != nil {
		return domain.CardStatusCounts{}, fmt.Errorf("iterate state counts: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new card and returns the persisted row. ID, timestamps
// and the initial due date are filled in when the caller left them zero.
// A missing deck results in domain.ErrNotFound via the FK violation.
func (r *Repo) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	if card.CreatedAt.IsZero() {
		card.CreatedAt = now
		card.UpdatedAt = now
	}
	if card.Due.IsZero() {
		card.Due = now
	}

	query, args, err := builder.
		Insert("cards").
		Columns("id", "user_id", "deck_id", "front", "back", "state", "step",
			"stability", "difficulty", "due", "last_review", "reps", "lapses",
			"scheduled_days", "elapsed_days", "created_at", "updated_at").
		Values(card.ID, card.UserID, card.DeckID, card.Front, card.Back,
			string(card.State), card.Step, card.Stability, card.Difficulty,
			card.Due, card.LastReview, card.Reps, card.Lapses,
			card.ScheduledDays, card.ElapsedDays, card.CreatedAt, card.UpdatedAt).
		Suffix("RETURNING " + cardColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create card query: %w", err)
	}

	var created domain.Card
	if err := pgxscan.Get(ctx, q, &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "card", card.ID)
	}

	return &created, nil
}

// UpdateContent updates the front/back text of a card. Nil fields keep their
// current value. Returns domain.ErrNotFound if the card does not exist or
// belongs to another user.
func (r *Repo) UpdateContent(ctx context.Context, userID, cardID uuid.UUID, params domain.CardContentUpdateParams) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := builder.
		Update("cards").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": cardID, "user_id": userID}).
		Suffix("RETURNING " + cardColumns)

	if params.Front != nil {
		update = update.Set("front", *params.Front)
	}
	if params.Back != nil {
		update = update.Set("back", *params.Back)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update card query: %w", err)
	}

	var card domain.Card
	if err := pgxscan.Get(ctx, q, &card, query, args...); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return &card, nil
}

// UpdateSRS persists the scheduling fields produced by a review.
// Returns domain.ErrNotFound if the card does not exist or belongs to
// another user.
func (r *Repo) UpdateSRS(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Update("cards").
		Set("state", string(params.State)).
		Set("step", params.Step).
		Set("stability", params.Stability).
		Set("difficulty", params.Difficulty).
		Set("due", params.Due).
		Set("last_review", params.LastReview).
		Set("reps", params.Reps).
		Set("lapses", params.Lapses).
		Set("scheduled_days", params.ScheduledDays).
		Set("elapsed_days", params.ElapsedDays).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": cardID, "user_id": userID}).
		Suffix("RETURNING " + cardColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update srs query: %w", err)
	}

	var card domain.Card
	if err := pgxscan.Get(ctx, q, &card, query, args...); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return &card, nil
}

// Delete removes a card by ID.
// Returns domain.ErrNotFound if the card does not exist or belongs to
// another user.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Delete("cards").
		Where(sq.Eq{"id": cardID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}
