// Package deck implements the deck repository using PostgreSQL.
package deck

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

const deckColumns = `id, user_id, name, description, created_at, updated_at`

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Deck list with per-deck card counters, computed in one pass over cards.
const listWithCountsSQL = `
SELECT d.id, d.user_id, d.name, d.description, d.created_at, d.updated_at,
       count(c.id) AS card_count,
       count(c.id) FILTER (WHERE c.state != 'NEW' AND c.due <= now()) AS due_count,
       count(c.id) FILTER (WHERE c.state = 'NEW') AS new_count
FROM decks d
LEFT JOIN cards c ON c.deck_id = d.id
WHERE d.user_id = $1
GROUP BY d.id
ORDER BY d.created_at ASC`

// Create inserts a new deck and returns the persisted row.
// A duplicate name for the same user results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, deck *domain.Deck) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := builder.
		Insert("decks").
		Columns("id", "user_id", "name", "description", "created_at", "updated_at").
		Values(id, userID, deck.Name, deck.Description, now, now).
		Suffix("RETURNING " + deckColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create deck query: %w", err)
	}

	var created domain.Deck
	if err := pgxscan.Get(ctx, q, &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}

	return &created, nil
}

// GetByID returns a deck by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select(deckColumns).
		From("decks").
		Where(sq.Eq{"id": deckID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get deck query: %w", err)
	}

	var deck domain.Deck
	if err := pgxscan.Get(ctx, q, &deck, query, args...); err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}

	return &deck, nil
}

// Update changes deck fields. Nil params keep their current value.
// Returns domain.ErrNotFound if the deck does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, deckID uuid.UUID, params domain.DeckUpdateParams) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := builder.
		Update("decks").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": deckID, "user_id": userID}).
		Suffix("RETURNING " + deckColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update deck query: %w", err)
	}

	var deck domain.Deck
	if err := pgxscan.Get(ctx, q, &deck, query, args...); err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}

	return &deck, nil
}

// Delete removes a deck by ID. Cards and review logs go with it via FK
// cascade. Returns domain.ErrNotFound if the deck does not exist or belongs
// to another user.
func (r *Repo) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Delete("decks").
		Where(sq.Eq{"id": deckID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete deck query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	return nil
}

// List returns all decks of a user with card/due/new counters, oldest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var decks []*domain.DeckWithCounts
	if err := pgxscan.Select(ctx, q, &decks, listWithCountsSQL, userID); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	if decks == nil {
		decks = []*domain.DeckWithCounts{}
	}
	return decks, nil
}

// Count returns the number of decks owned by a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select("count(*)").
		From("decks").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count decks query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count decks: %w", err)
	}
	return count, nil
}
