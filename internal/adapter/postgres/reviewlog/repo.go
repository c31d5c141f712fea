// Package reviewlog implements the append-only review history repository.
package reviewlog

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

const logColumns = `id, card_id, user_id, grade, state, elapsed_days, scheduled_days, duration_ms, reviewed_at`

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const countTodaySQL = `
SELECT count(*) FROM review_logs
WHERE user_id = $1 AND reviewed_at >= $2`

// Counts cards whose first-ever review happened today. Repeated learning-step
// reviews of the same card within the day count once.
const countNewTodaySQL = `
SELECT count(DISTINCT l.card_id)
FROM review_logs l
WHERE l.user_id = $1
  AND l.reviewed_at >= $2
  AND NOT EXISTS (
    SELECT 1 FROM review_logs p
    WHERE p.card_id = l.card_id AND p.reviewed_at < $2
  )`

// Create inserts a review log row and returns the persisted row.
// A missing card results in domain.ErrNotFound via the FK violation.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Insert("review_logs").
		Columns("id", "card_id", "user_id", "grade", "state", "elapsed_days",
			"scheduled_days", "duration_ms", "reviewed_at").
		Values(log.ID, log.CardID, log.UserID, string(log.Grade), string(log.State),
			log.ElapsedDays, log.ScheduledDays, log.DurationMs, log.ReviewedAt).
		Suffix("RETURNING " + logColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create review log query: %w", err)
	}

	var created domain.ReviewLog
	if err := pgxscan.Get(ctx, q, &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "review log", log.ID)
	}

	return &created, nil
}

// CountToday returns the number of review events since dayStart.
func (r *Repo) CountToday(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countTodaySQL, userID, dayStart).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews today: %w", err)
	}
	return count, nil
}

// CountNewToday returns the number of distinct cards first reviewed since
// dayStart. Used to enforce the daily new-card budget.
func (r *Repo) CountNewToday(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countNewTodaySQL, userID, dayStart).Scan(&count); err != nil {
		return 0, fmt.Errorf("count new cards today: %w", err)
	}
	return count, nil
}

// ListByCard returns the review history of a card, newest first.
func (r *Repo) ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select(logColumns).
		From("review_logs").
		Where(sq.Eq{"user_id": userID, "card_id": cardID}).
		OrderBy("reviewed_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list review logs query: %w", err)
	}

	var logs []*domain.ReviewLog
	if err := pgxscan.Select(ctx, q, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("list review logs: %w", err)
	}

	if logs == nil {
		logs = []*domain.ReviewLog{}
	}
	return logs, nil
}
