// Package settings implements the user study-settings repository.
package settings

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

const settingsColumns = `user_id, desired_retention, max_interval_days, new_cards_per_day, timezone, updated_at`

// Repo provides user settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByUserID returns the settings row for a user.
// Returns domain.ErrNotFound when the user has never saved settings;
// callers fall back to domain.DefaultUserSettings.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select(settingsColumns).
		From("user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get settings query: %w", err)
	}

	var settings domain.UserSettings
	if err := pgxscan.Get(ctx, q, &settings, query, args...); err != nil {
		return nil, postgres.MapError(err, "user settings", userID)
	}

	return &settings, nil
}

// Upsert inserts or replaces the settings row for a user.
func (r *Repo) Upsert(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := builder.
		Insert("user_settings").
		Columns("user_id", "desired_retention", "max_interval_days", "new_cards_per_day", "timezone", "updated_at").
		Values(settings.UserID, settings.DesiredRetention, settings.MaxIntervalDays, settings.NewCardsPerDay, settings.Timezone, now).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
		          desired_retention = EXCLUDED.desired_retention,
		          max_interval_days = EXCLUDED.max_interval_days,
		          new_cards_per_day = EXCLUDED.new_cards_per_day,
		          timezone = EXCLUDED.timezone,
		          updated_at = EXCLUDED.updated_at
		        RETURNING ` + settingsColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert settings query: %w", err)
	}

	var saved domain.UserSettings
	if err := pgxscan.Get(ctx, q, &saved, query, args...); err != nil {
		return nil, postgres.MapError(err, "user settings", settings.UserID)
	}

	return &saved, nil
}
