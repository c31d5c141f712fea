package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/pkg/ctxutil"
)

// GetSettings returns the user's study settings, synthesizing defaults when
// no row exists yet.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.loadSettings(ctx, userID)
}

// UpdateSettings stores the user's study settings.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tz := input.Timezone
	if tz == "" {
		tz = "UTC"
	}

	settings, err := s.settings.Upsert(ctx, &domain.UserSettings{
		UserID:           userID,
		DesiredRetention: input.DesiredRetention,
		MaxIntervalDays:  input.MaxIntervalDays,
		NewCardsPerDay:   input.NewCardsPerDay,
		Timezone:         tz,
		UpdatedAt:        time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
		slog.Float64("desired_retention", settings.DesiredRetention),
		slog.Int("new_cards_per_day", settings.NewCardsPerDay),
	)

	return settings, nil
}
