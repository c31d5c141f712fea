package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/pkg/ctxutil"
)

// GetDashboard returns aggregated study statistics for the user.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	now := time.Now()

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	tz := ParseTimezone(settings.Timezone)
	dayStart := DayStart(now, tz)

	dueCount, err := s.cards.CountDue(ctx, userID, now)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count due cards: %w", err)
	}

	newCount, err := s.cards.CountNew(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count new cards: %w", err)
	}

	reviewedToday, err := s.reviews.CountToday(ctx, userID, dayStart)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count reviewed today: %w", err)
	}

	newToday, err := s.reviews.CountNewToday(ctx, userID, dayStart)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count new today: %w", err)
	}

	statusCounts, err := s.cards.CountByState(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count by state: %w", err)
	}

	dashboard := domain.Dashboard{
		DueCount:      dueCount,
		NewCount:      newCount,
		ReviewedToday: reviewedToday,
		NewToday:      newToday,
		StatusCounts:  statusCounts,
	}

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("user_id", userID.String()),
		slog.Int("due_count", dueCount),
		slog.Int("new_count", newCount),
		slog.Int("reviewed_today", reviewedToday),
	)

	return dashboard, nil
}
