package study

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/pkg/ctxutil"
)

// DefaultQueueLimit caps the queue when the caller passes no limit.
const DefaultQueueLimit = 20

// SelectDue picks the cards eligible for review at the given time. NEW cards
// come first, then due cards ordered by due ascending; ties keep input order.
// The result holds at most limit cards (DefaultQueueLimit when limit <= 0)
// and is never padded with ineligible cards.
func SelectDue(cards []*domain.Card, now time.Time, limit int) []*domain.Card {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}

	eligible := make([]*domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.IsDue(now) {
			eligible = append(eligible, c)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		iNew := eligible[i].State == domain.CardStateNew
		jNew := eligible[j].State == domain.CardStateNew
		if iNew != jNew {
			return iNew
		}
		if iNew {
			return false // both NEW: keep input order
		}
		return eligible[i].Due.Before(eligible[j].Due)
	})

	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}

// GetStudyQueue returns cards ready for review: due cards plus new cards up to
// the daily new-card budget, ordered by SelectDue.
func (s *Service) GetStudyQueue(ctx context.Context, input GetQueueInput) ([]*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.srsConfig.QueueLimit
	}
	if limit <= 0 {
		limit = DefaultQueueLimit
	}

	now := time.Now()

	// Load user settings for limits and timezone
	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	tz := ParseTimezone(settings.Timezone)
	dayStart := DayStart(now, tz)

	// Count new cards already introduced today
	newToday, err := s.reviews.CountNewToday(ctx, userID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("count new today: %w", err)
	}

	newRemaining := max(0, settings.NewCardsPerDay-newToday)

	var newCards []*domain.Card
	if newRemaining > 0 {
		newCards, err = s.cards.GetNewCards(ctx, userID, input.DeckID, min(limit, newRemaining))
		if err != nil {
			return nil, fmt.Errorf("get new cards: %w", err)
		}
	}

	// Overdue reviews are not budgeted; they fill whatever the limit allows.
	dueCards, err := s.cards.GetDueCards(ctx, userID, input.DeckID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}

	queue := SelectDue(append(newCards, dueCards...), now, limit)

	s.log.InfoContext(ctx, "study queue generated",
		slog.String("user_id", userID.String()),
		slog.Int("due_count", len(dueCards)),
		slog.Int("new_count", len(newCards)),
		slog.Int("total", len(queue)),
	)

	return queue, nil
}
