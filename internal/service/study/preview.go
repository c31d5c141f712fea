package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/study/fsrs"
	"github.com/avolkovv/memobox-backend/pkg/ctxutil"
	"github.com/google/uuid"
)

// PreviewBranch is one candidate outcome shown to the learner before answering.
// Interval is the display projection of ScheduledDays; the stored value stays
// unrounded.
type PreviewBranch struct {
	Grade         domain.ReviewGrade
	State         domain.CardState
	Due           time.Time
	ScheduledDays float64
	Interval      string
}

// SchedulePreview holds the four candidate outcomes for a card.
type SchedulePreview struct {
	CardID uuid.UUID
	Again  PreviewBranch
	Hard   PreviewBranch
	Good   PreviewBranch
	Easy   PreviewBranch
}

// GetSchedulePreview computes the four candidate next states for a card
// without committing anything. Committing a review later selects one of these
// exact values.
func (s *Service) GetSchedulePreview(ctx context.Context, input PreviewInput) (SchedulePreview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return SchedulePreview{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return SchedulePreview{}, err
	}

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return SchedulePreview{}, fmt.Errorf("get card: %w", err)
	}

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return SchedulePreview{}, err
	}

	now := time.Now()
	previews := fsrs.Preview(s.buildParams(settings), cardToFSRS(card), now)

	result := SchedulePreview{
		CardID: card.ID,
		Again:  toBranch(domain.ReviewGradeAgain, previews.Again),
		Hard:   toBranch(domain.ReviewGradeHard, previews.Hard),
		Good:   toBranch(domain.ReviewGradeGood, previews.Good),
		Easy:   toBranch(domain.ReviewGradeEasy, previews.Easy),
	}

	s.log.InfoContext(ctx, "schedule preview computed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("state", string(card.State)),
	)

	return result, nil
}

func toBranch(grade domain.ReviewGrade, c fsrs.Card) PreviewBranch {
	return PreviewBranch{
		Grade:         grade,
		State:         c.State,
		Due:           c.Due,
		ScheduledDays: c.ScheduledDays,
		Interval:      fsrs.FormatInterval(c.ScheduledDays),
	}
}
