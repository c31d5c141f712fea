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

// ReviewCard records a review and updates the card's SRS state using FSRS-5.
// The whole read-compute-write runs in one transaction with the card row
// locked, so overlapping reviews of the same card serialize and the second
// one schedules from the state the first one committed. The review-log
// append commits together with the card update.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var (
		updatedCard *domain.Card
		oldState    domain.CardState
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByIDForUpdate(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		oldState = card.State

		// Elapsed time since the last review, for the log row. The stored
		// elapsed_days is reset to 0 after each review; the scheduler
		// recomputes its own copy the same way.
		var elapsed float64
		if card.LastReview != nil {
			elapsed = max(0, now.Sub(*card.LastReview).Hours()/24)
		}

		result, err := fsrs.ReviewCard(s.buildParams(settings), cardToFSRS(card), mapGradeToRating(input.Grade), now)
		if err != nil {
			return fmt.Errorf("schedule review: %w", err)
		}

		updatedCard, err = s.cards.UpdateSRS(txCtx, userID, card.ID, srsParamsFromFSRS(result))
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		_, err = s.reviews.Create(txCtx, &domain.ReviewLog{
			ID:            uuid.New(),
			CardID:        card.ID,
			UserID:        userID,
			Grade:         input.Grade,
			State:         result.State,
			ElapsedDays:   elapsed,
			ScheduledDays: result.ScheduledDays,
			DurationMs:    input.DurationMs,
			ReviewedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if updatedCard == nil {
		return nil, fmt.Errorf("card update failed: no result returned")
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", updatedCard.ID.String()),
		slog.String("grade", string(input.Grade)),
		slog.String("old_state", string(oldState)),
		slog.String("new_state", string(updatedCard.State)),
		slog.Float64("stability", updatedCard.Stability),
	)

	return updatedCard, nil
}
