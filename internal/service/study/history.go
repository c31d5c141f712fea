package study

import (
	"context"
	"fmt"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/pkg/ctxutil"
)

const defaultHistoryLimit = 50

// GetCardHistory returns the review history of one card, newest first.
// Ownership is checked through the card lookup.
func (s *Service) GetCardHistory(ctx context.Context, input CardHistoryInput) ([]*domain.ReviewLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	if _, err := s.cards.GetByID(ctx, userID, input.CardID); err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	logs, err := s.reviews.ListByCard(ctx, userID, input.CardID, limit)
	if err != nil {
		return nil, fmt.Errorf("list card history: %w", err)
	}

	return logs, nil
}
