package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/pkg/ctxutil"
)

// CreateCard creates a card inside a deck owned by the authenticated user.
// The card starts in state NEW; scheduling fields stay zero until the first
// review.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check
	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	created, err := s.cards.Create(ctx, &domain.Card{
		UserID: userID,
		DeckID: input.DeckID,
		Front:  strings.TrimSpace(input.Front),
		Back:   strings.TrimSpace(input.Back),
		State:  domain.CardStateNew,
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.String("card_id", created.ID.String()),
	)

	return created, nil
}

// UpdateCard updates a card's content for the authenticated user.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CardContentUpdateParams{}
	if input.Front != nil {
		trimmed := strings.TrimSpace(*input.Front)
		params.Front = &trimmed
	}
	if input.Back != nil {
		trimmed := strings.TrimSpace(*input.Back)
		params.Back = &trimmed
	}

	updated, err := s.cards.UpdateContent(ctx, userID, input.CardID, params)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return updated, nil
}

// DeleteCard deletes a card for the authenticated user.
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, userID, input.CardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}

// ListCards returns a page of cards in a deck with the total count.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]*domain.Card, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	// Ownership check
	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, 0, fmt.Errorf("get deck: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	cards, total, err := s.cards.ListByDeck(ctx, userID, input.DeckID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list cards: %w", err)
	}

	return cards, total, nil
}
