package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/pkg/ctxutil"
	"github.com/google/uuid"
)

// CreateDeck creates a new deck for the authenticated user.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.decks.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count decks: %w", err)
	}
	if count >= MaxDecksPerUser {
		return nil, domain.NewValidationError("decks", "limit reached (max 100)")
	}

	created, err := s.decks.Create(ctx, userID, &domain.Deck{
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrEmpty(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// GetDeck returns a single deck by ID for the authenticated user.
func (s *Service) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if deckID == uuid.Nil {
		return nil, domain.NewValidationError("deck_id", "required")
	}

	deck, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	return deck, nil
}

// ListDecks returns all decks of the authenticated user with card counts.
func (s *Service) ListDecks(ctx context.Context) ([]*domain.DeckWithCounts, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	decks, err := s.decks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	return decks, nil
}

// UpdateDeck updates an existing deck for the authenticated user.
func (s *Service) UpdateDeck(ctx context.Context, input UpdateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.DeckUpdateParams{}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed
	}

	updated, err := s.decks.Update(ctx, userID, input.DeckID, params)
	if err != nil {
		return nil, fmt.Errorf("update deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck updated",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
	)

	return updated, nil
}

// DeleteDeck deletes a deck and all its cards for the authenticated user.
// Card and review-log rows go with the deck via FK cascade.
func (s *Service) DeleteDeck(ctx context.Context, input DeleteDeckInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	deck, err := s.decks.GetByID(ctx, userID, input.DeckID)
	if err != nil {
		return fmt.Errorf("get deck: %w", err)
	}

	if err := s.decks.Delete(ctx, userID, input.DeckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.String("name", deck.Name),
	)

	return nil
}
