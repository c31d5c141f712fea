package deck

import (
	"context"
	"log/slog"
	"strings"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/google/uuid"
)

type deckRepo interface {
	Create(ctx context.Context, userID uuid.UUID, deck *domain.Deck) (*domain.Deck, error)
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	Update(ctx context.Context, userID, deckID uuid.UUID, params domain.DeckUpdateParams) (*domain.Deck, error)
	Delete(ctx context.Context, userID, deckID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCounts, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type cardRepo interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	UpdateContent(ctx context.Context, userID, cardID uuid.UUID, params domain.CardContentUpdateParams) (*domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]*domain.Card, int, error)
}

const (
	MaxDecksPerUser = 100
)

// Service provides deck and card content management.
type Service struct {
	decks deckRepo
	cards cardRepo
	log   *slog.Logger
}

// NewService creates a new Deck service.
func NewService(log *slog.Logger, decks deckRepo, cards cardRepo) *Service {
	return &Service{
		decks: decks,
		cards: cards,
		log:   log.With("service", "deck"),
	}
}

// trimOrEmpty trims whitespace, mapping nil to the empty string.
func trimOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// ptr returns a pointer to the given string.
func ptr(s string) *string {
	return &s
}
