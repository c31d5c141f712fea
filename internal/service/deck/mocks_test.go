package deck

import (
	"context"
	"sync"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/google/uuid"
)

// Hand-written func-field mocks for the private repo interfaces.

type deckRepoMock struct {
	CreateFunc  func(ctx context.Context, userID uuid.UUID, deck *domain.Deck) (*domain.Deck, error)
	GetByIDFunc func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	UpdateFunc  func(ctx context.Context, userID, deckID uuid.UUID, params domain.DeckUpdateParams) (*domain.Deck, error)
	DeleteFunc  func(ctx context.Context, userID, deckID uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCounts, error)
	CountFunc   func(ctx context.Context, userID uuid.UUID) (int, error)

	mu    sync.Mutex
	calls struct {
		Create  int
		GetByID int
		Update  int
		Delete  int
		List    int
		Count   int
	}
}

func (m *deckRepoMock) Create(ctx context.Context, userID uuid.UUID, deck *domain.Deck) (*domain.Deck, error) {
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, userID, deck)
}

func (m *deckRepoMock) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	m.mu.Lock()
	m.calls.GetByID++
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, userID, deckID)
}

func (m *deckRepoMock) Update(ctx context.Context, userID, deckID uuid.UUID, params domain.DeckUpdateParams) (*domain.Deck, error) {
	m.mu.Lock()
	m.calls.Update++
	m.mu.Unlock()
	return m.UpdateFunc(ctx, userID, deckID, params)
}

func (m *deckRepoMock) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete++
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, deckID)
}

func (m *deckRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.DeckWithCounts, error) {
	m.mu.Lock()
	m.calls.List++
	m.mu.Unlock()
	return m.ListFunc(ctx, userID)
}

func (m *deckRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	m.calls.Count++
	m.mu.Unlock()
	return m.CountFunc(ctx, userID)
}

func (m *deckRepoMock) Calls() struct {
	Create  int
	GetByID int
	Update  int
	Delete  int
	List    int
	Count   int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type cardRepoMock struct {
	CreateFunc        func(ctx context.Context, card *domain.Card) (*domain.Card, error)
	GetByIDFunc       func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	UpdateContentFunc func(ctx context.Context, userID, cardID uuid.UUID, params domain.CardContentUpdateParams) (*domain.Card, error)
	DeleteFunc        func(ctx context.Context, userID, cardID uuid.UUID) error
	ListByDeckFunc    func(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]*domain.Card, int, error)

	mu    sync.Mutex
	calls struct {
		Create        int
		GetByID       int
		UpdateContent int
		Delete        int
		ListByDeck    int
	}
}

func (m *cardRepoMock) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, card)
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	m.mu.Lock()
	m.calls.GetByID++
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) UpdateContent(ctx context.Context, userID, cardID uuid.UUID, params domain.CardContentUpdateParams) (*domain.Card, error) {
	m.mu.Lock()
	m.calls.UpdateContent++
	m.mu.Unlock()
	return m.UpdateContentFunc(ctx, userID, cardID, params)
}

func (m *cardRepoMock) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete++
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) ListByDeck(ctx context.Context, userID, deckID uuid.UUID, limit, offset int) ([]*domain.Card, int, error) {
	m.mu.Lock()
	m.calls.ListByDeck++
	m.mu.Unlock()
	return m.ListByDeckFunc(ctx, userID, deckID, limit, offset)
}

func (m *cardRepoMock) Calls() struct {
	Create        int
	GetByID       int
	UpdateContent int
	Delete        int
	ListByDeck    int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
