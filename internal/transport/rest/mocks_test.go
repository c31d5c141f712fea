package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/deck"
	"github.com/avolkovv/memobox-backend/internal/service/study"
)

type studyServiceMock struct {
	GetStudyQueueFunc      func(ctx context.Context, input study.GetQueueInput) ([]*domain.Card, error)
	GetSchedulePreviewFunc func(ctx context.Context, input study.PreviewInput) (study.SchedulePreview, error)
	ReviewCardFunc         func(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error)
	GetCardHistoryFunc     func(ctx context.Context, input study.CardHistoryInput) ([]*domain.ReviewLog, error)
	GetDashboardFunc       func(ctx context.Context) (domain.Dashboard, error)
	GetSettingsFunc        func(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettingsFunc     func(ctx context.Context, input study.UpdateSettingsInput) (*domain.UserSettings, error)
}

func (m *studyServiceMock) GetStudyQueue(ctx context.Context, input study.GetQueueInput) ([]*domain.Card, error) {
	return m.GetStudyQueueFunc(ctx, input)
}

func (m *studyServiceMock) GetSchedulePreview(ctx context.Context, input study.PreviewInput) (study.SchedulePreview, error) {
	return m.GetSchedulePreviewFunc(ctx, input)
}

func (m *studyServiceMock) ReviewCard(ctx context.Context, input study.ReviewCardInput) (*domain.Card, error) {
	return m.ReviewCardFunc(ctx, input)
}

func (m *studyServiceMock) GetCardHistory(ctx context.Context, input study.CardHistoryInput) ([]*domain.ReviewLog, error) {
	return m.GetCardHistoryFunc(ctx, input)
}

func (m *studyServiceMock) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	return m.GetDashboardFunc(ctx)
}

func (m *studyServiceMock) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	return m.GetSettingsFunc(ctx)
}

func (m *studyServiceMock) UpdateSettings(ctx context.Context, input study.UpdateSettingsInput) (*domain.UserSettings, error) {
	return m.UpdateSettingsFunc(ctx, input)
}

type deckServiceMock struct {
	CreateDeckFunc func(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	GetDeckFunc    func(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
	ListDecksFunc  func(ctx context.Context) ([]*domain.DeckWithCounts, error)
	UpdateDeckFunc func(ctx context.Context, input deck.UpdateDeckInput) (*domain.Deck, error)
	DeleteDeckFunc func(ctx context.Context, input deck.DeleteDeckInput) error
	CreateCardFunc func(ctx context.Context, input deck.CreateCardInput) (*domain.Card, error)
	UpdateCardFunc func(ctx context.Context, input deck.UpdateCardInput) (*domain.Card, error)
	DeleteCardFunc func(ctx context.Context, input deck.DeleteCardInput) error
	ListCardsFunc  func(ctx context.Context, input deck.ListCardsInput) ([]*domain.Card, int, error)
}

func (m *deckServiceMock) CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error) {
	return m.CreateDeckFunc(ctx, input)
}

func (m *deckServiceMock) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	return m.GetDeckFunc(ctx, deckID)
}

func (m *deckServiceMock) ListDecks(ctx context.Context) ([]*domain.DeckWithCounts, error) {
	return m.ListDecksFunc(ctx)
}

func (m *deckServiceMock) UpdateDeck(ctx context.Context, input deck.UpdateDeckInput) (*domain.Deck, error) {
	return m.UpdateDeckFunc(ctx, input)
}

func (m *deckServiceMock) DeleteDeck(ctx context.Context, input deck.DeleteDeckInput) error {
	return m.DeleteDeckFunc(ctx, input)
}

func (m *deckServiceMock) CreateCard(ctx context.Context, input deck.CreateCardInput) (*domain.Card, error) {
	return m.CreateCardFunc(ctx, input)
}

func (m *deckServiceMock) UpdateCard(ctx context.Context, input deck.UpdateCardInput) (*domain.Card, error) {
	return m.UpdateCardFunc(ctx, input)
}

func (m *deckServiceMock) DeleteCard(ctx context.Context, input deck.DeleteCardInput) error {
	return m.DeleteCardFunc(ctx, input)
}

func (m *deckServiceMock) ListCards(ctx context.Context, input deck.ListCardsInput) ([]*domain.Card, int, error) {
	return m.ListCardsFunc(ctx, input)
}
