package study

import (
	"context"
	"sync"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/google/uuid"
)

// Hand-written func-field mocks for the private repo interfaces.

type cardRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	UpdateSRSFunc        func(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error)
	GetDueCardsFunc      func(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)
	GetNewCardsFunc      func(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, limit int) ([]*domain.Card, error)
	CountByStateFunc     func(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error)
	CountDueFunc         func(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	CountNewFunc         func(ctx context.Context, userID uuid.UUID) (int, error)

	mu    sync.Mutex
	calls struct {
		GetByID          int
		GetByIDForUpdate int
		UpdateSRS        int
		GetDueCards      int
		GetNewCards      int
		CountByState     int
		CountDue         int
		CountNew         int
	}
}

func (m *cardRepoMock) record(counter *int) {
	m.mu.Lock()
	*counter++
	m.mu.Unlock()
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	m.record(&m.calls.GetByID)
	return m.GetByIDFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	m.record(&m.calls.GetByIDForUpdate)
	return m.GetByIDForUpdateFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) UpdateSRS(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error) {
	m.record(&m.calls.UpdateSRS)
	return m.UpdateSRSFunc(ctx, userID, cardID, params)
}

func (m *cardRepoMock) GetDueCards(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]*domain.Card, error) {
	m.record(&m.calls.GetDueCards)
	return m.GetDueCardsFunc(ctx, userID, deckID, now, limit)
}

func (m *cardRepoMock) GetNewCards(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, limit int) ([]*domain.Card, error) {
	m.record(&m.calls.GetNewCards)
	return m.GetNewCardsFunc(ctx, userID, deckID, limit)
}

func (m *cardRepoMock) CountByState(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error) {
	m.record(&m.calls.CountByState)
	return m.CountByStateFunc(ctx, userID)
}

func (m *cardRepoMock) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	m.record(&m.calls.CountDue)
	return m.CountDueFunc(ctx, userID, now)
}

func (m *cardRepoMock) CountNew(ctx context.Context, userID uuid.UUID) (int, error) {
	m.record(&m.calls.CountNew)
	return m.CountNewFunc(ctx, userID)
}

func (m *cardRepoMock) Calls() struct {
	GetByID          int
	GetByIDForUpdate int
	UpdateSRS        int
	GetDueCards      int
	GetNewCards      int
	CountByState     int
	CountDue         int
	CountNew         int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type reviewLogRepoMock struct {
	CreateFunc        func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountTodayFunc    func(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error)
	CountNewTodayFunc func(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error)
	ListByCardFunc    func(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error)

	mu    sync.Mutex
	calls struct {
		Create        int
		CountToday    int
		CountNewToday int
		ListByCard    int
	}
}

func (m *reviewLogRepoMock) ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	m.mu.Lock()
	m.calls.ListByCard++
	m.mu.Unlock()
	return m.ListByCardFunc(ctx, userID, cardID, limit)
}

func (m *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, log)
}

func (m *reviewLogRepoMock) CountToday(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error) {
	m.mu.Lock()
	m.calls.CountToday++
	m.mu.Unlock()
	return m.CountTodayFunc(ctx, userID, dayStart)
}

func (m *reviewLogRepoMock) CountNewToday(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error) {
	m.mu.Lock()
	m.calls.CountNewToday++
	m.mu.Unlock()
	return m.CountNewTodayFunc(ctx, userID, dayStart)
}

func (m *reviewLogRepoMock) Calls() struct {
	Create        int
	CountToday    int
	CountNewToday int
	ListByCard    int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type settingsRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertFunc      func(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)

	mu    sync.Mutex
	calls struct {
		GetByUserID int
		Upsert      int
	}
}

func (m *settingsRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	m.mu.Lock()
	m.calls.GetByUserID++
	m.mu.Unlock()
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *settingsRepoMock) Upsert(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error) {
	m.mu.Lock()
	m.calls.Upsert++
	m.mu.Unlock()
	return m.UpsertFunc(ctx, settings)
}

func (m *settingsRepoMock) Calls() struct {
	GetByUserID int
	Upsert      int
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	mu    sync.Mutex
	calls struct {
		RunInTx int
	}
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls.RunInTx++
	m.mu.Unlock()
	return m.RunInTxFunc(ctx, fn)
}

func (m *txManagerMock) Calls() struct{ RunInTx int } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// defaultSettingsRepo returns a settings repo that always yields defaults.
func defaultSettingsRepo() *settingsRepoMock {
	return &settingsRepoMock{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
			return domain.DefaultUserSettings(userID), nil
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
