package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avolkovv/memobox-backend/internal/domain"
	"github.com/avolkovv/memobox-backend/internal/service/study/fsrs"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	GetByIDForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	UpdateSRS(ctx context.Context, userID, cardID uuid.UUID, params domain.SRSUpdateParams) (*domain.Card, error)
	GetDueCards(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)
	GetNewCards(ctx context.Context, userID uuid.UUID, deckID *uuid.UUID, limit int) ([]*domain.Card, error)
	CountByState(ctx context.Context, userID uuid.UUID) (domain.CardStatusCounts, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	CountNew(ctx context.Context, userID uuid.UUID) (int, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountToday(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error)
	CountNewToday(ctx context.Context, userID uuid.UUID, dayStart time.Time) (int, error)
	ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit int) ([]*domain.ReviewLog, error)
}

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	Upsert(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic.
type Service struct {
	cards       cardRepo
	reviews     reviewLogRepo
	settings    settingsRepo
	tx          txManager
	log         *slog.Logger
	srsConfig   domain.SRSConfig
	fsrsWeights [19]float64
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	reviews reviewLogRepo,
	settings settingsRepo,
	tx txManager,
	srsConfig domain.SRSConfig,
	fsrsWeights [19]float64,
) (*Service, error) {
	if err := fsrs.ValidateWeights(fsrsWeights); err != nil {
		return nil, fmt.Errorf("invalid FSRS weights: %w", err)
	}

	return &Service{
		cards:       cards,
		reviews:     reviews,
		settings:    settings,
		tx:          tx,
		log:         log.With("service", "study"),
		srsConfig:   srsConfig,
		fsrsWeights: fsrsWeights,
	}, nil
}

// loadSettings returns the user's stored settings, falling back to defaults
// when no row exists.
func (s *Service) loadSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := s.settings.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultUserSettings(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}
