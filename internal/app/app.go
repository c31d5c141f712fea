package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avolkovv/memobox-backend/internal/adapter/postgres"
	cardrepo "github.com/avolkovv/memobox-backend/internal/adapter/postgres/card"
	deckrepo "github.com/avolkovv/memobox-backend/internal/adapter/postgres/deck"
	reviewlogrepo "github.com/avolkovv/memobox-backend/internal/adapter/postgres/reviewlog"
	settingsrepo "github.com/avolkovv/memobox-backend/internal/adapter/postgres/settings"
	"github.com/avolkovv/memobox-backend/internal/auth"
	"github.com/avolkovv/memobox-backend/internal/config"
	"github.com/avolkovv/memobox-backend/internal/domain"
	decksvc "github.com/avolkovv/memobox-backend/internal/service/deck"
	"github.com/avolkovv/memobox-backend/internal/service/study"
	"github.com/avolkovv/memobox-backend/internal/service/study/fsrs"
	"github.com/avolkovv/memobox-backend/internal/transport/middleware"
	"github.com/avolkovv/memobox-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and runs the HTTP server until
// the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	cards := cardrepo.New(pool)
	decks := deckrepo.New(pool)
	reviewLogs := reviewlogrepo.New(pool)
	settings := settingsrepo.New(pool)

	studyService, err := study.NewService(
		logger,
		cards,
		reviewLogs,
		settings,
		txManager,
		domain.SRSConfig{
			DesiredRetention: cfg.SRS.DesiredRetention,
			MaxIntervalDays:  cfg.SRS.MaxIntervalDays,
			EnableFuzz:       *cfg.SRS.EnableFuzz,
			LearningSteps:    cfg.SRS.LearningSteps,
			RelearningSteps:  cfg.SRS.RelearningSteps,
			NewCardsPerDay:   cfg.SRS.NewCardsPerDay,
			QueueLimit:       cfg.SRS.QueueLimit,
		},
		schedulerWeights(cfg.SRS),
	)
	if err != nil {
		return fmt.Errorf("create study service: %w", err)
	}

	deckService := decksvc.NewService(logger, decks, cards)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	router := rest.NewRouter(rest.RouterDeps{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Decks:  rest.NewDeckHandler(deckService, logger),
		Study:  rest.NewStudyHandler(studyService, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// schedulerWeights returns the configured FSRS weights, falling back to the
// built-in defaults when none are set.
func schedulerWeights(cfg config.SRSConfig) [19]float64 {
	if len(cfg.Weights) != len(fsrs.DefaultWeights) {
		return fsrs.DefaultWeights
	}
	var w [19]float64
	copy(w[:], cfg.Weights)
	return w
}
