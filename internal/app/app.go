package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/db/sqlite"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	"github.com/gokatarajesh/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (store, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	http       *http.Server
	closeStore func()
}

// backend bundles the repositories and lifecycle hooks of the selected store.
type backend struct {
	categories *repository.CategoryRepository
	questions  *repository.QuestionRepository
	pinger     server.Pinger
	close      func()
}

// New bootstraps logger, store and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Str("driver", cfg.Store.Driver).Msg("starting application bootstrap")

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	questionSvc := question.NewService(store.categories, store.questions, logger)
	quizSvc := quiz.NewService(questionSvc, quiz.NewSelector(nil), logger)

	apiServer := server.NewHTTPServer(cfg, logger, store.pinger,
		question.NewHTTPHandlers(questionSvc, logger),
		quiz.NewHTTPHandler(quizSvc, logger),
	)

	return &Application{
		cfg:        cfg,
		logger:     logger,
		http:       apiServer,
		closeStore: store.close,
	}, nil
}

func openStore(ctx context.Context, cfg *config.App, logger zerolog.Logger) (*backend, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		logger.Info().Str("path", cfg.Store.SQLitePath).Msg("sqlite store ready")
		return &backend{
			categories: repository.NewCategoryRepository(store),
			questions:  repository.NewQuestionRepository(store),
			pinger:     store,
			close: func() {
				if err := store.Close(); err != nil {
					logger.Error().Err(err).Msg("sqlite close error")
				}
			},
		}, nil

	default:
		poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("parse postgres config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Postgres.MaxConns)

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		logger.Info().
			Str("host", cfg.Postgres.Host).
			Str("database", cfg.Postgres.Database).
			Int32("max_conns", poolCfg.MaxConns).
			Msg("postgres connected")

		queries := sqlcgen.New(pool)
		return &backend{
			categories: repository.NewCategoryRepository(queries),
			questions:  repository.NewQuestionRepository(queries),
			pinger:     pool,
			close:      pool.Close,
		}, nil
	}
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		a.closeStore()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.closeStore()
	a.logger.Info().Msg("shutdown complete")
	return nil
}
