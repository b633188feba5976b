package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	changerepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/change"
	projectrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/project"
	sharedrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/shared"
	tagrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/tag"
	taskrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/task"
	tokenrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/token"
	userrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/user"
	"github.com/mpetrenko/tasktrail/internal/auth"
	"github.com/mpetrenko/tasktrail/internal/config"
	authsvc "github.com/mpetrenko/tasktrail/internal/service/auth"
	changesvc "github.com/mpetrenko/tasktrail/internal/service/change"
	projectsvc "github.com/mpetrenko/tasktrail/internal/service/project"
	sharingsvc "github.com/mpetrenko/tasktrail/internal/service/sharing"
	tagsvc "github.com/mpetrenko/tasktrail/internal/service/tag"
	tasksvc "github.com/mpetrenko/tasktrail/internal/service/task"
	"github.com/mpetrenko/tasktrail/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until the context is cancelled or SIGINT/SIGTERM arrives.
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

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	projects := projectrepo.New(pool)
	tags := tagrepo.New(pool)
	tasks := taskrepo.New(pool)
	changes := changerepo.New(pool)
	shares := sharedrepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)

	handlers := rest.Handlers{
		Auth:     rest.NewAuthHandler(authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth), logger),
		Projects: rest.NewProjectHandler(projectsvc.NewService(logger, projects, changes, txm), logger),
		Tags:     rest.NewTagHandler(tagsvc.NewService(logger, tags, changes, txm), logger),
		Tasks:    rest.NewTaskHandler(tasksvc.NewService(logger, tasks, projects, tags, changes, txm), logger),
		Shared:   rest.NewSharedHandler(sharingsvc.NewService(logger, shares, tasks, projects, tags, users, changes, txm), logger),
		Changes:  rest.NewChangeHandler(changesvc.NewService(logger, changes, projects, tasks, tags, shares), logger),
		Health:   rest.NewHealthHandler(pool),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, jwtManager, cfg.CORS, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
