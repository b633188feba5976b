// Command cleanup-tokens deletes refresh tokens past their expiry. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mpetrenko/tasktrail/internal/adapter/postgres"
	tokenrepo "github.com/mpetrenko/tasktrail/internal/adapter/postgres/token"
	"github.com/mpetrenko/tasktrail/internal/app"
	"github.com/mpetrenko/tasktrail/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tokens := tokenrepo.New(pool)

	deleted, err := tokens.DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed", slog.Int64("deleted", deleted))
}
