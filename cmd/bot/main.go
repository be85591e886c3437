package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Andyyyyyy/bats-stats/internal/config"
	"github.com/Andyyyyyy/bats-stats/internal/migrations"
	"github.com/Andyyyyyy/bats-stats/internal/server"
	"github.com/Andyyyyyy/bats-stats/internal/service"
	"github.com/Andyyyyyy/bats-stats/internal/storage"
	"github.com/Andyyyyyy/bats-stats/internal/telegram"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	store := storage.New(db)

	// --- Highlight service ---
	svc := service.New(store, cfg.SeedPlayers)
	if err := svc.LoadPlayers(ctx); err != nil {
		return err
	}
	logger.Info("player registry loaded", "players", len(svc.Players()))

	// --- Telegram bot ---
	bot, err := telegram.NewBot(cfg.BotToken, cfg.AdminID, svc, logger)
	if err != nil {
		return fmt.Errorf("creating bot: %w", err)
	}

	// --- HTTP read API ---
	srv := server.New(cfg.HTTPAddr, logger, db, store, cfg.WebDir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return bot.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
