package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrJamesThe3rd/settle/internal/auth"
	"github.com/MrJamesThe3rd/settle/internal/config"
	"github.com/MrJamesThe3rd/settle/internal/database"
	dirStore "github.com/MrJamesThe3rd/settle/internal/directory/store"
	"github.com/MrJamesThe3rd/settle/internal/export"
	settleHttp "github.com/MrJamesThe3rd/settle/internal/http"
	exportHandler "github.com/MrJamesThe3rd/settle/internal/http/export"
	settlementHandler "github.com/MrJamesThe3rd/settle/internal/http/settlement"
	voteHandler "github.com/MrJamesThe3rd/settle/internal/http/vote"
	"github.com/MrJamesThe3rd/settle/internal/logging"
	"github.com/MrJamesThe3rd/settle/internal/money"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
	settlementStore "github.com/MrJamesThe3rd/settle/internal/settlement/store"
	"github.com/MrJamesThe3rd/settle/internal/splitsheet"
	"github.com/MrJamesThe3rd/settle/internal/vote"
	voteStore "github.com/MrJamesThe3rd/settle/internal/vote/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	amounts, err := money.NewFormatter(cfg.App.CurrencyLocale, cfg.App.CurrencyScale)
	if err != nil {
		slog.Error("invalid currency locale", "error", err)
		os.Exit(1)
	}

	directory := dirStore.New(db)

	var (
		voteService       = vote.NewService(voteStore.New(db), directory)
		settlementService = settlement.NewService(settlementStore.New(db), directory, voteService)
	)

	var (
		settlementH = settlementHandler.NewHandler(settlementService, splitsheet.NewParser(cfg.App.CurrencyScale))
		voteH       = voteHandler.NewHandler(voteService)
		exportH     = exportHandler.NewHandler(export.NewService(settlementService, amounts, cfg.App.CurrencyScale))
	)

	router := settleHttp.New(
		settleHttp.Options{CORSOrigins: cfg.Server.CORSOrigins, MetricsEnabled: cfg.Metrics.Enabled},
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		settlementH,
		voteH,
		exportH,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           http.TimeoutHandler(router, cfg.Server.Timeout, "request timed out"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
