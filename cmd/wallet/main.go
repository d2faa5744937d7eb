package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/christianmoraless/wallet-api/internal/config"
	"github.com/christianmoraless/wallet-api/internal/db"
	"github.com/christianmoraless/wallet-api/internal/handlers"
	"github.com/christianmoraless/wallet-api/internal/notify"
	"github.com/christianmoraless/wallet-api/internal/repository"
	"github.com/christianmoraless/wallet-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting wallet api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	notifier := buildNotifier(cfg, logger)

	router := handlers.NewRouter(database, cfg, notifier, logger)

	purgerCtx, stopPurger := context.WithCancel(ctx)
	defer stopPurger()
	purger := worker.NewSessionPurger(
		repository.NewSessionRepository(database),
		cfg.Wallet.PurgeInterval,
		logger,
	)
	go purger.Run(purgerCtx)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	stopPurger()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// buildNotifier selects SMTP delivery when credentials are configured and
// falls back to log-only notifications otherwise.
func buildNotifier(cfg *config.Config, logger *slog.Logger) notify.Notifier {
	if cfg.Mail.Enabled() {
		mailer, err := notify.NewMailer(&cfg.Mail, logger)
		if err != nil {
			logger.Warn("failed to configure SMTP, falling back to log notifier", "error", err)
			return notify.NewLogNotifier(logger)
		}
		logger.Info("smtp notifier configured", "host", cfg.Mail.Host)
		return mailer
	}

	logger.Info("smtp not configured, using log notifier")
	return notify.NewLogNotifier(logger)
}
