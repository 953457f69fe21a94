package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gauravsoni97/preservespecialmoments/internal/config"
	"github.com/gauravsoni97/preservespecialmoments/internal/events"
	"github.com/gauravsoni97/preservespecialmoments/internal/handoff"
	h "github.com/gauravsoni97/preservespecialmoments/internal/http"
	"github.com/gauravsoni97/preservespecialmoments/internal/pricing"
	"github.com/gauravsoni97/preservespecialmoments/internal/repository"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx := cmd.Context()

	repo, err := repository.NewRepository(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := repo.RunMigrations(); err != nil {
		return err
	}
	cat, err := repository.LoadCatalog(ctx, repo)
	if err != nil {
		return err
	}
	log.Info("catalog loaded", zap.Int("products", len(cat.Products())), zap.String("db_path", cfg.DBPath))

	store, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	publisher := newPublisher(cfg, log)
	defer publisher.Close()

	messenger, err := handoff.NewMessenger(cfg.Messaging.Domain, cfg.Messaging.Recipient)
	if err != nil {
		return err
	}
	display, err := pricing.NewDisplay(cfg.Display.Multiplier, cfg.Display.Symbol)
	if err != nil {
		return err
	}

	handler, err := h.NewHandler(h.Options{
		Catalog:   cat,
		Sessions:  session.NewService(store, log),
		Events:    publisher,
		Messenger: messenger,
		Payee: handoff.Payee{
			Address:  cfg.Payment.Address,
			Name:     cfg.Payment.Name,
			Currency: cfg.Payment.Currency,
		},
		Display: display,
		Policy: session.Policy{
			ResetZoomOnClose:     cfg.Gallery.ResetZoomOnClose,
			ResetWishlistOnClose: cfg.Gallery.ResetWishlistOnClose,
			DoubleTapWindow:      cfg.Gallery.DoubleTapWindow,
		},
		QRSize:  cfg.Payment.QRSize,
		Timeout: cfg.RequestTimeout,
		Log:     log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      h.NewRouter(handler, cfg.RequestTimeout, cfg.MaxRequestBodySize),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("storefront starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}

func newSessionStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (session.Store, error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		log.Info("using in-memory session store", zap.Duration("ttl", cfg.SessionTTL))
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	log.Info("redis ping succeeded", zap.String("addr", cfg.RedisAddr))
	return session.NewRedisStore(redisClient, cfg.SessionTTL), nil
}

func newPublisher(cfg *config.Config, log *zap.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NewLogPublisher(log)
	}
	log.Info("publishing events to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	return events.NewKafkaPublisher(cfg.KafkaTopic, log, cfg.KafkaBrokers...)
}
