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

	"github.com/Vasu1712/chatter-backend/internal/api/chat"
	"github.com/Vasu1712/chatter-backend/internal/auth"
	"github.com/Vasu1712/chatter-backend/internal/config"
	"github.com/Vasu1712/chatter-backend/internal/logging"
	"github.com/Vasu1712/chatter-backend/internal/middleware"
	"github.com/Vasu1712/chatter-backend/internal/runner"
	"github.com/Vasu1712/chatter-backend/internal/storage"
	"github.com/Vasu1712/chatter-backend/internal/storage/memory"
	"github.com/Vasu1712/chatter-backend/internal/storage/postgres"
	"github.com/Vasu1712/chatter-backend/internal/storage/valkey"
	"github.com/Vasu1712/chatter-backend/internal/ws"
	"github.com/gorilla/mux"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logging.Config()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("error running server", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	store, closeStore, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("newStore: %w", err)
	}
	defer closeStore()

	gate := auth.NewGate(cfg.JWTSecret, cfg.TokenTTL)
	hub := ws.NewHub(store)
	handler := &chat.Handler{Store: store, Hub: hub, Gate: gate}

	router := mux.NewRouter()
	router.Use(middleware.Logging, middleware.CORS(cfg.CORSOrigin))
	chat.RegisterRoutes(router, handler)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	r := runner.New(ctx)

	r.Go(func(ctx context.Context) error {
		return hub.Run(ctx)
	})

	r.Go(func(ctx context.Context) error {
		slog.Info("starting server", "address", cfg.Addr, "backend", cfg.StoreBackend)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})

	r.Go(func(ctx context.Context) error {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return ctx.Err()
	})

	return r.Wait()
}

// newStore picks the message store backend from configuration.
func newStore(cfg config.Config) (storage.MessageStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		store, err := postgres.NewMessageStore(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case config.BackendValkey:
		store, err := valkey.NewMessageStore(cfg.ValkeyAddr)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return memory.NewMessageStore(), func() {}, nil
	}
}
