package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/icco/gamelog/handlers"
	"github.com/icco/gamelog/lib/config"
	"github.com/icco/gamelog/lib/health"
	"github.com/icco/gamelog/lib/library"
	"github.com/icco/gamelog/lib/pitch"
	"github.com/icco/gamelog/lib/recommend"
	"github.com/icco/gamelog/lib/store"
	"github.com/icco/gamelog/lib/validation"
	"github.com/icco/gamelog/models"
)

type App struct {
	store   *store.Store
	pool    []models.Game
	pitcher handlers.Pitcher
	router  *chi.Mux
	logger  *slog.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	seed := library.Seed()
	pool := recommend.DefaultPool()
	if err := validation.ValidateLibrary(slices.Concat(seed, pool)); err != nil {
		return nil, fmt.Errorf("invalid starting data: %w", err)
	}

	st, err := store.Open(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("failed to seed library: %w", err)
	}

	app := &App{
		store:  st,
		pool:   pool,
		router: chi.NewRouter(),
		logger: logger,
	}

	if cfg.PitchesEnabled() {
		p, err := pitch.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create pitcher: %w", err)
		}
		app.pitcher = p
		logger.Info("Recommendation pitches enabled", slog.String("model", cfg.OpenAIModel))
	}

	app.setupRoutes()
	return app, nil
}

func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/healthz", health.Check(a.store.DB()))
	a.router.Get("/dashboard", handlers.HandleDashboard(a.store))
	a.router.Get("/stats", handlers.HandleStats(a.store))

	a.router.Route("/games", func(r chi.Router) {
		r.Get("/", handlers.HandleGames(a.store))
		r.Get("/{id}", handlers.HandleGame(a.store))
		r.Put("/{id}/status", handlers.HandleSetStatus(a.store))
	})

	a.router.Route("/recommendations", func(r chi.Router) {
		r.Get("/", handlers.HandleRecommendations(a.store, a.pool, a.pitcher))
		r.Post("/{id}/wishlist", handlers.HandleWishlistRecommendation(a.store, a.pool))
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := app.store.Close(); err != nil {
			logger.Error("Failed to close store", slog.Any("error", err))
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down server", slog.Any("error", err))
		}
	}()

	logger.Info("Starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
