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

	"golang.org/x/sync/errgroup"

	"github.com/PabloGalante/life-guide/internal/adapters/assets"
	httpadapter "github.com/PabloGalante/life-guide/internal/adapters/http"
	"github.com/PabloGalante/life-guide/internal/adapters/llm"
	"github.com/PabloGalante/life-guide/internal/adapters/notify"
	"github.com/PabloGalante/life-guide/internal/adapters/storage/memory"
	"github.com/PabloGalante/life-guide/internal/app/guidance"
	"github.com/PabloGalante/life-guide/internal/config"
	"github.com/PabloGalante/life-guide/internal/domain"
	"github.com/PabloGalante/life-guide/internal/observability"
)

func serve(ctx context.Context, cfg *config.Config) error {
	observability.Init(os.Stdout, cfg.App.LogLevel)
	log := observability.Logger()

	log.Info("configuration loaded",
		"mode", cfg.App.Mode,
		"http_address", cfg.App.HTTP.Address(),
		"llm_provider", cfg.LLM.Provider,
		"assets_dir", cfg.Assets.RootDir,
		"session_ttl", cfg.Session.IdleTTL,
	)

	provider, err := newProvider(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("init guidance provider: %w", err)
	}

	files, err := assets.NewFileFetcher(cfg.Assets.RootDir, cfg.Assets.MaxBytes)
	if err != nil {
		return fmt.Errorf("init background dir: %w", err)
	}
	defer files.Close()

	themes := assets.NewRouter(assets.NewHTTPFetcher(cfg.Assets.HTTPTimeout, cfg.Assets.MaxBytes), files)

	bus := notify.NewBus()
	defer bus.Close()

	sessions := memory.NewSessionStore(
		cfg.Session.IdleTTL,
		cfg.Session.CleanupInterval,
		memory.WithRemindersEnabled(cfg.Reminders.Enabled),
	)

	svc := guidance.NewService(provider, themes, files, bus)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           httpadapter.NewServer(svc, sessions, bus),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			log.Info("received shutdown signal", "signal", sig.String())
		case <-gCtx.Done():
			log.Info("context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}

func newProvider(ctx context.Context, cfg config.LLMConfig) (domain.GuidanceProvider, error) {
	log := observability.Logger()

	switch cfg.Provider {
	case config.ProviderGemini, config.ProviderVertex:
		log.Info("using Gemini guidance provider", "backend", cfg.Provider, "model", cfg.Model)
		return llm.NewGeminiProvider(ctx, llm.GeminiOptions{
			Vertex:      cfg.Provider == config.ProviderVertex,
			APIKey:      cfg.APIKey,
			Project:     cfg.Project,
			Location:    cfg.Location,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		})
	default:
		log.Info("using mock guidance provider")
		return llm.NewMockProvider(), nil
	}
}
