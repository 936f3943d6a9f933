// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/infrastructure/config"
	"github.com/doeshing/bddgen/internal/infrastructure/effects"
	"github.com/doeshing/bddgen/internal/infrastructure/generator"
	"github.com/doeshing/bddgen/internal/infrastructure/history"
	"github.com/doeshing/bddgen/internal/infrastructure/normalizer"
	"github.com/doeshing/bddgen/internal/infrastructure/settings"
	"github.com/doeshing/bddgen/internal/pkg/logger"
	"github.com/doeshing/bddgen/internal/ports"
	"github.com/doeshing/bddgen/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Session       *services.SessionService
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	HistoryStore  ports.HistoryRepository
	SettingsStore ports.SettingsStore
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	historyStore := buildHistoryStore(cfg, log)
	settingsStore := settings.NewFileStore(filepath.Join(cfg.Storage.Dir, domain.SettingsFileName))
	norm := normalizer.New(normalizer.NewDocxExtractor(), log)
	effectFactory := effects.NewFactory(os.Stderr)

	gen, err := buildGenerator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	session := services.NewSessionService(gen, norm, historyStore, settingsStore, effectFactory, log)

	return &Container{
		Session:       session,
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		HistoryStore:  historyStore,
		SettingsStore: settingsStore,
		Logger:        log,
	}, nil
}

// buildHistoryStore selects the configured backend, falling back to the JSON
// store when the sqlite database cannot be opened.
func buildHistoryStore(cfg domain.Config, log ports.Logger) ports.HistoryRepository {
	if cfg.Storage.HistoryBackend == domain.HistoryBackendSQLite {
		store, err := history.NewSQLiteStore(filepath.Join(cfg.Storage.Dir, domain.SQLiteFileName))
		if err == nil {
			return store
		}
		log.Warn("sqlite history unavailable, falling back to json", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return history.NewFileStore(filepath.Join(cfg.Storage.Dir, domain.HistoryFileName))
}

// buildGenerator creates the Gemini generator when an API key is present.
// Without a key, history and export commands still work; only generation
// fails, with a hint naming the environment variable to set.
func buildGenerator(ctx context.Context, cfg domain.Config, log ports.Logger) (ports.Generator, error) {
	apiKey := os.Getenv(cfg.Generation.APIKeyEnv)
	if apiKey == "" {
		return generator.Unconfigured(cfg.Generation.APIKeyEnv), nil
	}
	timeout := domain.DefaultRequestTimeout
	if cfg.Generation.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Generation.TimeoutSeconds) * time.Second
	}
	return generator.NewGeminiGenerator(ctx, apiKey, cfg.Generation.Model, timeout, log)
}
