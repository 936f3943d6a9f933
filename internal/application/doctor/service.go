// Package doctor runs environment diagnostics.
package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	HistoryStore   ports.HistoryRepository
	SettingsStore  ports.SettingsStore
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s, model %s", cfg.ConfigFormatVersion, cfg.Generation.Model)))

	if os.Getenv(cfg.Generation.APIKeyEnv) == "" {
		checks = append(checks, warn("API key", fmt.Sprintf("%s not set, generation disabled", cfg.Generation.APIKeyEnv)))
	} else {
		checks = append(checks, ok("API key", fmt.Sprintf("%s present", cfg.Generation.APIKeyEnv)))
	}

	checks = append(checks, storageCheck(cfg.Storage.Dir))

	if s.HistoryStore != nil {
		if entries, err := s.HistoryStore.Load(); err != nil {
			checks = append(checks, warn("History store", err.Error()))
		} else {
			checks = append(checks, ok("History store", fmt.Sprintf("%s backend, %d entries", cfg.Storage.HistoryBackend, len(entries))))
		}
	}

	if s.SettingsStore != nil {
		if prefs, err := s.SettingsStore.Load(); err != nil {
			checks = append(checks, warn("Settings store", err.Error()))
		} else {
			checks = append(checks, ok("Settings store", fmt.Sprintf("theme=%s accent=%s effect=%s", prefs.Theme, prefs.Accent, prefs.Effect)))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

// storageCheck verifies the state directory exists and is writable.
func storageCheck(dir string) domain.HealthCheck {
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail("Storage dir", fmt.Sprintf("cannot create %s: %v", dir, err))
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), domain.SecureFilePermissions); err != nil {
		return fail("Storage dir", fmt.Sprintf("%s not writable: %v", dir, err))
	}
	os.Remove(probe)
	return ok("Storage dir", dir)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
