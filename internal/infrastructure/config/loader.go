// Package config loads the application configuration.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/bddgen/assets"
	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/pkg/filesystem"
	"github.com/doeshing/bddgen/internal/ports"
)

// FileLoader loads YAML configuration from ~/.bddgen/config.yaml (overridable via BDDGEN_CONFIG).
type FileLoader struct {
	overridePath string
}

var _ ports.ConfigProvider = (*FileLoader)(nil)

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. On first run the embedded default
// configuration is written to disk and returned.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("BDDGEN_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.AppDirName, domain.ConfigFileName)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = domain.DefaultModelID
	}
	if cfg.Generation.APIKeyEnv == "" {
		cfg.Generation.APIKeyEnv = domain.DefaultAPIKeyEnv
	}
	if cfg.Generation.TimeoutSeconds == 0 {
		cfg.Generation.TimeoutSeconds = int(domain.DefaultRequestTimeout.Seconds())
	}
	if cfg.Storage.HistoryBackend == "" {
		cfg.Storage.HistoryBackend = domain.HistoryBackendJSON
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = filepath.Join(filesystem.UserHomeDir(), domain.AppDirName)
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}
