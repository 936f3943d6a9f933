package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for user data files (rw-------)
	SecureFilePermissions = 0o600
)

// Storage layout under the user home directory.
const (
	// AppDirName is the dot directory holding all bddgen state.
	AppDirName = ".bddgen"
	// HistoryFileName is the JSON history store file.
	HistoryFileName = "history.json"
	// SettingsFileName is the JSON preference store file.
	SettingsFileName = "settings.json"
	// ConfigFileName is the YAML application config file.
	ConfigFileName = "config.yaml"
	// SQLiteFileName is the history database when the sqlite backend is used.
	SQLiteFileName = "history.db"
)

// Generation constants
const (
	// DefaultModelID is the Gemini model used for scenario generation.
	DefaultModelID = "gemini-2.5-flash"
	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "GEMINI_API_KEY"
	// DefaultRequestTimeout bounds a single generation call.
	DefaultRequestTimeout = 120 * time.Second
	// GenerationTemperature keeps scenario output focused and reproducible.
	GenerationTemperature = 0.3
)

// Export constants
const (
	// ScenarioExportPrefix names txt and pdf export files.
	ScenarioExportPrefix = "bdd-scenarios"
	// HistoryExportPrefix names csv history export files.
	HistoryExportPrefix = "bdd-scenarios-history"
	// ExportTimestampFormat is the filename timestamp layout (YYYYMMDD-HHMMSS).
	ExportTimestampFormat = "20060102-150405"
)

// Time formats
const (
	// CreatedAtFormat is the display layout for history entry timestamps.
	CreatedAtFormat = "2006-01-02 15:04:05"
)

// Snippet limits
const (
	// HistorySnippetLength is the preview length for unlabeled history rows.
	HistorySnippetLength = 60
)
