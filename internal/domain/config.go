package domain

// Config mirrors ~/.bddgen/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Generation          GenerationSettings `yaml:"generation"`
	Storage             StorageSettings    `yaml:"storage"`
}

// GenerationSettings configures the model call.
type GenerationSettings struct {
	Model          string `yaml:"model"`
	APIKeyEnv      string `yaml:"api_key_env"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// StorageSettings selects and locates the persistence backends.
type StorageSettings struct {
	// HistoryBackend is "json" or "sqlite".
	HistoryBackend string `yaml:"history_backend"`
	// Dir overrides the default ~/.bddgen state directory when set.
	Dir string `yaml:"dir"`
}

// History backend names accepted by StorageSettings.HistoryBackend.
const (
	HistoryBackendJSON   = "json"
	HistoryBackendSQLite = "sqlite"
)
