package config

import "os"

const (
	EnvAPIURL    = "RESEARCHHUB_API_URL"
	EnvSessionDB = "RESEARCHHUB_SESSION_DB"
	EnvLogLevel  = "RESEARCHHUB_LOG_LEVEL"
)

// parseEnv overlays Config with non-empty environment variables.
func parseEnv(cfg *Config) {
	overlay(&cfg.APIURL, os.Getenv(EnvAPIURL))
	overlay(&cfg.SessionDB, os.Getenv(EnvSessionDB))
	overlay(&cfg.LogLevel, os.Getenv(EnvLogLevel))
}
