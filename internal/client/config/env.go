package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with values from environment variables. Empty
// variables are ignored. cmd/cli loads an optional .env file before this
// runs, so a local .env can pin the endpoints without flags.
func parseEnv(cfg *Config) {
	setIfPresent := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent("AUTH_URL", &cfg.AuthEndpoint)
	setIfPresent("FILES_URL", &cfg.FilesEndpoint)
	setIfPresent("PROFILE_URL", &cfg.ProfileEndpoint)
	setIfPresent("USER_DATA_URL", &cfg.UserDataEndpoint)
	setIfPresent("CONTACT_URL", &cfg.ContactEndpoint)
	setIfPresent("DATA_DIR", &cfg.DataDir)

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
