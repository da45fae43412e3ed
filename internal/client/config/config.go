// Package config handles configuration for the homeboard CLI, including
// defaults, environment variables, a JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the homeboard CLI.
//
// Endpoint fields are the base URLs of the five backend functions. DataDir
// is where the local sqlite store lives. RequestTimeout bounds every
// gateway call except uploads, which take their deadline from the caller.
type Config struct {
	AuthEndpoint     string
	FilesEndpoint    string
	ProfileEndpoint  string
	UserDataEndpoint string
	ContactEndpoint  string
	DataDir          string
	RequestTimeout   time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.AuthEndpoint = "http://127.0.0.1:8080/auth"
	c.FilesEndpoint = "http://127.0.0.1:8080/files"
	c.ProfileEndpoint = "http://127.0.0.1:8080/profile"
	c.UserDataEndpoint = "http://127.0.0.1:8080/user-data"
	c.ContactEndpoint = "http://127.0.0.1:8080/contact"
	c.DataDir = "data"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
