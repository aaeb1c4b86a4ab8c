package config

import "strings"

// Config holds runtime settings shared by cmd/cli and cmd/web.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API (no trailing slash).
//   - DatabasePath: SQLite file holding the persisted session and preferences.
//   - WebAddr: host:port the web dashboard listens on.
//   - LogLevel: minimum level written by the logger.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	WebAddr      string
	LogLevel     string
}

// LoadDefaults populates c with defaults suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "gevp.db"
	c.WebAddr = "127.0.0.1:8080"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
}
