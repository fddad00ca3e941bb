// Package config assembles runtime settings from defaults, an optional JSON
// file and command-line flags, in that order of precedence.
package config

// Config holds runtime settings for the weighttrack CLI.
type Config struct {
	// DatabasePath is the path of the SQLite database file.
	DatabasePath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "weighttrack.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
