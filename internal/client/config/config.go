// Package config loads runtime settings for the task vault CLI.
package config

// Config holds runtime settings for the CLI.
//
// Fields:
//   - DatabasePath: path of the local sqlite file holding the key-value store.
//   - InMemory: run against a non-durable in-memory store instead.
type Config struct {
	DatabasePath string
	InMemory     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "taskvault.db"
	c.InMemory = false
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
