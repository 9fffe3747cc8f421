package config

// Config holds runtime settings for the ResearchHub CLI.
//
// Fields:
//   - APIURL: base origin of the ResearchHub HTTP API (scheme://host[:port]).
//   - SessionDB: path of the SQLite file holding the persisted session.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: text or json.
type Config struct {
	APIURL    string
	SessionDB string
	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:8000"
	c.SessionDB = "researchhub.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
