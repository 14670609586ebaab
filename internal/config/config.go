package config

import "time"

// Config holds runtime settings for the imgurshot client.
//
// Fields:
//   - APIBaseURL: scheme://host of the image-service REST API.
//   - ClientID / ClientSecret: application credentials for the token and
//     anonymous-upload endpoints.
//   - ScreenshotDir: override for the watched directory; when empty (or not
//     an existing directory) the watcher falls back to the user's Desktop.
//   - PollInterval: how often the watcher rescans the directory.
//   - UploadTimeout: per-request bound on HTTP calls.
//   - DatabasePath: location of the local SQLite database.
type Config struct {
	APIBaseURL    string
	ClientID      string
	ClientSecret  string
	ScreenshotDir string
	PollInterval  time.Duration
	UploadTimeout time.Duration
	DatabasePath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.imgur.com"
	c.ClientID = ""
	c.ClientSecret = ""
	c.ScreenshotDir = ""
	c.PollInterval = 2 * time.Second
	c.UploadTimeout = 30 * time.Second
	c.DatabasePath = "imgurshot.db"
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
