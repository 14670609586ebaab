package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/imgurshot/internal/flagx"
	"github.com/dmitrijs2005/imgurshot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "2s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL    *string         `json:"api_base_url"`
	ClientID      *string         `json:"client_id"`
	ClientSecret  *string         `json:"client_secret"`
	ScreenshotDir *string         `json:"screenshot_dir"`
	PollInterval  *timex.Duration `json:"poll_interval"`
	UploadTimeout *timex.Duration `json:"upload_timeout"`
	DatabasePath  *string         `json:"database_path"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when absent, nothing is loaded. Only keys
// present in the file override the current values. Panics on read or
// unmarshal errors, matching the fail-fast startup behavior of parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.ClientID != nil {
		cfg.ClientID = *jc.ClientID
	}
	if jc.ClientSecret != nil {
		cfg.ClientSecret = *jc.ClientSecret
	}
	if jc.ScreenshotDir != nil {
		cfg.ScreenshotDir = *jc.ScreenshotDir
	}
	if jc.PollInterval != nil {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.UploadTimeout != nil {
		cfg.UploadTimeout = jc.UploadTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
}
