package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/imgurshot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    base URL of the image-service API
//	-id string   application client id
//	-secret string application client secret
//	-d string    screenshot directory override
//	-p int       watcher poll interval in seconds
//	-t int       upload timeout in seconds
//	-db string   path to the local database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-id", "-secret", "-d", "-p", "-t", "-db"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the image service API")
	fs.StringVar(&cfg.ClientID, "id", cfg.ClientID, "application client id")
	fs.StringVar(&cfg.ClientSecret, "secret", cfg.ClientSecret, "application client secret")
	fs.StringVar(&cfg.ScreenshotDir, "d", cfg.ScreenshotDir, "screenshot directory override")
	pollInterval := fs.Int("p", int(cfg.PollInterval.Seconds()), "watcher poll interval (in seconds)")
	uploadTimeout := fs.Int("t", int(cfg.UploadTimeout.Seconds()), "upload timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
	cfg.UploadTimeout = time.Duration(*uploadTimeout) * time.Second
}
