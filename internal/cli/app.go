package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/imgurshot/internal/client"
	"github.com/dmitrijs2005/imgurshot/internal/config"
	"github.com/dmitrijs2005/imgurshot/internal/cryptox"
	"github.com/dmitrijs2005/imgurshot/internal/logging"
	"github.com/dmitrijs2005/imgurshot/internal/models"
	"github.com/dmitrijs2005/imgurshot/internal/services"
	"github.com/dmitrijs2005/imgurshot/internal/watcher"
)

// uploadService defines the service surface the CLI needs. The real
// services.Service satisfies it; tests can provide a lightweight stub.
type uploadService interface {
	Authenticate(ctx context.Context, code string) error
	DeleteCredentials(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Username(ctx context.Context) string
	Enqueue(ctx context.Context, req *models.UploadRequest)
	History(ctx context.Context, limit int) ([]models.UploadRecord, error)
	Wait()
}

type App struct {
	config  *config.Config
	service uploadService
	watcher *watcher.Watcher
	repos   *client.Repositories
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repos, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sealKey, err := cryptox.LoadOrCreateSealKey(cfg.DatabasePath + ".key")
	if err != nil {
		log.Error(ctx, "error loading seal key", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(cfg.APIBaseURL, cfg.ClientID, cfg.ClientSecret, cfg.UploadTimeout)
	svc := services.NewService(apiClient, repos.DB, sealKey, log)

	app := &App{
		config:  cfg,
		service: svc,
		repos:   repos,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	// The directory is resolved on every scan so a config change takes
	// effect without restarting the watcher.
	app.watcher = watcher.New(
		func() string { return watcher.ResolveDir(cfg.ScreenshotDir, watcher.DefaultScreenshotDir()) },
		cfg.PollInterval,
		func(path string) { app.handleScreenshot(context.Background(), path) },
		log,
	)

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.shutdown()
	a.Root(ctx)
}

// shutdown stops the watcher, waits for in-flight uploads and closes the
// database.
func (a *App) shutdown() {
	a.watcher.Stop()
	a.service.Wait()
	if a.repos != nil {
		_ = a.repos.DB.Close()
	}
}
