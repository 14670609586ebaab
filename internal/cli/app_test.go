package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/imgurshot/internal/config"
	"github.com/dmitrijs2005/imgurshot/internal/logging"
	"github.com/dmitrijs2005/imgurshot/internal/models"
	"github.com/dmitrijs2005/imgurshot/internal/watcher"
)

// fakeService is a recording stub for the uploadService seam.
type fakeService struct {
	mu sync.Mutex

	authenticated bool
	username      string
	authErr       error

	lastCode    string
	deleteCalls int
	enqueued    []*models.UploadRequest

	records    []models.UploadRecord
	historyErr error
}

func (f *fakeService) Authenticate(ctx context.Context, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCode = code
	if f.authErr != nil {
		return f.authErr
	}
	f.authenticated = true
	return nil
}

func (f *fakeService) DeleteCredentials(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	f.authenticated = false
	f.username = ""
	return nil
}

func (f *fakeService) IsAuthenticated(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authenticated
}

func (f *fakeService) Username(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.username
}

func (f *fakeService) Enqueue(ctx context.Context, req *models.UploadRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, req)
}

func (f *fakeService) History(ctx context.Context, limit int) ([]models.UploadRecord, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	if limit < len(f.records) {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeService) Wait() {}

func (f *fakeService) Enqueued() []*models.UploadRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.UploadRequest(nil), f.enqueued...)
}

// newTestApp wires an App around the fake service with output captured in a
// buffer and input scripted from the given string.
func newTestApp(t *testing.T, svc *fakeService, input string) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ScreenshotDir = t.TempDir()
	cfg.PollInterval = time.Hour

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app := &App{
		config:  cfg,
		service: svc,
		log:     log,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}
	app.watcher = watcher.New(
		func() string { return cfg.ScreenshotDir },
		cfg.PollInterval,
		func(path string) { app.handleScreenshot(context.Background(), path) },
		log,
	)
	t.Cleanup(app.watcher.Stop)

	return app, out
}
