package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoot_HelpAndExit(t *testing.T) {
	svc := &fakeService{}
	app, out := newTestApp(t, svc, "help\nexit\n")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Available commands:")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRoot_UnknownCommand(t *testing.T) {
	svc := &fakeService{}
	app, out := newTestApp(t, svc, "frobnicate\nexit\n")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}

func TestRoot_StatusAnonymous(t *testing.T) {
	svc := &fakeService{}
	app, out := newTestApp(t, svc, "status\nexit\n")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Not logged in, uploads are anonymous")
	assert.Contains(t, out.String(), "Watching "+app.config.ScreenshotDir)
}

func TestRoot_WatchUnwatch(t *testing.T) {
	svc := &fakeService{}
	// Root starts the watcher on entry, so "watch" reports a duplicate and
	// "unwatch" actually stops it.
	app, out := newTestApp(t, svc, "watch\nunwatch\nunwatch\nexit\n")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Already watching")
	assert.Contains(t, out.String(), "Stopped watching")
	assert.Contains(t, out.String(), "Not watching")
}

func TestRoot_UploadUsage(t *testing.T) {
	svc := &fakeService{}
	app, out := newTestApp(t, svc, "upload\nexit\n")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Usage: upload <path>")
}

func TestRoot_PromptShowsUsername(t *testing.T) {
	svc := &fakeService{authenticated: true, username: "alice"}
	app, out := newTestApp(t, svc, "exit\n")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "imgurshot (alice, watching)> ")
}

func TestRoot_EOFStopsLoop(t *testing.T) {
	svc := &fakeService{}
	app, out := newTestApp(t, svc, "")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Welcome to imgurshot")
}
