// Package watcher turns new files in the screenshot directory into callback
// invocations. It polls the directory and keeps a blacklist of base file
// names so that pre-existing files and already-handled files never fire the
// callback.
//
// Lifecycle: the first scan (on Start) only gathers — every file present is
// blacklisted silently as historical. Subsequent scans fire the callback for
// each file whose base name is not yet blacklisted, blacklisting it first so
// a file reported again later stays silent.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/imgurshot/internal/filex"
	"github.com/dmitrijs2005/imgurshot/internal/logging"
)

// DefaultScreenshotDir returns the user's Desktop directory, the usual
// screenshot target when no override is configured.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Desktop")
}

// ResolveDir picks the watched directory: the override when it exists and is
// a directory, otherwise the fallback. Meant to be evaluated on every scan
// so a configuration change takes effect without restart.
func ResolveDir(override, fallback string) string {
	if override != "" && filex.IsDir(override) {
		return override
	}
	return fallback
}

// Watcher polls a directory for new files.
type Watcher struct {
	// dir is resolved on every scan, not cached.
	dir      func() string
	interval time.Duration
	callback func(path string)
	log      logging.Logger

	mu        sync.Mutex
	blacklist map[string]struct{}
	started   bool
	done      chan struct{}
}

// New creates a watcher. dir is called before each scan to resolve the
// target directory; callback receives the full path of each accepted file.
func New(dir func() string, interval time.Duration, callback func(string), log logging.Logger) *Watcher {
	if interval == 0 {
		interval = 2 * time.Second
	}
	return &Watcher{
		dir:       dir,
		interval:  interval,
		callback:  callback,
		log:       log,
		blacklist: make(map[string]struct{}),
	}
}

// Start begins monitoring. The call is idempotent: starting an already
// running watcher is a no-op. Every file present at start is treated as
// historical and never fires the callback.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	w.started = true
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	// Initial gather phase: blacklist without firing.
	w.scan(ctx, false)

	go w.loop(ctx, done)
	return nil
}

// Stop halts monitoring. Idempotent; safe to call on a never-started
// watcher. The blacklist survives so a later Start does not replay old
// files.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	w.started = false
	close(w.done)
}

// Running reports whether the watcher is currently monitoring.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.started
}

func (w *Watcher) loop(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.scan(ctx, true)
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// scan lists the target directory once. New base names are blacklisted;
// when fire is set, each newly blacklisted file's path is handed to the
// callback. Files whose containing directory is not the target never
// qualify: scanning is restricted to the resolved directory itself.
func (w *Watcher) scan(ctx context.Context, fire bool) {
	dir := w.dir()
	if dir == "" || !filex.IsDir(dir) {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.Warn(ctx, "failed to read watched directory", "dir", dir, "error", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !filex.InDir(path, dir) {
			continue
		}

		name := filex.BaseNameWithoutExt(path)

		w.mu.Lock()
		_, seen := w.blacklist[name]
		if !seen {
			w.blacklist[name] = struct{}{}
		}
		// A tick may race with Stop; never fire after Stop returned.
		active := w.started
		w.mu.Unlock()

		if !seen && fire && active {
			w.log.Debug(ctx, "new screenshot detected", "path", path)
			w.callback(path)
		}
	}
}
