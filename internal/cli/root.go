package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/imgurshot/internal/watcher"
)

const defaultHistoryLimit = 10

func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if username := a.service.Username(ctx); username != "" {
		s = username
	} else {
		s = "anonymous"
	}
	if a.watcher.Running() {
		s = s + ", watching"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to imgurshot (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	a.startWatcher(ctx)

	for {
		fmt.Fprintf(a.out, "imgurshot %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: login, logout, status, watch, unwatch, upload <path>, history [n], exit")

		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "status":
			a.printStatus(ctx)

		case "watch":
			a.startWatcher(ctx)
		case "unwatch":
			a.stopWatcher()

		case "upload":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: upload <path>")
				continue
			}
			if err := a.uploadFile(ctx, args[0]); err != nil {
				fmt.Fprintln(a.out, err.Error())
			}

		case "history":
			limit := defaultHistoryLimit
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
					limit = n
				}
			}
			if err := a.history(ctx, limit); err != nil {
				fmt.Fprintln(a.out, err.Error())
			}

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}

}

func (a *App) printStatus(ctx context.Context) {
	if a.service.IsAuthenticated(ctx) {
		fmt.Fprintf(a.out, "Logged in as %s\n", a.service.Username(ctx))
	} else {
		fmt.Fprintln(a.out, "Not logged in, uploads are anonymous")
	}
	dir := watcher.ResolveDir(a.config.ScreenshotDir, watcher.DefaultScreenshotDir())
	if a.watcher.Running() {
		fmt.Fprintf(a.out, "Watching %s\n", dir)
	} else {
		fmt.Fprintf(a.out, "Not watching (would watch %s)\n", dir)
	}
}

func (a *App) startWatcher(ctx context.Context) {
	if a.watcher.Running() {
		fmt.Fprintln(a.out, "Already watching")
		return
	}
	if err := a.watcher.Start(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to start watcher: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "Watching %s\n", watcher.ResolveDir(a.config.ScreenshotDir, watcher.DefaultScreenshotDir()))
}

func (a *App) stopWatcher() {
	if !a.watcher.Running() {
		fmt.Fprintln(a.out, "Not watching")
		return
	}
	a.watcher.Stop()
	fmt.Fprintln(a.out, "Stopped watching")
}
