// Package cli provides the interactive imgurshot command-line client.
//
// It wires configuration, local storage, the image-service API client and the
// screenshot watcher into an interactive REPL. Typical flow: start the
// watcher, let new screenshots upload in the background, and use commands to
// log in, inspect the upload history, or upload a file by hand.
//
// Key commands:
//   - login / logout  — PIN-based account authentication
//   - watch / unwatch — start and stop the screenshot watcher
//   - upload <path>   — upload a single file on demand
//   - history         — show recent upload outcomes
//   - status          — account and watcher state
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
