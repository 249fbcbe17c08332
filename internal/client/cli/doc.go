// Package cli provides the interactive wheel command-line client.
//
// It wires configuration, the gRPC garage client, and an interactive REPL
// that tracks whether the server is reachable. Typical flow: probe the
// server, start a background connectivity watcher, then walk the swipe deck
// one card at a time.
//
// Key features:
//   - Set the monthly budget and toggle must-have features
//   - Swipe: show the top card, like or nope it
//   - Garage: list liked vehicles; details of any vehicle by id
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
