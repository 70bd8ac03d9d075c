// Package cli provides the interactive infrakeeper terminal dashboard.
//
// It wires configuration, the gRPC inventory client and an interactive REPL.
// Typical flow: log in, start a background connectivity watcher, then browse
// the inventory and open per-entity sub-shells.
//
// Key features:
//   - Summary and per-kind list views with search
//   - Credentials sub-shell (add, edit, delete, reveal)
//   - Notes sub-shell with severity badges
//   - Connection launcher that derives the ssh command and copies it
//     to the terminal clipboard via OSC 52
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
