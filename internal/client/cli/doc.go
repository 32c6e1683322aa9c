// Package cli provides the interactive WellSync command-line client.
//
// It wires configuration, the embedded store, the remote client, the network
// monitor and the sync manager behind a small REPL. The shell drives the
// engine the way an app screen would: local writes return immediately, and
// delivery happens in the background whenever the device is online.
//
// Key features:
//   - Register / Login / Logout (online with offline fallback)
//   - Record and query moods, complete exercises, chat
//   - Manual sync, sync status, forcing the device offline or online
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
