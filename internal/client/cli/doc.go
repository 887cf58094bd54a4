// Package cli provides the interactive Campus Navigator command-line client.
//
// It wires configuration, the session manager, the local occupancy cache and
// the API services into a REPL. On startup the app restores the previous
// session from the saved token, starts a connectivity watcher and a
// notification poller, and then executes user commands until exit.
//
// Key features:
//   - Register / Login / Logout with session restore across restarts
//   - Occupancy panels for libraries, labs and classrooms, with a cached
//     fallback when the server is unreachable
//   - Fault reporting and manager triage
//   - Room booking with a weekly schedule view
//   - Role elevation requests and admin approval
//   - Notification inbox refreshed in the background
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, startConnectivityWatcher, and runREPL for details.
package cli
