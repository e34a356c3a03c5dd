// Package cli provides the interactive linkdash terminal client.
//
// It wires configuration, the local session database, the REST client, the
// role router and an interactive REPL. Typical flow: restore a persisted
// session (or prompt for login), mount the role's dashboard, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Register / Logout / change password
//   - Role-scoped panels: users, workers, campaigns, links, analytics,
//     clicks, geography, tasks
//   - Role-scoped actions: user administration, worker management,
//     campaign and tracking link creation
//   - Request metrics (stats)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
