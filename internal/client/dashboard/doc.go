// Package dashboard implements the role-scoped dashboard views.
//
// A view is a Profile (which panels it mounts, which actions it exposes and
// which user rows it may see or manage) applied to a Dashboard bound to one
// session. Panels fetch independently and keep the last successful snapshot;
// actions validate their draft, call the API, notify the outcome and re-fetch
// the affected panel. Nothing in this package returns API errors to the
// caller: every failure ends up as a Notifier message.
package dashboard
