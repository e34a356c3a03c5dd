// Package client is the single choke point between linkdash and the
// link-tracking REST API.
//
// # Overview
//
// The package provides:
//  1. A fixed table of named endpoints (see Endpoint and Endpoints).
//  2. HTTPClient, which turns a logical operation into an authenticated
//     JSON request and a typed outcome, counting each call in Prometheus
//     metrics (see NewMetrics).
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite session database and its embedded goose migrations.
//
// # Error Handling
//
// Every failed call returns one of:
//   - *ApplicationError: the backend answered non-2xx. Message holds the
//     body's message, or GenericFailureMessage with Generic set.
//   - *NetworkError: transport failure or a malformed body. It matches
//     ErrUnavailable.
//   - an error wrapping ErrInvalidRequest: the call was never sent, for
//     example because a path parameter was missing.
//
// 401 and 403 responses match ErrUnauthorized. Nothing is retried.
//
// # Concurrency
//
// HTTPClient is immutable after construction; WithToken returns a copy.
// All operations accept context.Context and honour cancellation.
package client
