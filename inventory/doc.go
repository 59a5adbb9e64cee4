// Package inventory holds the session-scoped inventory ledger and the
// dispatcher that applies the four named operations to it.
//
// The package is deliberately free of transport, model and logging concerns:
//   - Store maps item ids to Items and never fails
//   - Dispatcher routes a typed Call to its handler through a fixed table
//   - Every handler returns a Result describing the outcome; domain misses
//     (not found, nothing to update, invalid payload) are outcomes, not errors
//
// Callers that share one Store across goroutines must serialize Dispatch
// themselves (see package session).
package inventory
