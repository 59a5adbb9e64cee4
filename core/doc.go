// Package core defines the shared primitives exchanged between the model,
// tool and agent layers: role based Content built from Parts, function call
// and response records, and the ToolContext handed to every tool call.
//
// It depends only on package inventory so that tools can reach the session
// ledger without importing the session implementation.
package core
