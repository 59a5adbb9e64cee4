// Package agent resolves free-text requests into ledger operations by
// driving a model.Model through a tool-calling loop:
//
//	instructions + prompt -> model -> function calls -> tools -> function responses -> model ...
//
// The loop ends when the model answers without requesting tools, or fails
// with ErrMaxTurns once the configured turn budget is spent. Every function
// call is executed against the session passed to Run, one at a time, in the
// order the model requested them.
package agent
