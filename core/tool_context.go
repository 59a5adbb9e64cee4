package core

import (
	"context"

	"github.com/hupe1980/stockmesh/inventory"
	"github.com/hupe1980/stockmesh/logging"
)

// Ledger is the session surface tools operate on. Implementations serialize
// Dispatch so that each call runs to completion before the next one starts.
type Ledger interface {
	ID() string
	Dispatch(ctx context.Context, call inventory.Call) inventory.Result
}

// ToolContext is handed to a tool for exactly one invocation. It carries the
// request context, the ledger of the calling session and correlation ids.
// Tools must not retain it after Call returns.
type ToolContext struct {
	ctx            context.Context
	ledger         Ledger
	functionCallID string
	logger         logging.Logger
}

// NewToolContext constructs a tool context for one function call.
func NewToolContext(ctx context.Context, ledger Ledger, functionCallID string, logger logging.Logger) *ToolContext {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	if functionCallID == "" {
		functionCallID = NewID()
	}
	return &ToolContext{ctx: ctx, ledger: ledger, functionCallID: functionCallID, logger: logger}
}

// Context returns the context associated with the tool invocation.
func (tc *ToolContext) Context() context.Context { return tc.ctx }

// Ledger returns the session ledger the tool operates on.
func (tc *ToolContext) Ledger() Ledger { return tc.ledger }

// SessionID returns the id of the ledger's session, or "" without a ledger.
func (tc *ToolContext) SessionID() string {
	if tc.ledger == nil {
		return ""
	}
	return tc.ledger.ID()
}

// FunctionCallID returns the function call ID associated with the tool invocation.
func (tc *ToolContext) FunctionCallID() string { return tc.functionCallID }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.logger }
