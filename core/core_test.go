package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/stockmesh/inventory"
)

type fakeLedger struct{ calls []inventory.Call }

func (f *fakeLedger) ID() string { return "sess-1" }
func (f *fakeLedger) Dispatch(_ context.Context, c inventory.Call) inventory.Result {
	f.calls = append(f.calls, c)
	return inventory.Result{Op: c.Op, Message: "ok"}
}

func TestContentAccessors(t *testing.T) {
	c := Content{Role: RoleAssistant, Parts: []Part{
		TextPart{Text: "Adding "},
		FunctionCallPart{FunctionCall: FunctionCall{ID: "1", Name: "add_item", Arguments: `{"item_id":1}`}},
		TextPart{Text: "now"},
		FunctionResponsePart{FunctionResponse: FunctionResponse{ID: "1", Name: "add_item", Response: "done"}},
	}}

	assert.Equal(t, "Adding now", c.Text())
	assert.Len(t, c.FunctionCalls(), 1)
	assert.Equal(t, "add_item", c.FunctionCalls()[0].Name)
	assert.Len(t, c.FunctionResponses(), 1)
}

func TestFunctionResponseText(t *testing.T) {
	assert.Equal(t, "done", FunctionResponse{Response: "done"}.Text())
	assert.Equal(t, "error: boom", FunctionResponse{Response: "done", Error: "boom"}.Text())
	assert.Equal(t, `{"a":1}`, FunctionResponse{Response: map[string]int{"a": 1}}.Text())
	assert.Equal(t, "Item not found.", FunctionResponse{Response: inventory.Result{Message: "Item not found."}}.Text())
	assert.Equal(t, "", FunctionResponse{}.Text())
}

func TestToolContextDefaults(t *testing.T) {
	//nolint:staticcheck // nil context is normalized
	tc := NewToolContext(nil, nil, "", nil)
	assert.NotNil(t, tc.Context())
	assert.NotEmpty(t, tc.FunctionCallID())
	assert.Equal(t, "", tc.SessionID())
	assert.NotNil(t, tc.Logger())
}

func TestToolContextLedger(t *testing.T) {
	l := &fakeLedger{}
	tc := NewToolContext(context.Background(), l, "fc-1", nil)

	assert.Equal(t, "sess-1", tc.SessionID())
	assert.Equal(t, "fc-1", tc.FunctionCallID())

	res := tc.Ledger().Dispatch(tc.Context(), inventory.SaveAndClose())
	assert.Equal(t, "ok", res.Message)
	assert.Len(t, l.calls, 1)
}
