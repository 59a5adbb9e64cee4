package testutil

import (
	"fmt"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/model"
)

// ScriptBuilder provides a fluent helper for scripted model conversations.
// Example:
//
//	llm := NewScriptBuilder().Call("delete_item", `{"item_id":1}`).Text("done").Model()
//
// Function call ids are assigned sequentially ("call-1", "call-2", ...).
type ScriptBuilder struct {
	responses []model.Response
	pending   []core.FunctionCall
	next      int
}

// NewScriptBuilder creates an empty script.
func NewScriptBuilder() *ScriptBuilder { return &ScriptBuilder{} }

// Call queues a function call; consecutive calls share one model turn (chainable).
func (b *ScriptBuilder) Call(name, args string) *ScriptBuilder {
	b.next++
	b.pending = append(b.pending, core.FunctionCall{
		ID:        fmt.Sprintf("call-%d", b.next),
		Name:      name,
		Arguments: args,
	})
	return b
}

// Text ends the current turn with a final assistant answer (chainable).
func (b *ScriptBuilder) Text(t string) *ScriptBuilder {
	b.flush()
	b.responses = append(b.responses, model.TextResponse(t))
	return b
}

// Build returns the scripted responses.
func (b *ScriptBuilder) Build() []model.Response {
	b.flush()
	out := make([]model.Response, len(b.responses))
	copy(out, b.responses)
	return out
}

// Model returns a ScriptedModel replaying the built responses.
func (b *ScriptBuilder) Model() *model.ScriptedModel {
	return model.NewScriptedModel(b.Build()...)
}

func (b *ScriptBuilder) flush() {
	if len(b.pending) == 0 {
		return
	}
	b.responses = append(b.responses, model.ToolCallResponse(b.pending...))
	b.pending = nil
}
