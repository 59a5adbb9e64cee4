package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/inventory"
	"github.com/hupe1980/stockmesh/model"
)

func TestSessionBuilder(t *testing.T) {
	sess := NewSessionBuilder().ID("s1").Item(2, "Mouse", 5, 20).Item(1, "Laptop", 1, 900).Build()

	assert.Equal(t, "s1", sess.ID())
	assert.Equal(t, []inventory.Item{
		{ID: 1, Name: "Laptop", Quantity: 1, Price: 900},
		{ID: 2, Name: "Mouse", Quantity: 5, Price: 20},
	}, sess.Items())

	assert.Panics(t, func() { NewSessionBuilder().Item(1, "", 1, 1).Build() })
}

func TestScriptBuilder(t *testing.T) {
	responses := NewScriptBuilder().
		Call("add_item", `{}`).
		Call("delete_item", `{}`).
		Text("ok").
		Call("save_and_close", `{}`).
		Build()

	require.Len(t, responses, 3)
	calls := responses[0].Content.FunctionCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "call-1", calls[0].ID)
	assert.Equal(t, "call-2", calls[1].ID)
	assert.Equal(t, "ok", responses[1].Content.Text())
	assert.Equal(t, "save_and_close", responses[2].Content.FunctionCalls()[0].Name)

	llm := NewScriptBuilder().Text("hi").Model()
	resp, err := llm.Generate(context.Background(), model.Request{})
	require.NoError(t, err)
	assert.Equal(t, "hi", resp.Content.Text())
}
