package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/core"
)

func TestScriptedModel(t *testing.T) {
	m := NewScriptedModel(
		ToolCallResponse(core.FunctionCall{ID: "1", Name: "save_and_close", Arguments: "{}"}),
		TextResponse("done"),
	)

	ctx := context.Background()

	r1, err := m.Generate(ctx, Request{Instructions: "a"})
	require.NoError(t, err)
	assert.Equal(t, "tool_calls", r1.FinishReason)
	assert.Len(t, r1.Content.FunctionCalls(), 1)

	r2, err := m.Generate(ctx, Request{Instructions: "b"})
	require.NoError(t, err)
	assert.Equal(t, "done", r2.Content.Text())

	_, err = m.Generate(ctx, Request{})
	assert.ErrorIs(t, err, ErrScriptExhausted)

	reqs := m.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "b", reqs[1].Instructions)
	assert.True(t, m.Info().SupportsTools)
}

func TestScriptedModel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScriptedModel(TextResponse("x")).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
