package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/model"
)

func TestBuildMessages(t *testing.T) {
	req := model.Request{
		Instructions: "You are an Inventory Manager.",
		Contents: []core.Content{
			core.NewTextContent(core.RoleUser, "Delete item 1"),
			{Role: core.RoleAssistant, Parts: []core.Part{
				core.FunctionCallPart{FunctionCall: core.FunctionCall{ID: "call_1", Name: "delete_item", Arguments: `{"item_id":1}`}},
			}},
			{Role: core.RoleTool, Parts: []core.Part{
				core.FunctionResponsePart{FunctionResponse: core.FunctionResponse{ID: "call_1", Name: "delete_item", Response: "Item not found."}},
			}},
			core.NewTextContent(core.RoleAssistant, "Nothing to delete."),
		},
	}

	msgs := buildMessages(req)
	require.Len(t, msgs, 5)

	assert.NotNil(t, msgs[0].OfSystem)
	assert.NotNil(t, msgs[1].OfUser)

	require.NotNil(t, msgs[2].OfAssistant)
	require.Len(t, msgs[2].OfAssistant.ToolCalls, 1)
	assert.Equal(t, "delete_item", msgs[2].OfAssistant.ToolCalls[0].Function.Name)

	require.NotNil(t, msgs[3].OfTool)
	assert.Equal(t, "call_1", msgs[3].OfTool.ToolCallID)

	assert.NotNil(t, msgs[4].OfAssistant)
}

func TestBuildParams_Tools(t *testing.T) {
	m := NewModelFromClient(nil, func(o *Options) { o.Model = "gpt-test" })

	params := m.buildParams(model.Request{Tools: []model.ToolDefinition{{
		Type: "function",
		Function: model.FunctionDefinition{
			Name:        "save_and_close",
			Description: "Save",
			Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
		},
	}}}, nil)

	assert.Equal(t, "gpt-test", params.Model)
	require.Len(t, params.Tools, 1)
	assert.Equal(t, "save_and_close", params.Tools[0].Function.Name)
	assert.Equal(t, "openai", m.Info().Provider)
}
