package anthropic

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/model"
)

func TestBuildMessages_ToolResultsInUserTurn(t *testing.T) {
	contents := []core.Content{
		core.NewTextContent(core.RoleSystem, "ignored here"),
		core.NewTextContent(core.RoleUser, "Add a Laptop"),
		{Role: core.RoleAssistant, Parts: []core.Part{
			core.FunctionCallPart{FunctionCall: core.FunctionCall{ID: "tu_1", Name: "add_item", Arguments: `{"item_id":1}`}},
		}},
		{Role: core.RoleTool, Parts: []core.Part{
			core.FunctionResponsePart{FunctionResponse: core.FunctionResponse{ID: "tu_1", Name: "add_item", Response: "Item 'Laptop' added with ID 1."}},
		}},
	}

	msgs := buildMessages(contents)
	require.Len(t, msgs, 3)
	assert.Equal(t, anthropic.MessageParamRoleUser, msgs[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, msgs[1].Role)
	assert.Equal(t, anthropic.MessageParamRoleUser, msgs[2].Role)
	require.Len(t, msgs[2].Content, 1)
	assert.NotNil(t, msgs[2].Content[0].OfToolResult)
}

func TestBuildSystem(t *testing.T) {
	blocks := buildSystem(model.Request{
		Instructions: "You are an Inventory Manager.",
		Contents:     []core.Content{core.NewTextContent(core.RoleSystem, "extra")},
	})
	require.Len(t, blocks, 2)
	assert.Equal(t, "extra", blocks[1].Text)
}

func TestBuildTools(t *testing.T) {
	tools := buildTools([]model.ToolDefinition{{
		Type: "function",
		Function: model.FunctionDefinition{
			Name:        "delete_item",
			Description: "Delete an item",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"item_id": map[string]any{"type": "integer"}},
				"required":   []string{"item_id"},
			},
		},
	}})

	require.Len(t, tools, 1)
	require.NotNil(t, tools[0].OfTool)
	assert.Equal(t, "delete_item", tools[0].OfTool.Name)
	assert.Equal(t, []string{"item_id"}, tools[0].OfTool.InputSchema.Required)
}

func TestInfo(t *testing.T) {
	m := NewModelFromClient(nil)
	assert.Equal(t, "anthropic", m.Info().Provider)
}
