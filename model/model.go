package model

import (
	"context"
	"errors"
	"sync"

	"github.com/hupe1980/stockmesh/core"
)

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object.
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Request captures the normalized model input.
type Request struct {
	Instructions string           `json:"instructions"` // System prompt
	Contents     []core.Content   `json:"contents"`     // Conversation so far
	Tools        []ToolDefinition `json:"tools,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Response is one complete model turn.
type Response struct {
	ID           string       `json:"id"`
	Content      core.Content `json:"content"`
	FinishReason string       `json:"finish_reason"` // "stop", "length", "tool_calls", etc.
	Usage        *TokenUsage  `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "scripted"
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required by the agent to drive generation.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// ErrScriptExhausted is returned by ScriptedModel when no responses remain.
var ErrScriptExhausted = errors.New("scripted model: no responses left")

// ScriptedModel replays a fixed sequence of responses and records every request.
// It is safe for concurrent use.
type ScriptedModel struct {
	mu        sync.Mutex
	responses []Response
	requests  []Request
}

// NewScriptedModel returns a model that answers with responses in order.
func NewScriptedModel(responses ...Response) *ScriptedModel {
	return &ScriptedModel{responses: responses}
}

// Generate implements Model.
func (m *ScriptedModel) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if len(m.responses) == 0 {
		return nil, ErrScriptExhausted
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	return &resp, nil
}

// Requests returns the requests received so far.
func (m *ScriptedModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Info implements Model.
func (m *ScriptedModel) Info() Info {
	return Info{Name: "scripted", Provider: "scripted", SupportsTools: true}
}

// TextResponse builds a final assistant text response.
func TextResponse(text string) Response {
	return Response{
		Content:      core.NewTextContent(core.RoleAssistant, text),
		FinishReason: "stop",
	}
}

// ToolCallResponse builds an assistant response requesting the given calls.
func ToolCallResponse(calls ...core.FunctionCall) Response {
	parts := make([]core.Part, len(calls))
	for i, c := range calls {
		parts[i] = core.FunctionCallPart{FunctionCall: c}
	}
	return Response{
		Content:      core.Content{Role: core.RoleAssistant, Parts: parts},
		FinishReason: "tool_calls",
	}
}
