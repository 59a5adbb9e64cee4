package tool

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/hupe1980/stockmesh/core"
)

// Registry resolves tool names to tools. It is read-only after construction.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry indexes tools by name. A later tool with the same name replaces an earlier one.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, exists := r.tools[t.Name()]; !exists {
			r.order = append(r.order, t.Name())
		}
		r.tools[t.Name()] = t
	}
	return r
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string { return slices.Clone(r.order) }

// Execute looks up fc.Name, decodes its JSON arguments and calls the tool.
func (r *Registry) Execute(tc *core.ToolContext, fc core.FunctionCall) (any, error) {
	impl, ok := r.tools[fc.Name]
	if !ok {
		return nil, NewToolError(fc.Name, fmt.Sprintf("tool %s not found", fc.Name), CodeUnknownTool)
	}

	argMap := map[string]any{}
	if fc.Arguments != "" {
		if err := json.Unmarshal([]byte(fc.Arguments), &argMap); err != nil {
			return nil, &ToolError{
				Tool:    fc.Name,
				Message: fmt.Sprintf("failed to unmarshal args: %v", err),
				Code:    CodeValidation,
				Details: err,
			}
		}
	}

	return impl.Call(tc, argMap)
}
