package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/internal/util"
)

// FunctionTool exposes a plain Go function as a Tool.
//
// Call validates arguments against the parameter schema before invoking the
// function and normalizes failures into *ToolError:
//
//	VALIDATION_ERROR -> schema / argument mismatch
//	EXECUTION_ERROR  -> the function returned an error that is not a *ToolError
//
// A FunctionTool has no mutable state after construction and is safe for
// concurrent use.
type FunctionTool struct {
	name        string
	description string
	parameters  map[string]any
	fn          func(toolCtx *core.ToolContext, args map[string]any) (any, error)
}

// NewFunctionTool constructs a FunctionTool from an explicit schema and function.
func NewFunctionTool(
	name, description string,
	parameters map[string]any,
	fn func(toolCtx *core.ToolContext, args map[string]any) (any, error),
) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// Defaulter is implemented by argument structs that need non-zero values for
// keys the caller omitted.
type Defaulter interface {
	SetDefaults()
}

// NewTypedTool derives the schema from T (see util.CreateSchema) and decodes
// validated arguments into a T before calling fn. If *T implements Defaulter,
// SetDefaults runs before decoding so absent keys keep their defaults.
//
// Example:
//
//	type DeleteArgs struct {
//	  ItemID int `json:"item_id" description:"ID of the item to delete"`
//	}
//
//	del := NewTypedTool("delete_item", "Delete an item", func(tc *core.ToolContext, a DeleteArgs) (any, error) {
//	  return tc.Ledger().Dispatch(tc.Context(), inventory.DeleteItem(a.ItemID)), nil
//	})
func NewTypedTool[T any](
	name, description string,
	fn func(toolCtx *core.ToolContext, args T) (any, error),
) *FunctionTool {
	var zero T
	schema := util.CreateSchema(zero)

	return NewFunctionTool(name, description, schema, func(tc *core.ToolContext, raw map[string]any) (any, error) {
		args, err := decodeArgs[T](raw)
		if err != nil {
			return nil, &ToolError{
				Tool:    name,
				Message: fmt.Sprintf("cannot decode arguments: %v", err),
				Code:    CodeValidation,
				Details: err,
			}
		}
		return fn(tc, args)
	})
}

func decodeArgs[T any](raw map[string]any) (T, error) {
	var args T
	if d, ok := any(&args).(Defaulter); ok {
		d.SetDefaults()
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return args, err
	}

	if err := json.Unmarshal(b, &args); err != nil {
		return args, err
	}

	return args, nil
}

// Name returns the unique tool name used in function call declarations and routing.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the short natural language description exposed to models.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the JSON schema describing expected arguments.
func (t *FunctionTool) Parameters() map[string]any { return t.parameters }

// Call validates the provided args against the declared schema then invokes the
// underlying function.
//
// Logging Fields:
//
//	tool: tool name
//	fc_id: function call identifier
//	duration_ms: execution time in milliseconds
func (t *FunctionTool) Call(toolCtx *core.ToolContext, args map[string]any) (any, error) {
	logger := toolCtx.Logger()
	start := time.Now()

	logger.Debug("tool.call.start", "tool", t.name, "fc_id", toolCtx.FunctionCallID())

	if args == nil {
		args = map[string]any{}
	}

	if err := util.ValidateParameters(args, t.parameters); err != nil {
		logger.Warn("tool.call.validation_failed", "tool", t.name, "error", err.Error())

		return nil, &ToolError{
			Tool:    t.name,
			Message: fmt.Sprintf("parameter validation failed: %v", err),
			Code:    CodeValidation,
			Details: err,
		}
	}

	result, err := t.fn(toolCtx, args)
	if err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			logger.Error("tool.call.error", "tool", t.name, "code", toolErr.Code, "error", toolErr.Message)

			return nil, toolErr
		}

		logger.Error("tool.call.error", "tool", t.name, "error", err.Error())

		return nil, &ToolError{
			Tool:    t.name,
			Message: err.Error(),
			Code:    CodeExecution,
			Details: err,
		}
	}

	logger.Info("tool.call.success", "tool", t.name, "duration_ms", time.Since(start).Milliseconds())

	return result, nil
}
