package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/logging"
	"github.com/hupe1980/stockmesh/model"
	"github.com/hupe1980/stockmesh/tool"
)

// ErrMaxTurns is returned when the model keeps requesting tools past MaxTurns.
var ErrMaxTurns = errors.New("agent: maximum number of turns exceeded")

// Options configures an InventoryAgent.
type Options struct {
	Instruction Instruction
	// Tools defaults to tool.NewInventoryTools().
	Tools []tool.Tool
	// MaxTurns bounds model round trips per Run.
	MaxTurns int
	Logger   logging.Logger
}

// InventoryAgent drives a model against a session's ledger.
// It holds no session state and may serve several sessions.
type InventoryAgent struct {
	name        string
	llm         model.Model
	instruction Instruction
	registry    *tool.Registry
	maxTurns    int
	logger      logging.Logger
}

// New creates an agent named name backed by llm.
func New(name string, llm model.Model, optFns ...func(o *Options)) *InventoryAgent {
	opts := Options{
		Instruction: NewInstructionFromText(DefaultInstruction),
		MaxTurns:    10,
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if len(opts.Tools) == 0 {
		opts.Tools = tool.NewInventoryTools()
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = 1
	}

	return &InventoryAgent{
		name:        name,
		llm:         llm,
		instruction: opts.Instruction,
		registry:    tool.NewRegistry(opts.Tools...),
		maxTurns:    opts.MaxTurns,
		logger:      opts.Logger,
	}
}

// Name returns the agent name.
func (a *InventoryAgent) Name() string { return a.name }

// ToolCall records one executed function call.
type ToolCall struct {
	Call     core.FunctionCall
	Response core.FunctionResponse
	Duration time.Duration
}

// RunResult is the outcome of one Run.
type RunResult struct {
	FinalOutput string
	Contents    []core.Content
	ToolCalls   []ToolCall
	Turns       int
	Usage       model.TokenUsage
}

// Run resolves prompt against ledger. Tool failures are reported back to the
// model as function responses; only model errors, cancellation and the turn
// limit end the run with an error. The partial RunResult is returned either way.
func (a *InventoryAgent) Run(ctx context.Context, ledger core.Ledger, prompt string) (*RunResult, error) {
	logger := logging.With(a.logger, "agent", a.name, "session_id", ledger.ID())

	instructions, err := a.instruction.Resolve(InstructionData{
		AgentName: a.name,
		SessionID: ledger.ID(),
		Tools:     a.registry.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("resolve instruction: %w", err)
	}

	result := &RunResult{
		Contents: []core.Content{core.NewTextContent(core.RoleUser, prompt)},
	}

	defs := a.toolDefinitions()

	for result.Turns < a.maxTurns {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Turns++
		start := time.Now()

		resp, err := a.llm.Generate(ctx, model.Request{
			Instructions: instructions,
			Contents:     result.Contents,
			Tools:        defs,
		})
		if err != nil {
			logger.Error("agent.turn.error", "turn", result.Turns, "error", err.Error())
			return result, fmt.Errorf("model %s: %w", a.llm.Info().Name, err)
		}

		addUsage(&result.Usage, resp.Usage)
		result.Contents = append(result.Contents, resp.Content)

		calls := resp.Content.FunctionCalls()
		logger.Debug("agent.turn", "turn", result.Turns, "finish_reason", resp.FinishReason,
			"function_calls", len(calls), "duration_ms", time.Since(start).Milliseconds())

		if len(calls) == 0 {
			result.FinalOutput = resp.Content.Text()
			logger.Info("agent.run.complete", "turns", result.Turns, "tool_calls", len(result.ToolCalls))
			return result, nil
		}

		responses := core.Content{Role: core.RoleTool, Parts: make([]core.Part, 0, len(calls))}
		for _, fc := range calls {
			tc := a.executeCall(ctx, ledger, fc, logger)
			result.ToolCalls = append(result.ToolCalls, tc)
			responses.Parts = append(responses.Parts, core.FunctionResponsePart{FunctionResponse: tc.Response})
		}
		result.Contents = append(result.Contents, responses)
	}

	logger.Warn("agent.run.max_turns", "turns", result.Turns)

	return result, ErrMaxTurns
}

func (a *InventoryAgent) executeCall(ctx context.Context, ledger core.Ledger, fc core.FunctionCall, logger logging.Logger) ToolCall {
	if fc.ID == "" {
		fc.ID = core.NewID()
	}

	toolCtx := core.NewToolContext(ctx, ledger, fc.ID, logger)
	start := time.Now()

	var (
		out any
		err error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("tool %s panicked: %v", fc.Name, r)
				logger.Error("agent.function.panic", "function", fc.Name, "recover", r)
			}
		}()
		out, err = a.registry.Execute(toolCtx, fc)
	}()

	dur := time.Since(start)
	logger.Info("agent.function.executed", "function", fc.Name, "function_call_id", fc.ID,
		"duration_ms", dur.Milliseconds(), "error", err != nil)

	resp := core.FunctionResponse{ID: fc.ID, Name: fc.Name, Response: out}
	if err != nil {
		resp.Response = nil
		resp.Error = err.Error()
	}

	return ToolCall{Call: fc, Response: resp, Duration: dur}
}

func (a *InventoryAgent) toolDefinitions() []model.ToolDefinition {
	tools := a.registry.Tools()
	defs := make([]model.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}

func addUsage(total *model.TokenUsage, u *model.TokenUsage) {
	if u == nil {
		return
	}
	total.PromptTokens += u.PromptTokens
	total.CompletionTokens += u.CompletionTokens
	total.TotalTokens += u.TotalTokens
}
