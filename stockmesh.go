// Package stockmesh wires the inventory ledger, the tool-calling agent and a
// model provider into a small facade. Most applications:
//  1. Create a Mesh via New() or NewFromConfig()
//  2. Open a session with NewSession()
//  3. Send free-text prompts with Run(), or structured calls with Session.Dispatch
//
// The inventory core (package inventory) has no dependency on models or
// agents and can be used directly.
package stockmesh

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/stockmesh/agent"
	"github.com/hupe1980/stockmesh/config"
	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/logging"
	"github.com/hupe1980/stockmesh/model"
	anthropicmodel "github.com/hupe1980/stockmesh/model/anthropic"
	openaimodel "github.com/hupe1980/stockmesh/model/openai"
	"github.com/hupe1980/stockmesh/session"
	"github.com/hupe1980/stockmesh/tool"
)

// Options configures the Mesh instance.
type Options struct {
	// AgentName is rendered into the agent instructions.
	AgentName string
	// Instruction overrides the default agent instruction template.
	Instruction *agent.Instruction
	// Tools overrides the default inventory tool set.
	Tools []tool.Tool
	// MaxTurns bounds model round trips per prompt.
	MaxTurns int
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Mesh is the high-level facade over an agent and its model.
type Mesh struct {
	opts  Options
	llm   model.Model
	agent *agent.InventoryAgent
}

// New creates a Mesh driving llm.
func New(llm model.Model, optFns ...func(o *Options)) *Mesh {
	opts := Options{
		AgentName: "InventoryAgent",
		MaxTurns:  10,
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	a := agent.New(opts.AgentName, llm, func(o *agent.Options) {
		if opts.Instruction != nil {
			o.Instruction = *opts.Instruction
		}
		o.Tools = opts.Tools
		o.MaxTurns = opts.MaxTurns
		o.Logger = logging.With(opts.Logger, "component", "agent")
	})

	return &Mesh{opts: opts, llm: llm, agent: a}
}

// NewFromConfig builds the model and logger described by cfg.
func NewFromConfig(cfg *config.Config) (*Mesh, error) {
	llm, err := NewModel(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger()

	return New(llm, func(o *Options) {
		o.AgentName = cfg.AgentName
		o.MaxTurns = cfg.MaxTurns
		o.Logger = logger
	}), nil
}

// NewModel returns the provider selected by cfg.Model.
func NewModel(cfg *config.Config) (model.Model, error) {
	mc := cfg.Model

	switch mc.Provider {
	case config.ProviderOpenAI:
		return openaimodel.NewModel(func(o *openaimodel.Options) {
			if mc.Name != "" {
				o.Model = mc.Name
			}
			o.Temperature = mc.Temperature
			if mc.MaxTokens > 0 {
				o.MaxCompletionTokens = mc.MaxTokens
			}
		}), nil
	case config.ProviderAnthropic:
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			if mc.Name != "" {
				o.Model = anthropic.Model(mc.Name)
			}
			o.Temperature = mc.Temperature
			if mc.MaxTokens > 0 {
				o.MaxTokens = mc.MaxTokens
			}
		}), nil
	case config.ProviderOffline:
		return model.NewScriptedModel(DemoScript()...), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", mc.Provider)
	}
}

// Agent returns the underlying agent.
func (m *Mesh) Agent() *agent.InventoryAgent { return m.agent }

// Model returns the model the agent drives.
func (m *Mesh) Model() model.Model { return m.llm }

// NewSession opens an empty inventory session that logs through the mesh logger.
func (m *Mesh) NewSession(optFns ...func(o *session.Options)) *session.Session {
	return session.New(append([]func(o *session.Options){
		func(o *session.Options) { o.Logger = m.opts.Logger },
	}, optFns...)...)
}

// Run resolves prompt into ledger operations on sess.
func (m *Mesh) Run(ctx context.Context, sess *session.Session, prompt string) (*agent.RunResult, error) {
	return m.agent.Run(ctx, sess, prompt)
}

// DemoScript answers config.DefaultPrompts in order: one tool call followed
// by a short confirmation per prompt.
func DemoScript() []model.Response {
	call := func(name, args string) model.Response {
		return model.ToolCallResponse(core.FunctionCall{ID: core.NewID(), Name: name, Arguments: args})
	}

	return []model.Response{
		call("add_item", `{"item_id":1,"name":"Laptop","quantity":10,"price":1200}`),
		model.TextResponse("Item 'Laptop' added with ID 1."),
		call("update_item", `{"item_id":1,"quantity":15,"price":1350}`),
		model.TextResponse("Item 'Laptop' updated: quantity=15, price=1350.0"),
		call("delete_item", `{"item_id":1}`),
		model.TextResponse("Item 'Laptop' deleted."),
		call("save_and_close", `{}`),
		model.TextResponse("Session closed. Final inventory: []"),
	}
}
