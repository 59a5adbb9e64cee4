package agent

import "github.com/hupe1980/stockmesh/internal/util"

// DefaultInstruction lists the ledger tools for the model.
const DefaultInstruction = `You are {{.AgentName}}, an Inventory Manager.
- To add an item, call 'add_item'.
- To delete an item, call 'delete_item'.
- To update an item, call 'update_item'. Omit fields that should keep their current value.
- To save and close the session, call 'save_and_close'.
Always operate on the current inventory of session {{.SessionID}}.
Available tools: {{join ", " .Tools}}.`

// InstructionData is the data available to instruction templates.
type InstructionData struct {
	AgentName string
	SessionID string
	Tools     []string
}

// Provider supplies instruction text at runtime.
type Provider interface {
	Instruction(data InstructionData) (string, error)
}

// Func adapts an ordinary function to Provider.
type Func func(data InstructionData) (string, error)

// Instruction implements Provider.
func (f Func) Instruction(data InstructionData) (string, error) { return f(data) }

// Instruction is either a template string or a dynamic provider.
type Instruction struct {
	text     string
	provider Provider
}

// NewInstructionFromText creates an Instruction from a text/template string.
func NewInstructionFromText(text string) Instruction { return Instruction{text: text} }

// NewInstructionFromFunc creates an Instruction from a function.
func NewInstructionFromFunc(f func(data InstructionData) (string, error)) Instruction {
	return Instruction{provider: Func(f)}
}

// Resolve returns the instruction text for data.
func (i Instruction) Resolve(data InstructionData) (string, error) {
	if i.provider != nil {
		return i.provider.Instruction(data)
	}
	return util.RenderTemplate(i.text, data)
}
