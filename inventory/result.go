package inventory

import (
	"fmt"
	"strings"
)

// Outcome classifies a handler result.
type Outcome int

const (
	// OutcomeOK means the operation took effect (or, for save_and_close, reported).
	OutcomeOK Outcome = iota
	// OutcomeNotFound means the referenced item id does not exist.
	OutcomeNotFound
	// OutcomeNoOp means update_item was called without any field to change.
	OutcomeNoOp
	// OutcomeInvalid means the payload violated an item constraint.
	OutcomeInvalid
	// OutcomeCancelled means the call was dropped before it reached the store.
	OutcomeCancelled
)

// String returns a short lowercase label suitable for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeNoOp:
		return "no_op"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is what every handler returns. Message is the human-readable text
// handed back to the caller; the other fields carry the same facts in typed form.
type Result struct {
	Op      Op
	Outcome Outcome
	Message string
	// Item is the affected item after the operation (or the removed one for delete).
	Item *Item
	// Items is the full report of save_and_close.
	Items []Item
	// Err is set when Outcome is OutcomeInvalid.
	Err *ValidationError
}

// OK reports whether the operation took effect.
func (r Result) OK() bool { return r.Outcome == OutcomeOK }

// String returns Message.
func (r Result) String() string { return r.Message }

const (
	msgNotFound = "Item not found."
	msgNoFields = "No fields to update. Provide at least one of: name, quantity, price."
)

func notFound(op Op) Result {
	return Result{Op: op, Outcome: OutcomeNotFound, Message: msgNotFound}
}

func invalid(op Op, err *ValidationError) Result {
	return Result{
		Op:      op,
		Outcome: OutcomeInvalid,
		Message: fmt.Sprintf("Invalid %s: %s. Inventory unchanged.", err.Field, err.Message),
		Err:     err,
	}
}

func formatReport(items []Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return "Session closed. Final inventory: [" + strings.Join(parts, ", ") + "]"
}
