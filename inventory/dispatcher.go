package inventory

import "fmt"

// Handler applies one operation to a store.
type Handler func(s *Store, c Call) Result

// Dispatcher routes calls to handlers through a fixed table indexed by Op.
// A Dispatcher holds no reference to any store between calls.
type Dispatcher struct {
	handlers [len(opNames)]Handler
}

// NewDispatcher returns a dispatcher wired with the four ledger handlers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: [len(opNames)]Handler{
		OpAddItem:      addItem,
		OpDeleteItem:   deleteItem,
		OpUpdateItem:   updateItem,
		OpSaveAndClose: saveAndClose,
	}}
}

// Dispatch runs the handler for c.Op against s. An Op outside the closed
// set yields an OutcomeInvalid result and leaves s untouched.
func (d *Dispatcher) Dispatch(s *Store, c Call) Result {
	if c.Op < 0 || int(c.Op) >= len(d.handlers) || d.handlers[c.Op] == nil {
		return invalid(c.Op, &ValidationError{Field: "op", Value: int(c.Op), Message: "unknown operation"})
	}
	return d.handlers[c.Op](s, c)
}

var defaultDispatcher = NewDispatcher()

// Dispatch runs c against s with the default handler table.
func Dispatch(s *Store, c Call) Result {
	return defaultDispatcher.Dispatch(s, c)
}

func addItem(s *Store, c Call) Result {
	in := c.Add
	if err := validateAdd(in); err != nil {
		return invalid(OpAddItem, err)
	}

	it := Item{ID: in.ItemID, Name: in.Name, Quantity: in.Quantity, Price: in.Price}
	s.Put(it)

	return Result{
		Op:      OpAddItem,
		Outcome: OutcomeOK,
		Message: fmt.Sprintf("Item '%s' added with ID %d.", it.Name, it.ID),
		Item:    &it,
	}
}

func deleteItem(s *Store, c Call) Result {
	removed, ok := s.Remove(c.Delete.ItemID)
	if !ok {
		return notFound(OpDeleteItem)
	}

	return Result{
		Op:      OpDeleteItem,
		Outcome: OutcomeOK,
		Message: fmt.Sprintf("Item '%s' deleted.", removed.Name),
		Item:    &removed,
	}
}

func updateItem(s *Store, c Call) Result {
	in := c.Update

	it, ok := s.Get(in.ItemID)
	if !ok {
		return notFound(OpUpdateItem)
	}

	if !in.HasChanges() {
		return Result{Op: OpUpdateItem, Outcome: OutcomeNoOp, Message: msgNoFields}
	}

	if err := validateUpdate(in); err != nil {
		return invalid(OpUpdateItem, err)
	}

	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.Price != nil {
		it.Price = *in.Price
	}

	s.Put(it)

	return Result{
		Op:      OpUpdateItem,
		Outcome: OutcomeOK,
		Message: fmt.Sprintf("Item '%s' updated: quantity=%d, price=%s", it.Name, it.Quantity, formatPrice(it.Price)),
		Item:    &it,
	}
}

func saveAndClose(s *Store, _ Call) Result {
	items := s.Items()

	return Result{
		Op:      OpSaveAndClose,
		Outcome: OutcomeOK,
		Message: formatReport(items),
		Items:   items,
	}
}
