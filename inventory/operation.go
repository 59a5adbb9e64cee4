package inventory

import "fmt"

// Op identifies one of the four ledger operations.
type Op int

const (
	// OpAddItem inserts or overwrites an item.
	OpAddItem Op = iota
	// OpDeleteItem removes an item.
	OpDeleteItem
	// OpUpdateItem changes selected fields of an existing item.
	OpUpdateItem
	// OpSaveAndClose reports the full inventory.
	OpSaveAndClose
)

var opNames = [...]string{
	OpAddItem:      "add_item",
	OpDeleteItem:   "delete_item",
	OpUpdateItem:   "update_item",
	OpSaveAndClose: "save_and_close",
}

// Ops lists every operation in declaration order.
func Ops() []Op {
	return []Op{OpAddItem, OpDeleteItem, OpUpdateItem, OpSaveAndClose}
}

// String returns the wire name of the operation.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// ParseOp maps a wire name back to its Op.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// AddItemInput is the add_item payload.
type AddItemInput struct {
	ItemID   int
	Name     string
	Quantity int
	Price    float64
}

// DeleteItemInput is the delete_item payload.
type DeleteItemInput struct {
	ItemID int
}

// UpdateItemInput is the update_item payload. A nil field keeps the current value.
type UpdateItemInput struct {
	ItemID   int
	Name     *string
	Quantity *int
	Price    *float64
}

// HasChanges reports whether at least one field is set.
func (in UpdateItemInput) HasChanges() bool {
	return in.Name != nil || in.Quantity != nil || in.Price != nil
}

// Call is a resolved operation plus its payload. Only the field matching Op is read.
type Call struct {
	Op     Op
	Add    AddItemInput
	Delete DeleteItemInput
	Update UpdateItemInput
}

// AddItem builds an add_item call.
func AddItem(id int, name string, quantity int, price float64) Call {
	return Call{Op: OpAddItem, Add: AddItemInput{ItemID: id, Name: name, Quantity: quantity, Price: price}}
}

// DeleteItem builds a delete_item call.
func DeleteItem(id int) Call {
	return Call{Op: OpDeleteItem, Delete: DeleteItemInput{ItemID: id}}
}

// UpdateItem builds an update_item call from optional fields.
func UpdateItem(in UpdateItemInput) Call {
	return Call{Op: OpUpdateItem, Update: in}
}

// SaveAndClose builds a save_and_close call.
func SaveAndClose() Call {
	return Call{Op: OpSaveAndClose}
}

// Sentinels used by the update_item wire schema to mean "keep current".
const (
	KeepName     = ""
	KeepQuantity = -1
	KeepPrice    = -1.0
)

// UpdateFromSentinels converts the sentinel convention of the update_item
// wire schema into optional fields. A value equal to its sentinel is unset,
// so quantity -1 and price -1.0 can never be written through this path.
func UpdateFromSentinels(id int, name string, quantity int, price float64) UpdateItemInput {
	in := UpdateItemInput{ItemID: id}
	if name != KeepName {
		in.Name = &name
	}
	if quantity != KeepQuantity {
		in.Quantity = &quantity
	}
	if price != KeepPrice {
		in.Price = &price
	}
	return in
}
