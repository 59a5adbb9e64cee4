package tool

import (
	"fmt"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/inventory"
)

// AddItemArgs is the add_item argument object.
type AddItemArgs struct {
	ItemID   int     `json:"item_id" description:"Unique ID of the item"`
	Name     string  `json:"name" description:"Name of the item" minLength:"1"`
	Quantity int     `json:"quantity" description:"Quantity of the item" minimum:"0"`
	Price    float64 `json:"price" description:"Price of the item" minimum:"0"`
}

// DeleteItemArgs is the delete_item argument object.
type DeleteItemArgs struct {
	ItemID int `json:"item_id" description:"ID of the item to delete"`
}

// UpdateItemArgs is the update_item argument object. Omitted keys and the
// sentinel values "", -1 and -1.0 keep the current value.
type UpdateItemArgs struct {
	ItemID   int     `json:"item_id" description:"ID of the item to update"`
	Name     string  `json:"name,omitempty" description:"New name; leave empty to keep current" default:""`
	Quantity int     `json:"quantity,omitempty" description:"New quantity; use -1 to keep current" default:"-1"`
	Price    float64 `json:"price,omitempty" description:"New price; use -1.0 to keep current" default:"-1.0"`
}

// SetDefaults implements Defaulter.
func (a *UpdateItemArgs) SetDefaults() {
	a.Name = inventory.KeepName
	a.Quantity = inventory.KeepQuantity
	a.Price = inventory.KeepPrice
}

// SaveAndCloseArgs is the (empty) save_and_close argument object.
type SaveAndCloseArgs struct{}

// NewAddItemTool returns the add_item tool.
func NewAddItemTool() Tool {
	return NewTypedTool(inventory.OpAddItem.String(),
		"Add an item to the inventory. Adding an existing item_id replaces that item.",
		func(tc *core.ToolContext, a AddItemArgs) (any, error) {
			return dispatch(tc, inventory.AddItem(a.ItemID, a.Name, a.Quantity, a.Price))
		})
}

// NewDeleteItemTool returns the delete_item tool.
func NewDeleteItemTool() Tool {
	return NewTypedTool(inventory.OpDeleteItem.String(),
		"Delete an item from the inventory by its item_id.",
		func(tc *core.ToolContext, a DeleteItemArgs) (any, error) {
			return dispatch(tc, inventory.DeleteItem(a.ItemID))
		})
}

// NewUpdateItemTool returns the update_item tool.
func NewUpdateItemTool() Tool {
	return NewTypedTool(inventory.OpUpdateItem.String(),
		"Update the name, quantity or price of an existing item. Only provided fields change.",
		func(tc *core.ToolContext, a UpdateItemArgs) (any, error) {
			in := inventory.UpdateFromSentinels(a.ItemID, a.Name, a.Quantity, a.Price)
			return dispatch(tc, inventory.UpdateItem(in))
		})
}

// NewSaveAndCloseTool returns the save_and_close tool.
func NewSaveAndCloseTool() Tool {
	return NewTypedTool(inventory.OpSaveAndClose.String(),
		"Save and close the session, returning the final inventory.",
		func(tc *core.ToolContext, _ SaveAndCloseArgs) (any, error) {
			return dispatch(tc, inventory.SaveAndClose())
		})
}

// NewInventoryTools returns the four ledger tools in operation order.
func NewInventoryTools() []Tool {
	return []Tool{
		NewAddItemTool(),
		NewDeleteItemTool(),
		NewUpdateItemTool(),
		NewSaveAndCloseTool(),
	}
}

func dispatch(tc *core.ToolContext, call inventory.Call) (any, error) {
	ledger := tc.Ledger()
	if ledger == nil {
		return nil, fmt.Errorf("no session bound to tool context")
	}
	return ledger.Dispatch(tc.Context(), call), nil
}
