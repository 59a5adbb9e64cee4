package testutil

import (
	"context"
	"fmt"

	"github.com/hupe1980/stockmesh/inventory"
	"github.com/hupe1980/stockmesh/logging"
	"github.com/hupe1980/stockmesh/session"
)

// SessionBuilder provides a fluent helper for constructing seeded sessions.
// Example:
//
//	sess := NewSessionBuilder().ID("s1").Item(1, "Laptop", 10, 1200).Build()
type SessionBuilder struct {
	id     string
	logger logging.Logger
	items  []inventory.Item
}

// NewSessionBuilder creates a builder for an empty session.
func NewSessionBuilder() *SessionBuilder { return &SessionBuilder{} }

// ID fixes the session id (chainable).
func (b *SessionBuilder) ID(id string) *SessionBuilder { b.id = id; return b }

// Logger sets the session logger (chainable).
func (b *SessionBuilder) Logger(l logging.Logger) *SessionBuilder { b.logger = l; return b }

// Item seeds an item added before Build returns (chainable).
func (b *SessionBuilder) Item(id int, name string, quantity int, price float64) *SessionBuilder {
	b.items = append(b.items, inventory.Item{ID: id, Name: name, Quantity: quantity, Price: price})
	return b
}

// Build constructs the session and applies the seeded items through the
// dispatcher. It panics if a seeded item is rejected.
func (b *SessionBuilder) Build() *session.Session {
	sess := session.New(func(o *session.Options) {
		o.ID = b.id
		if b.logger != nil {
			o.Logger = b.logger
		}
	})

	for _, it := range b.items {
		res := sess.Dispatch(context.Background(), inventory.AddItem(it.ID, it.Name, it.Quantity, it.Price))
		if !res.OK() {
			panic(fmt.Sprintf("testutil: seed item %d: %s", it.ID, res.Message))
		}
	}

	return sess
}
