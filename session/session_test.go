package session

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/stockmesh/inventory"
	"github.com/hupe1980/stockmesh/logging"
)

func TestNew_GeneratesID(t *testing.T) {
	a := New()
	b := New()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())

	c := New(func(o *Options) { o.ID = "fixed" })
	assert.Equal(t, "fixed", c.ID())
	assert.Empty(t, c.Items())
}

func TestDispatch_Scenario(t *testing.T) {
	ctx := context.Background()
	s := New()

	res := s.Dispatch(ctx, inventory.AddItem(1, "Laptop", 10, 1200))
	require.True(t, res.OK())

	res = s.Dispatch(ctx, inventory.UpdateItem(inventory.UpdateFromSentinels(1, "", 15, 1350)))
	require.True(t, res.OK())

	res = s.Dispatch(ctx, inventory.DeleteItem(1))
	assert.Equal(t, "Item 'Laptop' deleted.", res.Message)

	res = s.Report(ctx)
	assert.Equal(t, "Session closed. Final inventory: []", res.Message)
	assert.Equal(t, 4, s.Calls())
}

func TestDispatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	res := s.Dispatch(ctx, inventory.AddItem(1, "Laptop", 1, 1))
	assert.False(t, res.OK())
	assert.Equal(t, inventory.OutcomeCancelled, res.Outcome)
	assert.Equal(t, "cancelled", res.Outcome.String())
	assert.NotEqual(t, inventory.OutcomeNoOp, res.Outcome)
	assert.Equal(t, "Operation cancelled; inventory unchanged.", res.Message)
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.Calls())
}

func TestDispatch_Serialized(t *testing.T) {
	s := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.Dispatch(ctx, inventory.AddItem(id, "item", id, 1))
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Items(), 50)
	assert.Equal(t, 50, s.Calls())
}

func TestDispatch_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelDebug, Format: "text", Output: &buf})

	s := New(func(o *Options) {
		o.ID = "s-log"
		o.Logger = logger
	})
	s.Dispatch(context.Background(), inventory.AddItem(1, "", 1, 1))

	out := buf.String()
	assert.True(t, strings.Contains(out, "inventory.dispatch"), out)
	assert.Contains(t, out, "session_id=s-log")
	assert.Contains(t, out, "outcome=invalid")
	assert.Contains(t, out, "level=WARN")
}

func TestDispatch_CancelledLogsDistinctOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelDebug, Format: "text", Output: &buf})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(func(o *Options) { o.Logger = logger })
	s.Dispatch(ctx, inventory.UpdateItem(inventory.UpdateItemInput{ItemID: 1}))

	out := buf.String()
	assert.Contains(t, out, "outcome=cancelled")
	assert.NotContains(t, out, "outcome=no_op")
}
