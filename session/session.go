package session

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/stockmesh/core"
	"github.com/hupe1980/stockmesh/inventory"
	"github.com/hupe1980/stockmesh/logging"
)

// Options configures a Session.
type Options struct {
	// ID overrides the generated session id.
	ID string
	// Dispatcher defaults to inventory.NewDispatcher().
	Dispatcher *inventory.Dispatcher
	// Logger defaults to logging.NoOpLogger.
	Logger logging.Logger
	// Clock is used for the dispatch duration field.
	Clock func() time.Time
}

// Session is a single-writer wrapper around one inventory store.
// It is safe for concurrent use; calls are applied one at a time.
type Session struct {
	id         string
	mu         sync.Mutex
	store      *inventory.Store
	dispatcher *inventory.Dispatcher
	logger     logging.Logger
	clock      func() time.Time
	created    time.Time
	calls      int
}

var _ core.Ledger = (*Session)(nil)

// New creates a session with an empty store.
func New(optFns ...func(o *Options)) *Session {
	opts := Options{
		Dispatcher: inventory.NewDispatcher(),
		Logger:     logging.NoOpLogger{},
		Clock:      time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.ID == "" {
		opts.ID = core.NewID()
	}

	return &Session{
		id:         opts.ID,
		store:      inventory.NewStore(),
		dispatcher: opts.Dispatcher,
		logger:     logging.With(opts.Logger, "session_id", opts.ID),
		clock:      opts.Clock,
		created:    opts.Clock(),
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Created returns the session creation time.
func (s *Session) Created() time.Time { return s.created }

// Dispatch applies call to the session store. The context is only consulted
// before taking the lock; a started dispatch always completes.
func (s *Session) Dispatch(ctx context.Context, call inventory.Call) inventory.Result {
	if ctx != nil && ctx.Err() != nil {
		s.logger.Warn("inventory.dispatch", "op", call.Op.String(),
			"outcome", inventory.OutcomeCancelled.String(), "error", ctx.Err().Error())
		return inventory.Result{
			Op:      call.Op,
			Outcome: inventory.OutcomeCancelled,
			Message: "Operation cancelled; inventory unchanged.",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.clock()
	res := s.dispatcher.Dispatch(s.store, call)
	s.calls++

	args := []any{
		"op", call.Op.String(),
		"outcome", res.Outcome.String(),
		"items", s.store.Len(),
		"duration_ms", s.clock().Sub(start).Milliseconds(),
	}

	switch res.Outcome {
	case inventory.OutcomeOK:
		s.logger.Info("inventory.dispatch", args...)
	case inventory.OutcomeInvalid:
		s.logger.Warn("inventory.dispatch", append(args, "error", res.Err.Error())...)
	default:
		s.logger.Debug("inventory.dispatch", args...)
	}

	return res
}

// Report runs save_and_close.
func (s *Session) Report(ctx context.Context) inventory.Result {
	return s.Dispatch(ctx, inventory.SaveAndClose())
}

// Items returns the current snapshot as a slice.
func (s *Session) Items() []inventory.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Items()
}

// Calls returns how many operations have been dispatched.
func (s *Session) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
