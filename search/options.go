package search

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the knobs and callbacks of one search.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// Logger receives debug-level step events.
	Logger *slog.Logger

	// MaxDepth, if > 0, stops expansion of chains holding MaxDepth elements.
	// Such chains are still recorded. 0 disables the limit.
	MaxDepth int

	// OnEnqueue is called for every tracker added to the queue with its
	// leaf uid, chain length and priority.
	OnEnqueue func(uid string, depth int, priority float64)

	// OnDequeue is called for every popped tracker, before the visited check.
	OnDequeue func(uid string, depth int)

	// OnDiscard is called when a popped tracker's leaf was already visited.
	OnDiscard func(uid string, depth int)

	// OnVisit is called when a tracker is accepted. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(uid string, depth int) error

	// OnFinish is called once with the terminal state and counters. It is
	// not called when the search aborts with an error.
	OnFinish func(state State, stats Stats)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - no depth limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.DiscardHandler),
		MaxDepth:  0,
		OnEnqueue: func(string, int, float64) {},
		OnDequeue: func(string, int) {},
		OnDiscard: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
		OnFinish:  func(State, Stats) {},
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a structured logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth bounds chain length.
//
//	d > 0: chains of d elements are recorded but not expanded
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Hooks compose: each With* hook runs after the ones registered before it.

// WithOnEnqueue registers a callback run on every enqueue.
func WithOnEnqueue(fn func(uid string, depth int, priority float64)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnEnqueue
		o.OnEnqueue = func(uid string, depth int, p float64) {
			prev(uid, depth, p)
			fn(uid, depth, p)
		}
	}
}

// WithOnDequeue registers a callback run on every pop.
func WithOnDequeue(fn func(uid string, depth int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnDequeue
		o.OnDequeue = func(uid string, depth int) {
			prev(uid, depth)
			fn(uid, depth)
		}
	}
}

// WithOnDiscard registers a callback run when a revisit is dropped.
func WithOnDiscard(fn func(uid string, depth int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnDiscard
		o.OnDiscard = func(uid string, depth int) {
			prev(uid, depth)
			fn(uid, depth)
		}
	}
}

// WithOnVisit registers a callback run on every accepted tracker;
// returning an error stops the search.
func WithOnVisit(fn func(uid string, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnVisit
		o.OnVisit = func(uid string, depth int) error {
			if err := prev(uid, depth); err != nil {
				return err
			}
			return fn(uid, depth)
		}
	}
}

// WithOnFinish registers a callback run once the search terminates.
func WithOnFinish(fn func(state State, stats Stats)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnFinish
		o.OnFinish = func(s State, st Stats) {
			prev(s, st)
			fn(s, st)
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
