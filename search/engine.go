package search

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathq/core"
	"github.com/katalvlaran/pathq/queue"
	"github.com/katalvlaran/pathq/tracker"
)

// walker encapsulates the mutable state of one QueueSearch call.
type walker[E core.Element] struct {
	m       core.ElementMap[E]
	q       queue.Queue[Entry[E]]
	weigh   Weigher[E]
	opts    Options
	debug   bool
	endUID  string
	visited map[string]struct{}
	front   *frontier[E]
	res     *Result[E]
}

// QueueSearch drains q from m.Start() until m.End() is reached or q runs
// dry. The queue discipline and weigh together decide the traversal order;
// the loop itself is the same for every algorithm:
//
//  1. empty queue → Exhausted
//  2. pop tracker T
//  3. leaf already visited → discard T
//  4. mark leaf visited, record T and prune the entry keyed by T's previous uid
//  5. leaf is the end → Found
//  6. otherwise enqueue T extended by every successor of the leaf
//
// Successors are enqueued even when already visited; the visited check is
// done lazily at pop time.
//
// Errors: ErrNilMap, ErrNilQueue, ErrNilWeigher, ErrDirtyQueue,
// ErrOptionViolation, ErrBadPriority, context errors, wrapped OnVisit
// errors, wrapped ElementMap errors (e.g. core.ErrUnknownIdentity),
// ErrEngine.
//
// Complexity: O(V + E) pops; each push costs what q.Add costs.
func QueueSearch[E core.Element](m core.ElementMap[E], q queue.Queue[Entry[E]], weigh Weigher[E], opts ...Option) (*Result[E], error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if q == nil {
		return nil, ErrNilQueue
	}
	if weigh == nil {
		return nil, ErrNilWeigher
	}
	if n := q.Len(); n != 0 {
		return nil, fmt.Errorf("%w: holds %d entries", ErrDirtyQueue, n)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker[E]{
		m:       m,
		q:       q,
		weigh:   weigh,
		opts:    o,
		debug:   o.Logger.Enabled(o.Ctx, slog.LevelDebug),
		endUID:  m.End().UID(),
		visited: make(map[string]struct{}),
		front:   newFrontier[E](),
		res:     &Result[E]{Solution: []E{}, State: Running},
	}

	root, err := tracker.New(m.Start())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngine, err)
	}
	if err = w.enqueue(root); err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}
	w.res.Searches = w.front.snapshot()
	w.opts.OnFinish(w.res.State, w.res.Stats)
	if w.debug {
		w.opts.Logger.Debug("search: finished",
			"state", w.res.State.String(),
			"popped", w.res.Stats.Popped,
			"solution_len", len(w.res.Solution),
		)
	}

	return w.res, nil
}

// loop runs the state machine until a terminal state or an error.
func (w *walker[E]) loop() error {
	for w.res.State == Running {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if w.q.Len() == 0 {
			w.res.State = Exhausted
			break
		}
		item, err := w.q.Get()
		if err != nil {
			return fmt.Errorf("%w: pop after non-empty check: %v", ErrEngine, err)
		}
		if err = w.step(item); err != nil {
			return err
		}
	}

	return nil
}

// step handles one popped entry.
func (w *walker[E]) step(item Entry[E]) error {
	t := item.Tracker
	leaf := t.Last().UID()
	depth := t.Len()
	w.res.Stats.Popped++
	w.opts.OnDequeue(leaf, depth)

	if _, seen := w.visited[leaf]; seen {
		w.res.Stats.Discarded++
		w.opts.OnDiscard(leaf, depth)
		if w.debug {
			w.opts.Logger.Debug("search: discarded", "uid", leaf, "depth", depth)
		}
		return nil
	}

	w.visited[leaf] = struct{}{}
	w.front.record(t)
	w.res.Stats.Accepted++
	if w.debug {
		w.opts.Logger.Debug("search: accepted", "uid", leaf, "depth", depth, "priority", item.Priority)
	}
	if err := w.opts.OnVisit(leaf, depth); err != nil {
		return fmt.Errorf("search: OnVisit error at %q: %w", leaf, err)
	}

	if leaf == w.endUID {
		w.res.State = Found
		w.res.Solution = append(make([]E, 0, depth), t.Elements()...)
		return nil
	}
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	return w.expand(t)
}

// expand enqueues t extended by every successor of its leaf.
func (w *walker[E]) expand(t *tracker.Tracker[E]) error {
	leaf := t.Last().UID()
	next, err := w.m.Next(leaf)
	if err != nil {
		return fmt.Errorf("search: next of %q: %w", leaf, err)
	}
	for _, n := range next {
		if err = w.enqueue(t.Extend(n)); err != nil {
			return err
		}
	}

	return nil
}

// enqueue weighs t and adds it to the queue. NaN priorities are rejected
// with ErrBadPriority.
func (w *walker[E]) enqueue(t *tracker.Tracker[E]) error {
	p := w.weigh(t.Elements())
	if math.IsNaN(p) {
		return fmt.Errorf("%w: chain %s", ErrBadPriority, t)
	}
	w.q.Add(Entry[E]{Tracker: t, Priority: p})
	w.res.Stats.Enqueued++
	w.opts.OnEnqueue(t.Last().UID(), t.Len(), p)

	return nil
}

// frontier is the insertion-ordered snapshot map of leading-edge branches.
type frontier[E core.Element] struct {
	keys   []string
	chains map[string][]E
}

func newFrontier[E core.Element]() *frontier[E] {
	return &frontier[E]{chains: make(map[string][]E)}
}

// record stores t under its uid and drops the branch it extends.
func (f *frontier[E]) record(t *tracker.Tracker[E]) {
	if prev, ok := t.PreviousUID(); ok {
		delete(f.chains, prev)
	}
	uid := t.UID()
	f.keys = append(f.keys, uid)
	f.chains[uid] = t.Elements()
}

// snapshot re-indexes surviving branches 0..n-1 in insertion order.
func (f *frontier[E]) snapshot() map[int][]E {
	out := make(map[int][]E, len(f.chains))
	for _, k := range f.keys {
		chain, ok := f.chains[k]
		if !ok {
			continue
		}
		out[len(out)] = append([]E(nil), chain...)
	}

	return out
}
