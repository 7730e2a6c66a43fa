package event

import "sync"

// ConcurrentEvent is an ordered callback registry safe for use from
// multiple goroutines. Subscribe, Unsubscribe, and invocation all take the
// same exclusive lock, and handlers run while the lock is held: a handler
// subscribed mid-invocation is either fully visible to that invocation or
// not at all, never partially.
//
// Because the lock covers the whole handler iteration, a handler that
// calls back into the registry it is being fired from deadlocks. Handlers
// must not re-enter their own registry; this is a contract, not a
// detected condition. No timeout is provided; a blocked operation waits
// indefinitely.
type ConcurrentEvent[T any] struct {
	mu       sync.Mutex
	handlers []entry[T]
	name     string
	metrics  *PrometheusMetrics
}

// NewConcurrent creates an empty concurrent registry and the trigger that
// fires it. The caller becomes the owner; code holding only the
// *ConcurrentEvent cannot invoke.
func NewConcurrent[T any](opts ...Options) (*ConcurrentEvent[T], ConcurrentTrigger[T]) {
	e := &ConcurrentEvent[T]{name: defaultName}
	if len(opts) > 0 {
		e.metrics = opts[0].Metrics
		if opts[0].Name != "" {
			e.name = opts[0].Name
		}
	}

	return e, ConcurrentTrigger[T]{ev: e}
}

// Subscribe appends fn to the registry. The same handler may be subscribed
// multiple times and fires once per subscription. A nil handler is ignored.
func (e *ConcurrentEvent[T]) Subscribe(fn Handler[T]) {
	if fn == nil {
		return
	}

	key := handleKey(fn)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.handlers = append(e.handlers, entry[T]{fn: fn, key: key})

	if e.metrics != nil {
		e.metrics.subscribes.WithLabelValues(e.name).Inc()
		e.metrics.handlers.WithLabelValues(e.name).Set(float64(len(e.handlers)))
	}
}

// Unsubscribe removes every occurrence of fn, preserving the relative
// order of the remaining handlers. Removing a handler that was never
// subscribed is a no-op.
func (e *ConcurrentEvent[T]) Unsubscribe(fn Handler[T]) {
	if fn == nil {
		return
	}

	key := handleKey(fn)

	e.mu.Lock()
	defer e.mu.Unlock()

	removed := removeAll(&e.handlers, key)

	if removed > 0 && e.metrics != nil {
		e.metrics.unsubscribes.WithLabelValues(e.name).Add(float64(removed))
		e.metrics.handlers.WithLabelValues(e.name).Set(float64(len(e.handlers)))
	}
}

// Len returns the number of subscribed handlers, counting duplicates.
func (e *ConcurrentEvent[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.handlers)
}

// Clear removes all handlers. It exists for test and maintenance code;
// a registry is never emptied implicitly.
func (e *ConcurrentEvent[T]) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.handlers = nil

	if e.metrics != nil {
		e.metrics.handlers.WithLabelValues(e.name).Set(0)
	}
}

// ConcurrentTrigger fires the registry it was created with. Only the
// constructor hands one out. The zero ConcurrentTrigger is bound to no
// registry and does nothing.
type ConcurrentTrigger[T any] struct {
	ev *ConcurrentEvent[T]
}

// Invoke calls every subscribed handler with arg, front to back in
// subscription order, holding the registry lock for the whole iteration.
// A panicking handler aborts the remaining iteration, releases the lock,
// and the panic surfaces at the invocation site.
func (t ConcurrentTrigger[T]) Invoke(arg T) {
	e := t.ev
	if e == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.metrics != nil {
		e.metrics.invocations.WithLabelValues(e.name).Inc()
	}

	for _, h := range e.handlers {
		if e.metrics != nil {
			e.metrics.calls.WithLabelValues(e.name).Inc()
		}

		h.fn(arg)
	}
}
