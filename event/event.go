// Package event provides ordered callback registries with owner-only
// invocation rights.
//
// A registry pairs an ordered list of subscribed handlers with a Trigger,
// the sole value able to fire them. Constructors return both: the owner
// keeps the Trigger private and hands out the registry, so other code can
// subscribe and unsubscribe handlers but has no way to invoke them.
// Invocation from outside the owner is a compile error, not a runtime
// check.
//
// Handlers must be named top-level functions, or package-level variables
// bound to them. Handler identity is the function's code entry point,
// which is what Unsubscribe compares; closures and method values do not
// carry a stable identity of that kind and are outside the contract.
//
// Event is for single-goroutine use. ConcurrentEvent has the same contract
// with every operation serialized through one mutex.
package event

import "reflect"

// defaultName labels registries in metrics when no name is configured.
const defaultName = "event"

// Handler is a callback registered with a registry. Only named top-level
// functions are valid handlers; see the package documentation.
type Handler[T any] func(T)

// Options configures a registry.
type Options struct {
	// Name labels this registry in metric series. Defaults to "event".
	Name string

	// Metrics enables Prometheus instrumentation when set. A single
	// instance may be shared by any number of registries.
	Metrics *PrometheusMetrics
}

type entry[T any] struct {
	fn  Handler[T]
	key uintptr
}

// Event is an ordered callback registry for single-goroutine use.
//
// Subscriptions are kept in insertion order and never deduplicated: a
// handler subscribed n times fires n times per invocation. An Event must
// not be copied; it is unique to its owner.
type Event[T any] struct {
	noCopy noCopy

	handlers []entry[T]
	name     string
	metrics  *PrometheusMetrics
}

// New creates an empty registry and the Trigger that fires it. The caller
// becomes the owner; code holding only the *Event cannot invoke.
func New[T any](opts ...Options) (*Event[T], Trigger[T]) {
	e := &Event[T]{name: defaultName}
	if len(opts) > 0 {
		e.metrics = opts[0].Metrics
		if opts[0].Name != "" {
			e.name = opts[0].Name
		}
	}

	return e, Trigger[T]{ev: e}
}

// Subscribe appends fn to the registry. The same handler may be subscribed
// multiple times and fires once per subscription. A nil handler is ignored.
func (e *Event[T]) Subscribe(fn Handler[T]) {
	if fn == nil {
		return
	}

	e.handlers = append(e.handlers, entry[T]{fn: fn, key: handleKey(fn)})

	if e.metrics != nil {
		e.metrics.subscribes.WithLabelValues(e.name).Inc()
		e.metrics.handlers.WithLabelValues(e.name).Set(float64(len(e.handlers)))
	}
}

// Unsubscribe removes every occurrence of fn, preserving the relative
// order of the remaining handlers. Removing a handler that was never
// subscribed is a no-op.
func (e *Event[T]) Unsubscribe(fn Handler[T]) {
	if fn == nil {
		return
	}

	removed := removeAll(&e.handlers, handleKey(fn))

	if removed > 0 && e.metrics != nil {
		e.metrics.unsubscribes.WithLabelValues(e.name).Add(float64(removed))
		e.metrics.handlers.WithLabelValues(e.name).Set(float64(len(e.handlers)))
	}
}

// Len returns the number of subscribed handlers, counting duplicates.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// Clear removes all handlers. It exists for test and maintenance code;
// a registry is never emptied implicitly.
func (e *Event[T]) Clear() {
	e.handlers = nil

	if e.metrics != nil {
		e.metrics.handlers.WithLabelValues(e.name).Set(0)
	}
}

// Trigger fires the registry it was created with. Only the constructor
// hands one out. The zero Trigger is bound to no registry and does
// nothing.
type Trigger[T any] struct {
	ev *Event[T]
}

// Invoke calls every subscribed handler with arg, front to back in
// subscription order. A panicking handler aborts the remaining iteration
// and the panic surfaces at the invocation site.
func (t Trigger[T]) Invoke(arg T) {
	e := t.ev
	if e == nil {
		return
	}

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

// handleKey returns the code entry point of fn, the identity compared by
// Unsubscribe.
func handleKey[T any](fn Handler[T]) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// removeAll drops every entry with the given key, compacting in place and
// keeping the survivors in order. It returns the number of entries removed.
func removeAll[T any](handlers *[]entry[T], key uintptr) int {
	kept := (*handlers)[:0]

	for _, h := range *handlers {
		if h.key != key {
			kept = append(kept, h)
		}
	}

	removed := len(*handlers) - len(kept)

	// Zero the tail so dropped handlers are not pinned by the backing array.
	for i := len(kept); i < len(*handlers); i++ {
		(*handlers)[i] = entry[T]{}
	}

	*handlers = kept

	return removed
}

// noCopy triggers the copylocks vet check when a containing type is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
