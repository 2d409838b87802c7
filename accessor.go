package cell

// Accessor is an ephemeral, single-use expire-then-fill pipeline over a
// slot. Please use Access on a slot to create instance.
//
// The first Get or Take resolves it: the expiration predicate runs against
// the current value, the filler fills an empty slot, and the resulting
// handle is captured. Later Get calls reuse the captured handle without
// re-running the predicate or the filler. Take moves the handle out and
// consumes the accessor, any use after Take panics with ErrConsumed.
type Accessor[V, R any] struct {
	storage    Storage[V, R]
	expiration func(V) bool
	filler     func() V

	resolved R
	known    bool
	consumed bool
}

func newAccessor[V, R any](s Storage[V, R], expiration func(V) bool, filler func() V) *Accessor[V, R] {
	return &Accessor[V, R]{
		storage:    s,
		expiration: expiration,
		filler:     filler,
	}
}

// resolve runs the expire-then-fill pipeline. It is a one-way transition,
// repeated calls are no-ops. The slot, predicate and filler are dropped on
// transition so that nothing can reach them twice.
func (a *Accessor[V, R]) resolve() {
	if a.known {
		return
	}

	storage, expiration, filler := a.storage, a.expiration, a.filler
	a.storage, a.expiration, a.filler = nil, nil, nil

	storage.ExpireWith(expiration)
	a.resolved = storage.GetOrInsertWith(filler)
	a.known = true
}

// Get resolves the accessor if needed and returns the handle to the value.
// It can be called repeatedly, only the first call does any work.
func (a *Accessor[V, R]) Get() R {
	if a.consumed {
		panic(ErrConsumed)
	}

	a.resolve()

	return a.resolved
}

// Take resolves the accessor if needed and moves the handle out,
// consuming the accessor.
func (a *Accessor[V, R]) Take() R {
	if a.consumed {
		panic(ErrConsumed)
	}

	a.resolve()

	r := a.resolved

	var zero R

	a.resolved = zero
	a.consumed = true

	return r
}
