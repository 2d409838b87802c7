package cell

// MaybeAccessor is an Accessor for a filler that may produce nothing.
// Please use MaybeAccess on a slot to create instance.
//
// Absence is a first-class outcome, not an error: a filler returning false
// resolves the accessor to a terminal "no value" state, and the filler is
// not retried by later Get calls on the same accessor.
type MaybeAccessor[V, R any] struct {
	storage    Storage[V, R]
	expiration func(V) bool
	filler     func() (V, bool)

	resolved R
	ok       bool
	known    bool
	consumed bool
}

func newMaybeAccessor[V, R any](s Storage[V, R], expiration func(V) bool, filler func() (V, bool)) *MaybeAccessor[V, R] {
	return &MaybeAccessor[V, R]{
		storage:    s,
		expiration: expiration,
		filler:     filler,
	}
}

func (a *MaybeAccessor[V, R]) resolve() {
	if a.known {
		return
	}

	storage, expiration, filler := a.storage, a.expiration, a.filler
	a.storage, a.expiration, a.filler = nil, nil, nil

	storage.ExpireWith(expiration)
	a.resolved, a.ok = storage.MaybeGetOrInsertWith(filler)
	a.known = true
}

// Get resolves the accessor if needed and returns the handle to the value,
// or a zero handle and false if the slot ended up empty. It can be called
// repeatedly, only the first call does any work.
func (a *MaybeAccessor[V, R]) Get() (R, bool) {
	if a.consumed {
		panic(ErrConsumed)
	}

	a.resolve()

	return a.resolved, a.ok
}

// Take resolves the accessor if needed and moves the handle out,
// consuming the accessor.
func (a *MaybeAccessor[V, R]) Take() (R, bool) {
	if a.consumed {
		panic(ErrConsumed)
	}

	a.resolve()

	r, ok := a.resolved, a.ok

	var zero R

	a.resolved = zero
	a.consumed = true

	return r, ok
}
