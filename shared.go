package cell

// Shared is a slot with runtime-checked borrows. Please use NewShared to
// create instance.
//
// The slot is in one of three borrow states: free, shared by n read guards,
// or exclusively borrowed for a store. Acquiring a borrow that conflicts
// with the current state panics with ErrBorrowConflict: a conflict is a bug
// in the embedding application, it is never blocked on or retried.
//
// The borrow check is a contract check, not a lock. The slot must not be
// shared across goroutines.
type Shared[V any] struct {
	t       *trait
	val     V
	present bool

	// borrows is 0 when free, the reader count when shared, -1 when
	// exclusively borrowed.
	borrows int
}

// NewShared creates an empty Shared slot.
func NewShared[V any](options ...func(cfg *Config)) *Shared[V] {
	cfg := Config{}
	for _, option := range options {
		option(&cfg)
	}

	return &Shared[V]{t: newTrait(cfg)}
}

// Ref is a scoped read guard over a shared slot's value.
//
// The guard keeps the slot borrowed until Release is called. Using a guard
// after release panics with ErrGuardReleased.
type Ref[V any] struct {
	slot     *Shared[V]
	released bool
}

// Value returns the guarded value.
func (r *Ref[V]) Value() V {
	if r.released {
		panic(ErrGuardReleased)
	}

	return r.slot.val
}

// Release ends the borrow. Release must be called exactly once.
func (r *Ref[V]) Release() {
	if r.released {
		panic(ErrGuardReleased)
	}

	r.released = true
	r.slot.borrows--
}

func (s *Shared[V]) acquireShared() *Ref[V] {
	if s.borrows < 0 {
		s.t.borrowConflict()
		panic(ErrBorrowConflict)
	}

	s.borrows++

	return &Ref[V]{slot: s}
}

func (s *Shared[V]) acquireExclusive() (release func()) {
	if s.borrows != 0 {
		s.t.borrowConflict()
		panic(ErrBorrowConflict)
	}

	s.borrows = -1

	return func() { s.borrows = 0 }
}

// store replaces slot contents under a scoped exclusive borrow.
func (s *Shared[V]) store(v V, present bool) {
	release := s.acquireExclusive()
	defer release()

	s.val = v
	s.present = present
}

// ExpireWith drops the stored value if expiration returns true for it.
//
// The predicate runs under a shared borrow, the drop under an exclusive
// one, so a predicate must not hold other borrows of the same slot.
func (s *Shared[V]) ExpireWith(expiration func(V) bool) {
	if !s.present {
		return
	}

	stale := func() bool {
		ref := s.acquireShared()
		defer ref.Release()

		return expiration(ref.Value())
	}()

	if !stale {
		return
	}

	var zero V

	s.store(zero, false)
	s.t.expired()
}

// GetOrInsertWith returns a read guard over the stored value, filling an
// empty slot with the filler result first. The filler runs at most once and
// only for an empty slot.
//
// The filler runs with the slot unborrowed, the store takes a transient
// exclusive borrow, and only then is the returned shared borrow acquired.
// The caller owns the returned guard and must Release it.
func (s *Shared[V]) GetOrInsertWith(filler func() V) *Ref[V] {
	if s.present {
		s.t.hit()
	} else {
		s.t.miss()
		s.store(filler(), true)
		s.t.built()
	}

	return s.acquireShared()
}

// MaybeGetOrInsertWith is GetOrInsertWith for a filler that may produce
// nothing. A filler returning false leaves the slot empty, and the access
// reports no value. The filler is not invoked for a non-empty slot.
func (s *Shared[V]) MaybeGetOrInsertWith(filler func() (V, bool)) (*Ref[V], bool) {
	if s.present {
		s.t.hit()

		return s.acquireShared(), true
	}

	s.t.miss()

	v, ok := filler()
	if !ok {
		s.t.buildFailed()

		return nil, false
	}

	s.store(v, true)
	s.t.built()

	return s.acquireShared(), true
}

// Access builds an accessor that will expire, then lazily fill this slot on
// first Get or Take. Construction has no side effects.
func (s *Shared[V]) Access(expiration func(V) bool, filler func() V) *Accessor[V, *Ref[V]] {
	return newAccessor[V, *Ref[V]](s, expiration, filler)
}

// MaybeAccess is Access for a filler that may produce nothing.
func (s *Shared[V]) MaybeAccess(expiration func(V) bool, filler func() (V, bool)) *MaybeAccessor[V, *Ref[V]] {
	return newMaybeAccessor[V, *Ref[V]](s, expiration, filler)
}

// Set stores a value under a transient exclusive borrow, replacing any
// previous one.
func (s *Shared[V]) Set(v V) {
	s.store(v, true)
}

// Reset empties the slot under a transient exclusive borrow.
func (s *Shared[V]) Reset() {
	var zero V

	s.store(zero, false)
}

// Present reports whether the slot holds a value.
func (s *Shared[V]) Present() bool {
	return s.present
}

// Peek returns a copy of the stored value under a transient shared borrow,
// without triggering fill or expiration.
func (s *Shared[V]) Peek() (V, bool) {
	if !s.present {
		var zero V

		return zero, false
	}

	ref := s.acquireShared()
	defer ref.Release()

	return ref.Value(), true
}
