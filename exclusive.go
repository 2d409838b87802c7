package cell

// Exclusive is a slot the caller holds exclusive access to for the duration
// of an accessor's life. Please use NewExclusive to create instance.
//
// The slot performs no synchronization and no borrow checking: the embedding
// application guarantees that nothing else reads or writes the slot while an
// accessor built over it is alive. It is not safe for concurrent use.
type Exclusive[V any] struct {
	t       *trait
	val     V
	present bool
}

// NewExclusive creates an empty Exclusive slot.
func NewExclusive[V any](options ...func(cfg *Config)) *Exclusive[V] {
	cfg := Config{}
	for _, option := range options {
		option(&cfg)
	}

	return &Exclusive[V]{t: newTrait(cfg)}
}

// ExpireWith drops the stored value if expiration returns true for it.
//
// The predicate is not invoked on an empty slot.
func (s *Exclusive[V]) ExpireWith(expiration func(V) bool) {
	if !s.present {
		return
	}

	if expiration(s.val) {
		var zero V

		s.val = zero
		s.present = false
		s.t.expired()
	}
}

// GetOrInsertWith returns a pointer to the stored value, filling an empty
// slot with the filler result first. The filler runs at most once and only
// for an empty slot.
//
// The returned pointer stays valid while the caller keeps its exclusive
// access discipline, Set and Reset invalidate it.
func (s *Exclusive[V]) GetOrInsertWith(filler func() V) *V {
	if s.present {
		s.t.hit()

		return &s.val
	}

	s.t.miss()
	s.val = filler()
	s.present = true
	s.t.built()

	return &s.val
}

// MaybeGetOrInsertWith is GetOrInsertWith for a filler that may produce
// nothing. A filler returning false leaves the slot empty, and the access
// reports no value. The filler is not invoked for a non-empty slot.
func (s *Exclusive[V]) MaybeGetOrInsertWith(filler func() (V, bool)) (*V, bool) {
	if s.present {
		s.t.hit()

		return &s.val, true
	}

	s.t.miss()

	v, ok := filler()
	if !ok {
		s.t.buildFailed()

		return nil, false
	}

	s.val = v
	s.present = true
	s.t.built()

	return &s.val, true
}

// Access builds an accessor that will expire, then lazily fill this slot on
// first Get or Take. Construction has no side effects.
func (s *Exclusive[V]) Access(expiration func(V) bool, filler func() V) *Accessor[V, *V] {
	return newAccessor[V, *V](s, expiration, filler)
}

// MaybeAccess is Access for a filler that may produce nothing.
func (s *Exclusive[V]) MaybeAccess(expiration func(V) bool, filler func() (V, bool)) *MaybeAccessor[V, *V] {
	return newMaybeAccessor[V, *V](s, expiration, filler)
}

// Set stores a value, replacing any previous one.
func (s *Exclusive[V]) Set(v V) {
	s.val = v
	s.present = true
}

// Reset empties the slot.
func (s *Exclusive[V]) Reset() {
	var zero V

	s.val = zero
	s.present = false
}

// Present reports whether the slot holds a value.
func (s *Exclusive[V]) Present() bool {
	return s.present
}

// Peek returns the stored value without triggering fill or expiration.
func (s *Exclusive[V]) Peek() (V, bool) {
	return s.val, s.present
}
