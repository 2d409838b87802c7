// Package cell provides a single-slot, lazily-filled, expiration-aware cache
// cell with a fluent accessor protocol.
//
// A slot holds zero or one value. Each access runs a one-time pipeline:
// expire the current value if a caller predicate says so, fill the slot if it
// is empty, and yield a handle to the value. Exclusive slots hand out plain
// pointers, shared slots hand out runtime borrow-checked read guards.
package cell

// Storage is a slot that can expire and lazily fill its value.
//
// V is the stored value type, R is the handle type yielded to readers.
// There are exactly two implementations: Exclusive (R = *V) and
// Shared (R = *Ref[V]).
type Storage[V, R any] interface {
	// ExpireWith drops the stored value if expiration returns true for it.
	// The predicate is not invoked on an empty slot.
	ExpireWith(expiration func(V) bool)

	// GetOrInsertWith fills an empty slot with the filler result and returns
	// a handle to the stored value. The filler is invoked at most once and
	// only if the slot is empty.
	GetOrInsertWith(filler func() V) R

	// MaybeGetOrInsertWith fills an empty slot with the filler result if the
	// filler produced one. It returns a handle and true if the slot holds a
	// value afterwards, a zero handle and false otherwise.
	MaybeGetOrInsertWith(filler func() (V, bool)) (R, bool)
}

var (
	_ Storage[int, *int]      = (*Exclusive[int])(nil)
	_ Storage[int, *Ref[int]] = (*Shared[int])(nil)
)
