package cell

// SentinelError is an error.
type SentinelError string

const (
	// ErrBorrowConflict indicates a conflicting simultaneous borrow of a
	// shared slot. It is a panic value, not a returned error: a borrow
	// conflict is a bug in the embedding application's access pattern.
	ErrBorrowConflict = SentinelError("conflicting borrow of shared slot")

	// ErrGuardReleased indicates use of a read guard after its release,
	// or a double release. It is a panic value.
	ErrGuardReleased = SentinelError("use of released read guard")

	// ErrConsumed indicates use of an accessor after Take.
	// It is a panic value.
	ErrConsumed = SentinelError("use of consumed accessor")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}
