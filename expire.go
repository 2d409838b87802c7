package cell

import "time"

// Never returns an expiration predicate that keeps the value forever.
func Never[V any]() func(V) bool {
	return func(V) bool { return false }
}

// Always returns an expiration predicate that drops the value before every
// fill, effectively disabling caching.
func Always[V any]() func(V) bool {
	return func(V) bool { return true }
}

// Expirable is a value that carries its own expiration time.
type Expirable interface {
	ExpireAt() time.Time
}

// Stale returns an expiration predicate that drops values past their own
// expiration time.
func Stale[V Expirable]() func(V) bool {
	return func(v V) bool {
		return v.ExpireAt().Before(time.Now())
	}
}
