package cell_test

import (
	"testing"

	"github.com/bool64/cell"
	"github.com/stretchr/testify/assert"
)

func TestMaybeAccessor_absence(t *testing.T) {
	s := cell.NewExclusive[int]()

	fills := 0
	a := s.MaybeAccess(cell.Never[int](), func() (int, bool) { fills++; return 0, false })

	v, ok := a.Get()
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, s.Present())

	// Absence is terminal for this accessor, the filler is not retried.
	_, ok = a.Get()
	assert.False(t, ok)
	assert.Equal(t, 1, fills)
}

func TestMaybeAccessor_value(t *testing.T) {
	s := cell.NewExclusive[string]()

	a := s.MaybeAccess(cell.Never[string](), func() (string, bool) { return "abc", true })

	v, ok := a.Get()
	assert.True(t, ok)
	assert.Equal(t, "abc", *v)
	assert.True(t, s.Present())
}

func TestMaybeAccessor_preFilled(t *testing.T) {
	s := cell.NewShared[string]()
	s.Set("abc")

	fills := 0
	a := s.MaybeAccess(cell.Never[string](), func() (string, bool) { fills++; return "xyz", true })

	ref, ok := a.Get()
	assert.True(t, ok)
	assert.Equal(t, "abc", ref.Value())
	assert.Equal(t, 0, fills)

	ref.Release()
}

func TestMaybeAccessor_Take(t *testing.T) {
	s := cell.NewShared[int]()

	a := s.MaybeAccess(cell.Never[int](), func() (int, bool) { return 5, true })

	ref, ok := a.Take()
	assert.True(t, ok)
	assert.Equal(t, 5, ref.Value())
	ref.Release()

	assert.PanicsWithValue(t, cell.ErrConsumed, func() { a.Get() })
}

func TestMaybeAccessor_expiresBeforeFill(t *testing.T) {
	s := cell.NewExclusive[int]()
	s.Set(7)

	a := s.MaybeAccess(cell.Always[int](), func() (int, bool) { return 0, false })

	_, ok := a.Get()
	assert.False(t, ok)
	assert.False(t, s.Present())
}
