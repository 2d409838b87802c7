package cell_test

import (
	"testing"

	"github.com/bool64/cell"
	"github.com/bool64/ctxd"
	"github.com/stretchr/testify/assert"
	"github.com/swaggest/assertjson"
)

func TestShared_GetOrInsertWith(t *testing.T) {
	s := cell.NewShared[int]()

	filled := 0
	ref := s.GetOrInsertWith(func() int { filled++; return 42 })
	assert.Equal(t, 42, ref.Value())
	assert.Equal(t, 1, filled)
	assert.True(t, s.Present())

	// Simultaneous read guards are allowed.
	ref2 := s.GetOrInsertWith(func() int { filled++; return 43 })
	assert.Equal(t, 42, ref2.Value())
	assert.Equal(t, 1, filled)

	ref.Release()
	ref2.Release()
}

func TestShared_ExpireWith(t *testing.T) {
	s := cell.NewShared[int]()
	s.Set(7)

	s.ExpireWith(func(v int) bool { return v == 7 })
	assert.False(t, s.Present())

	// The slot is left unborrowed after expiration.
	ref := s.GetOrInsertWith(func() int { return 8 })
	assert.Equal(t, 8, ref.Value())
	ref.Release()
}

func TestShared_MaybeGetOrInsertWith(t *testing.T) {
	s := cell.NewShared[string]()

	ref, ok := s.MaybeGetOrInsertWith(func() (string, bool) { return "", false })
	assert.False(t, ok)
	assert.Nil(t, ref)
	assert.False(t, s.Present())

	ref, ok = s.MaybeGetOrInsertWith(func() (string, bool) { return "abc", true })
	assert.True(t, ok)
	assert.Equal(t, "abc", ref.Value())
	ref.Release()
}

func TestShared_borrowConflict(t *testing.T) {
	logger := ctxd.LoggerMock{}

	s := cell.NewShared[int](cell.Config{
		Logger: &logger,
		Name:   "test",
	}.Use)
	s.Set(1)

	ref := s.GetOrInsertWith(func() int { return 0 })

	// Set needs a transient exclusive borrow, the outstanding read guard
	// conflicts with it.
	assert.PanicsWithValue(t, cell.ErrBorrowConflict, func() {
		s.Set(2)
	})

	ref.Release()
	s.Set(2)

	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	logger.Lock()
	loggedEntries := logger.LoggedEntries
	logger.Unlock()

	assertjson.EqualMarshal(t, []byte(`[
	  {
		"time":"<ignore-diff>","level":"debug",
		"message":"cache hit","data":{"name":"test"}
	  },
	  {
		"time":"<ignore-diff>","level":"error",
		"message":"conflicting borrow of shared slot","data":{"name":"test"}
	  }
	]`), loggedEntries)
}

func TestRef_Release(t *testing.T) {
	s := cell.NewShared[string]()
	s.Set("foo")

	ref := s.GetOrInsertWith(func() string { return "" })
	assert.Equal(t, "foo", ref.Value())

	ref.Release()

	assert.PanicsWithValue(t, cell.ErrGuardReleased, func() { ref.Value() })
	assert.PanicsWithValue(t, cell.ErrGuardReleased, func() { ref.Release() })
}

func TestShared_Peek(t *testing.T) {
	s := cell.NewShared[int]()

	_, ok := s.Peek()
	assert.False(t, ok)

	s.Set(1)

	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	s.Reset()
	assert.False(t, s.Present())
}
