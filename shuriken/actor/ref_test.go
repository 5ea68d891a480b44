package actor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func borrowPanic(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a borrow panic")
		be, ok := r.(*BorrowError)
		require.True(t, ok, "panic value is %T", r)
		err = be
	}()
	fn()
	return nil
}

func TestRefSharedBorrows(t *testing.T) {
	ref := NewRef(&pushActor{Base: NewBase(0, 0)})

	a := ref.Borrow()
	b := ref.Borrow()
	assert.Same(t, a.Info(), b.Info())

	err := borrowPanic(t, func() { ref.BorrowMut() })
	assert.True(t, errors.Is(err, ErrAlreadyBorrowed))

	a.Release()
	b.Release()

	w := ref.BorrowMut()
	w.Info().X = 9
	w.Release()

	ref.With(func(a Actor) {
		assert.Equal(t, 9, a.Info().X)
	})
}

func TestRefExclusiveBorrow(t *testing.T) {
	ref := NewRef(&pushActor{Base: NewBase(0, 0)})

	w := ref.BorrowMut()

	err := borrowPanic(t, func() { ref.Borrow() })
	assert.True(t, errors.Is(err, ErrAlreadyMutablyBorrowed))

	err = borrowPanic(t, func() { ref.BorrowMut() })
	assert.True(t, errors.Is(err, ErrAlreadyMutablyBorrowed))

	w.Release()

	ref.WithMut(func(a Actor) {
		a.OnButtonDown("a")
	})
	ref.With(func(a Actor) {
		assert.Equal(t, []string{"a"}, a.(*pushActor).pressed)
	})
}

func TestRefReleasedAfterPanickingCallback(t *testing.T) {
	ref := NewRef(&pushActor{Base: NewBase(0, 0)})

	assert.Panics(t, func() {
		ref.WithMut(func(Actor) { panic("boom") })
	})
	assert.NotPanics(t, func() { ref.BorrowMut().Release() })
}

func TestRefDoubleRelease(t *testing.T) {
	t.Run("read guard", func(t *testing.T) {
		ref := NewRef(&pushActor{Base: NewBase(0, 0)})

		stale := ref.Borrow()
		stale.Release()
		stale.Release()

		live := ref.Borrow()
		err := borrowPanic(t, func() { ref.BorrowMut() })
		assert.True(t, errors.Is(err, ErrAlreadyBorrowed))
		live.Release()

		assert.NotPanics(t, func() { ref.BorrowMut().Release() })
	})

	t.Run("write guard", func(t *testing.T) {
		ref := NewRef(&pushActor{Base: NewBase(0, 0)})

		first := ref.BorrowMut()
		first.Release()
		second := ref.BorrowMut()
		first.Release()

		err := borrowPanic(t, func() { ref.Borrow() })
		assert.True(t, errors.Is(err, ErrAlreadyMutablyBorrowed))
		second.Release()

		assert.NotPanics(t, func() { ref.Borrow().Release() })
	})
}
