package actor

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyBorrowed        = errors.New("actor already borrowed")
	ErrAlreadyMutablyBorrowed = errors.New("actor already mutably borrowed")
)

// BorrowError is the panic value raised by a conflicting borrow.
type BorrowError struct {
	Err error
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("borrow conflict: %v", e.Err)
}

func (e *BorrowError) Unwrap() error {
	return e.Err
}

// Ref is a shared handle to an actor held by the game state. Access goes
// through Borrow and BorrowMut, which enforce many-readers or one-writer for
// the lifetime of the returned guard. A conflicting borrow is a programming
// error and panics with a *BorrowError.
//
// Ref is not safe for concurrent use; the simulation is single threaded.
type Ref struct {
	actor   Actor
	readers int
	writing bool
}

func NewRef(a Actor) *Ref {
	return &Ref{actor: a}
}

// ReadGuard grants shared access until Release. Releasing a guard a second
// time is a no-op.
type ReadGuard struct {
	ref      *Ref
	released bool
}

func (g *ReadGuard) Actor() Actor {
	return g.ref.actor
}

func (g *ReadGuard) Info() *Info {
	return g.ref.actor.Info()
}

func (g *ReadGuard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.ref.readers--
}

// WriteGuard grants exclusive access until Release. Releasing a guard a
// second time is a no-op and leaves any newer borrow in place.
type WriteGuard struct {
	ref      *Ref
	released bool
}

func (g *WriteGuard) Actor() Actor {
	return g.ref.actor
}

func (g *WriteGuard) Info() *Info {
	return g.ref.actor.Info()
}

func (g *WriteGuard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.ref.writing = false
}

func (r *Ref) Borrow() *ReadGuard {
	if r.writing {
		panic(&BorrowError{Err: ErrAlreadyMutablyBorrowed})
	}
	r.readers++
	return &ReadGuard{ref: r}
}

func (r *Ref) BorrowMut() *WriteGuard {
	if r.writing {
		panic(&BorrowError{Err: ErrAlreadyMutablyBorrowed})
	}
	if r.readers > 0 {
		panic(&BorrowError{Err: ErrAlreadyBorrowed})
	}
	r.writing = true
	return &WriteGuard{ref: r}
}

// With runs fn under a shared borrow.
func (r *Ref) With(fn func(a Actor)) {
	g := r.Borrow()
	defer g.Release()
	fn(g.Actor())
}

// WithMut runs fn under an exclusive borrow.
func (r *Ref) WithMut(fn func(a Actor)) {
	g := r.BorrowMut()
	defer g.Release()
	fn(g.Actor())
}
