package cursor

import (
	"github.com/shpandrak/shpancursor"
	"github.com/shpandrak/shpancursor/internal/util"
)

// Navigator is what needs to be implemented to expose a bidirectional stream.
// A stream of N elements has N+1 slots: slot 0 is the beginning, slot i (1..N) is "on element i".
// The Stream type guards the preconditions, so a Navigator never has to report end of stream itself:
// Forward is only called when AtEnd is false, and Backward only when AtBeginning is false.
type Navigator[T any] interface {
	AtBeginning() bool
	AtEnd() bool

	// Forward moves one slot forward and returns the element that became current
	Forward() T

	// Backward returns the element that was current before the move, and moves one slot backward
	Backward() T

	SetToBegin()
	SetToEnd()
}

// currentNavigator is implemented by navigators that can read the current element without moving.
// Current is only called when AtBeginning is false.
type currentNavigator[T any] interface {
	Current() T
}

// peekNavigator is implemented by navigators that can read the next element without moving.
// Peek is only called when AtEnd is false.
type peekNavigator[T any] interface {
	Peek() T
}

type errNavigator interface {
	Err() error
}

type closingNavigator interface {
	Close()
}

// Stream is a bidirectional cursor over an ordered, possibly infinite, sequence of elements.
// Copies of a Stream value share the same cursor.
// A Stream is not safe for concurrent use.
type Stream[T any] struct {
	nav Navigator[T]
}

func NewStream[T any](nav Navigator[T]) Stream[T] {
	return Stream[T]{nav: nav}
}

func (s Stream[T]) AtBeginning() bool {
	return s.nav.AtBeginning()
}

func (s Stream[T]) AtEnd() bool {
	return s.nav.AtEnd()
}

// IsEmpty returns true if the stream has no elements at all
func (s Stream[T]) IsEmpty() bool {
	return s.nav.AtBeginning() && s.nav.AtEnd()
}

// Forward moves the cursor one slot forward and returns the new current element.
// It returns ErrEndOfStream if the stream is already at its end.
func (s Stream[T]) Forward() (T, error) {
	if s.nav.AtEnd() {
		return util.DefaultValue[T](), ErrEndOfStream
	}
	return s.nav.Forward(), nil
}

// Backward returns the current element and moves the cursor one slot backward.
// It returns ErrEndOfStream if the stream is already at its beginning.
func (s Stream[T]) Backward() (T, error) {
	if s.nav.AtBeginning() {
		return util.DefaultValue[T](), ErrEndOfStream
	}
	return s.nav.Backward(), nil
}

// Current returns the element at the cursor, or false when the cursor is at the beginning
func (s Stream[T]) Current() (T, bool) {
	if s.nav.AtBeginning() {
		return util.DefaultValue[T](), false
	}
	if cn, ok := s.nav.(currentNavigator[T]); ok {
		return cn.Current(), true
	}
	v := s.nav.Backward()
	s.nav.Forward()
	return v, true
}

// Peek returns the element Forward would reach without moving the cursor, or false when at the end
func (s Stream[T]) Peek() (T, bool) {
	if s.nav.AtEnd() {
		return util.DefaultValue[T](), false
	}
	if pn, ok := s.nav.(peekNavigator[T]); ok {
		return pn.Peek(), true
	}
	v := s.nav.Forward()
	s.nav.Backward()
	return v, true
}

func (s Stream[T]) SetToBegin() {
	s.nav.SetToBegin()
}

func (s Stream[T]) SetToEnd() {
	s.nav.SetToEnd()
}

// First moves the cursor to the first element and returns it
func (s Stream[T]) First() (T, error) {
	s.nav.SetToBegin()
	return s.Forward()
}

// Last moves the cursor to the slot before the last element and returns it
func (s Stream[T]) Last() (T, error) {
	s.nav.SetToEnd()
	return s.Backward()
}

// MoveForwardUntil moves forward until an element satisfying the predicate is reached, and returns it.
// If no such element exists, the cursor is left at the end and false is returned.
func (s Stream[T]) MoveForwardUntil(predicate shpancursor.Predicate[T]) (T, bool) {
	for !s.nav.AtEnd() {
		v := s.nav.Forward()
		if predicate(v) {
			return v, true
		}
	}
	return util.DefaultValue[T](), false
}

// MoveBackwardUntil moves backward until an element satisfying the predicate has been left, and returns it.
// If no such element exists, the cursor is left at the beginning and false is returned.
func (s Stream[T]) MoveBackwardUntil(predicate shpancursor.Predicate[T]) (T, bool) {
	for !s.nav.AtBeginning() {
		v := s.nav.Backward()
		if predicate(v) {
			return v, true
		}
	}
	return util.DefaultValue[T](), false
}

// Err returns the first error reported by a provider backing the stream, if any.
// A provider failure ends the stream, so Err should be checked once navigation hits the end.
func (s Stream[T]) Err() error {
	if en, ok := s.nav.(errNavigator); ok {
		return en.Err()
	}
	return nil
}

// Close releases resources held by the streams backing this one. Closing a stream that holds no
// resources is a NOP.
func (s Stream[T]) Close() {
	closeNavigator(s.nav)
}

func closeNavigator(nav any) {
	if cn, ok := nav.(closingNavigator); ok {
		cn.Close()
	}
}
