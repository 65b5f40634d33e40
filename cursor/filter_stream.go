package cursor

import (
	"github.com/shpandrak/shpancursor"
	"github.com/shpandrak/shpancursor/internal/util"
)

// Filter returns a stream of the elements satisfying the predicate.
// The returned stream drives this one, which is repositioned to its beginning.
// The predicate may be evaluated more than once per element, so it should not have side effects.
func (s Stream[T]) Filter(predicate shpancursor.Predicate[T]) Stream[T] {
	s.nav.SetToBegin()
	return NewStream[T](&filterNavigator[T]{src: s, predicate: predicate})
}

// filterNavigator keeps the source either at its beginning or on an element satisfying the predicate
type filterNavigator[T any] struct {
	src       Stream[T]
	predicate shpancursor.Predicate[T]
}

func (fn *filterNavigator[T]) AtBeginning() bool {
	return fn.src.nav.AtBeginning()
}

func (fn *filterNavigator[T]) AtEnd() bool {
	_, found := fn.lookAhead()
	return !found
}

func (fn *filterNavigator[T]) Forward() T {
	v, _ := fn.src.MoveForwardUntil(fn.predicate)
	return v
}

func (fn *filterNavigator[T]) Backward() T {
	departing := fn.src.nav.Backward()
	fn.retreatToMatch()
	return departing
}

func (fn *filterNavigator[T]) Current() T {
	v, _ := fn.src.Current()
	return v
}

func (fn *filterNavigator[T]) Peek() T {
	v, _ := fn.lookAhead()
	return v
}

func (fn *filterNavigator[T]) SetToBegin() {
	fn.src.nav.SetToBegin()
}

func (fn *filterNavigator[T]) SetToEnd() {
	fn.src.nav.SetToEnd()
	fn.retreatToMatch()
}

func (fn *filterNavigator[T]) Err() error {
	return fn.src.Err()
}

func (fn *filterNavigator[T]) Close() {
	fn.src.Close()
}

// retreatToMatch moves the source back until it is on a matching element or at its beginning
func (fn *filterNavigator[T]) retreatToMatch() {
	if _, found := fn.src.MoveBackwardUntil(fn.predicate); found {
		fn.src.nav.Forward()
	}
}

// lookAhead finds the next matching element, leaving the source where it was
func (fn *filterNavigator[T]) lookAhead() (T, bool) {
	steps := 0
	defer func() {
		for ; steps > 0; steps-- {
			fn.src.nav.Backward()
		}
	}()
	for !fn.src.nav.AtEnd() {
		v := fn.src.nav.Forward()
		steps++
		if fn.predicate(v) {
			return v, true
		}
	}
	return util.DefaultValue[T](), false
}
