package cursor

import (
	"slices"
)

// Just creates a stream over the given elements
func Just[T any](slice ...T) Stream[T] {
	return FromSlice(slice)
}

// FromSlice creates a stream over a copy of the given slice, later changes to the slice are not visible
func FromSlice[T any](slice []T) Stream[T] {
	return NewStream[T](&sliceNavigator[T]{slc: slices.Clone(slice)})
}

type sliceNavigator[T any] struct {
	slc []T
	pos int
}

func (sn *sliceNavigator[T]) AtBeginning() bool {
	return sn.pos == 0
}

func (sn *sliceNavigator[T]) AtEnd() bool {
	return sn.pos == len(sn.slc)
}

func (sn *sliceNavigator[T]) Forward() T {
	sn.pos++
	return sn.slc[sn.pos-1]
}

func (sn *sliceNavigator[T]) Backward() T {
	sn.pos--
	return sn.slc[sn.pos]
}

func (sn *sliceNavigator[T]) Current() T {
	return sn.slc[sn.pos-1]
}

func (sn *sliceNavigator[T]) Peek() T {
	return sn.slc[sn.pos]
}

func (sn *sliceNavigator[T]) SetToBegin() {
	sn.pos = 0
}

func (sn *sliceNavigator[T]) SetToEnd() {
	sn.pos = len(sn.slc)
}
