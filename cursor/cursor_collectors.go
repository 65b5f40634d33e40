package cursor

import (
	"github.com/shpandrak/shpancursor"
)

// The collectors below visit the stream from its beginning with repeated Forward calls, and leave the
// cursor at the end of the stream (or on the element that stopped the visit).
// Collecting an unbounded stream does not terminate.

// Entries repositions the stream to its beginning and collects all its elements into a slice
func (s Stream[T]) Entries() []T {
	s.nav.SetToBegin()
	return s.Remaining()
}

// Remaining collects the elements after the cursor into a slice, leaving the cursor at the end
func (s Stream[T]) Remaining() []T {
	var result []T
	for !s.nav.AtEnd() {
		result = append(result, s.nav.Forward())
	}
	return result
}

// Consume visits every element of the stream, from its beginning (sometimes named ForEach)
func (s Stream[T]) Consume(f func(T)) {
	s.nav.SetToBegin()
	for !s.nav.AtEnd() {
		f(s.nav.Forward())
	}
}

// Select collects the elements satisfying the predicate into a slice
func (s Stream[T]) Select(predicate shpancursor.Predicate[T]) []T {
	var result []T
	s.Consume(func(v T) {
		if predicate(v) {
			result = append(result, v)
		}
	})
	return result
}

// Detect returns the first element satisfying the predicate, leaving the cursor on it
func (s Stream[T]) Detect(predicate shpancursor.Predicate[T]) (T, bool) {
	return s.FindFirst(predicate)
}

// FindFirst returns the first element satisfying the predicate, leaving the cursor on it.
// If there is none, the cursor is left at the end.
func (s Stream[T]) FindFirst(predicate shpancursor.Predicate[T]) (T, bool) {
	s.nav.SetToBegin()
	return s.MoveForwardUntil(predicate)
}

// FindLast returns the last element satisfying the predicate, leaving the cursor on the slot before it, like Last.
// If there is none, the cursor is left at the beginning.
func (s Stream[T]) FindLast(predicate shpancursor.Predicate[T]) (T, bool) {
	s.nav.SetToEnd()
	return s.MoveBackwardUntil(predicate)
}

// Count counts the elements of the stream
func (s Stream[T]) Count() int {
	count := 0
	s.Consume(func(T) {
		count++
	})
	return count
}

// Contains returns true if the stream has an element equal to v
func Contains[T comparable](s Stream[T], v T) bool {
	_, found := s.Detect(shpancursor.EqualTo(v))
	return found
}

// CollectToSet collects the elements of the stream into a "go set" (map to boolean)
func CollectToSet[K comparable](s Stream[K]) map[K]bool {
	result := make(map[K]bool)
	s.Consume(func(k K) {
		result[k] = true
	})
	return result
}

// CollectCountGroupedBy collects the elements of the stream into a map of element groups, using the grouper mapper.
// to classify the elements.
func CollectCountGroupedBy[K comparable, T any](s Stream[T], grouper shpancursor.Mapper[T, K]) map[K]uint64 {
	result := make(map[K]uint64)
	s.Consume(func(v T) {
		result[grouper(v)]++
	})
	return result
}

// Iterator allows ranging over the stream, from its beginning
func (s Stream[T]) Iterator(yield func(T) bool) {
	s.nav.SetToBegin()
	for !s.nav.AtEnd() {
		if !yield(s.nav.Forward()) {
			return
		}
	}
}

// IndexedIterator allows ranging over the stream with the zero based index of every element
func (s Stream[T]) IndexedIterator(yield func(int, T) bool) {
	index := -1
	s.Iterator(func(v T) bool {
		index++
		return yield(index, v)
	})
}
