package cursor

// Empty returns the stream with no elements. It is both at its beginning and at its end, and is the
// identity of concatenation. All empty streams of the same element type are equal.
func Empty[T any]() Stream[T] {
	return NewStream[T](emptyNavigator[T]{})
}

type emptyNavigator[T any] struct{}

func (emptyNavigator[T]) AtBeginning() bool {
	return true
}

func (emptyNavigator[T]) AtEnd() bool {
	return true
}

func (emptyNavigator[T]) Forward() T {
	panic("forward on an empty stream")
}

func (emptyNavigator[T]) Backward() T {
	panic("backward on an empty stream")
}

func (emptyNavigator[T]) SetToBegin() {}

func (emptyNavigator[T]) SetToEnd() {}
