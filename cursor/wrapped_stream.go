package cursor

// Wrap returns a stream that delegates every operation to the inner stream
func Wrap[T any](inner Stream[T]) Stream[T] {
	return NewStream[T](&wrappedNavigator[T]{inner: inner})
}

type wrappedNavigator[T any] struct {
	inner Stream[T]
}

func (wn *wrappedNavigator[T]) AtBeginning() bool {
	return wn.inner.nav.AtBeginning()
}

func (wn *wrappedNavigator[T]) AtEnd() bool {
	return wn.inner.nav.AtEnd()
}

func (wn *wrappedNavigator[T]) Forward() T {
	return wn.inner.nav.Forward()
}

func (wn *wrappedNavigator[T]) Backward() T {
	return wn.inner.nav.Backward()
}

func (wn *wrappedNavigator[T]) Current() T {
	v, _ := wn.inner.Current()
	return v
}

func (wn *wrappedNavigator[T]) Peek() T {
	v, _ := wn.inner.Peek()
	return v
}

func (wn *wrappedNavigator[T]) SetToBegin() {
	wn.inner.nav.SetToBegin()
}

func (wn *wrappedNavigator[T]) SetToEnd() {
	wn.inner.nav.SetToEnd()
}

func (wn *wrappedNavigator[T]) Err() error {
	return wn.inner.Err()
}

func (wn *wrappedNavigator[T]) Close() {
	wn.inner.Close()
}
