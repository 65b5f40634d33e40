package cursor

// Reverse returns a stream of the same elements in the opposite order, without copying them.
// The returned stream drives this one, which is repositioned to its end (the reversed beginning).
func (s Stream[T]) Reverse() Stream[T] {
	s.nav.SetToEnd()
	return NewStream[T](&reverseNavigator[T]{src: s})
}

// reverseNavigator maps reversed slot k of an N element source to source slot N-k.
// The reversed element at slot k is therefore the source element right after the source slot:
// reversed Current is source Peek, and reversed Peek is source Current.
type reverseNavigator[T any] struct {
	src Stream[T]
}

func (rn *reverseNavigator[T]) AtBeginning() bool {
	return rn.src.nav.AtEnd()
}

func (rn *reverseNavigator[T]) AtEnd() bool {
	return rn.src.nav.AtBeginning()
}

func (rn *reverseNavigator[T]) Forward() T {
	return rn.swapDirection(true)
}

func (rn *reverseNavigator[T]) Backward() T {
	return rn.swapDirection(false)
}

func (rn *reverseNavigator[T]) Current() T {
	v, _ := rn.src.Peek()
	return v
}

func (rn *reverseNavigator[T]) Peek() T {
	v, _ := rn.src.Current()
	return v
}

func (rn *reverseNavigator[T]) SetToBegin() {
	rn.src.nav.SetToEnd()
}

func (rn *reverseNavigator[T]) SetToEnd() {
	rn.src.nav.SetToBegin()
}

func (rn *reverseNavigator[T]) Err() error {
	return rn.src.Err()
}

func (rn *reverseNavigator[T]) Close() {
	rn.src.Close()
}

// swapDirection moves the source one slot in the direction opposite to the reversed move, and returns the
// element lying between the two slots.
// A forward move reports the element it arrives on, and a backward move the element it departs from,
// which is that same element in both cases. So the source move yields exactly what the reversed move
// must report: the arriving element of a reversed Forward, or the departing element of a reversed Backward.
func (rn *reverseNavigator[T]) swapDirection(reversedForward bool) T {
	if reversedForward {
		return rn.src.nav.Backward()
	}
	return rn.src.nav.Forward()
}
