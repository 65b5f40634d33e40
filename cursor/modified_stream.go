package cursor

// RemoveFirst returns a view of the stream without its first element.
// The returned stream drives this one, which is repositioned to its beginning.
func (s Stream[T]) RemoveFirst() Stream[T] {
	rf := &removeFirstNavigator[T]{src: s}
	rf.SetToBegin()
	return NewStream[T](rf)
}

// RemoveLast returns a view of the stream without its last element.
// The returned stream drives this one, which is repositioned to its beginning.
func (s Stream[T]) RemoveLast() Stream[T] {
	s.nav.SetToBegin()
	return NewStream[T](&removeLastNavigator[T]{src: s})
}

// removeFirstNavigator keeps the source one slot ahead: slot k of the view is source slot k+1.
// Only an empty source can be at its beginning.
type removeFirstNavigator[T any] struct {
	src Stream[T]
}

func (rf *removeFirstNavigator[T]) AtBeginning() bool {
	if rf.src.nav.AtBeginning() {
		return true
	}
	// On the first source element?
	rf.src.nav.Backward()
	onFirst := rf.src.nav.AtBeginning()
	rf.src.nav.Forward()
	return onFirst
}

func (rf *removeFirstNavigator[T]) AtEnd() bool {
	return rf.src.nav.AtEnd()
}

func (rf *removeFirstNavigator[T]) Forward() T {
	return rf.src.nav.Forward()
}

func (rf *removeFirstNavigator[T]) Backward() T {
	return rf.src.nav.Backward()
}

func (rf *removeFirstNavigator[T]) Current() T {
	v, _ := rf.src.Current()
	return v
}

func (rf *removeFirstNavigator[T]) Peek() T {
	v, _ := rf.src.Peek()
	return v
}

func (rf *removeFirstNavigator[T]) SetToBegin() {
	rf.src.nav.SetToBegin()
	if !rf.src.nav.AtEnd() {
		rf.src.nav.Forward()
	}
}

func (rf *removeFirstNavigator[T]) SetToEnd() {
	rf.src.nav.SetToEnd()
}

func (rf *removeFirstNavigator[T]) Err() error {
	return rf.src.Err()
}

func (rf *removeFirstNavigator[T]) Close() {
	rf.src.Close()
}

// removeLastNavigator never lets the source reach its last slot, unless the source is empty
type removeLastNavigator[T any] struct {
	src Stream[T]
}

func (rl *removeLastNavigator[T]) AtBeginning() bool {
	return rl.src.nav.AtBeginning()
}

func (rl *removeLastNavigator[T]) AtEnd() bool {
	if rl.src.nav.AtEnd() {
		return true
	}
	// Only the last source element ahead?
	rl.src.nav.Forward()
	beforeLast := rl.src.nav.AtEnd()
	rl.src.nav.Backward()
	return beforeLast
}

func (rl *removeLastNavigator[T]) Forward() T {
	return rl.src.nav.Forward()
}

func (rl *removeLastNavigator[T]) Backward() T {
	return rl.src.nav.Backward()
}

func (rl *removeLastNavigator[T]) Current() T {
	v, _ := rl.src.Current()
	return v
}

func (rl *removeLastNavigator[T]) Peek() T {
	v, _ := rl.src.Peek()
	return v
}

func (rl *removeLastNavigator[T]) SetToBegin() {
	rl.src.nav.SetToBegin()
}

func (rl *removeLastNavigator[T]) SetToEnd() {
	rl.src.nav.SetToEnd()
	if !rl.src.nav.AtBeginning() {
		rl.src.nav.Backward()
	}
}

func (rl *removeLastNavigator[T]) Err() error {
	return rl.src.Err()
}

func (rl *removeLastNavigator[T]) Close() {
	rl.src.Close()
}
