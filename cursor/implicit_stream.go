package cursor

// ImplicitCallbacks are the navigation primitives of a stream that has no backing structure.
// Forward must return the element that became current, Backward the element that was current.
type ImplicitCallbacks[T any] struct {
	AtBeginning func() bool
	AtEnd       func() bool
	Forward     func() T
	Backward    func() T
	SetToBegin  func()
	SetToEnd    func()
}

// Implicit creates a stream from explicit navigation callbacks. All callbacks are required.
func Implicit[T any](callbacks ImplicitCallbacks[T]) (Stream[T], error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"AtBeginning", callbacks.AtBeginning == nil},
		{"AtEnd", callbacks.AtEnd == nil},
		{"Forward", callbacks.Forward == nil},
		{"Backward", callbacks.Backward == nil},
		{"SetToBegin", callbacks.SetToBegin == nil},
		{"SetToEnd", callbacks.SetToEnd == nil},
	}
	for _, r := range required {
		if r.missing {
			return Stream[T]{}, NewValidationError(r.name, nil, "cannot be nil").
				WithHint("provide all six navigation callbacks")
		}
	}
	return NewStream[T](&implicitNavigator[T]{callbacks: callbacks}), nil
}

// MustImplicit is a convenience function that panics if a callback is missing
func MustImplicit[T any](callbacks ImplicitCallbacks[T]) Stream[T] {
	s, err := Implicit(callbacks)
	if err != nil {
		panic(err)
	}
	return s
}

type implicitNavigator[T any] struct {
	callbacks ImplicitCallbacks[T]
}

func (in *implicitNavigator[T]) AtBeginning() bool {
	return in.callbacks.AtBeginning()
}

func (in *implicitNavigator[T]) AtEnd() bool {
	return in.callbacks.AtEnd()
}

func (in *implicitNavigator[T]) Forward() T {
	return in.callbacks.Forward()
}

func (in *implicitNavigator[T]) Backward() T {
	return in.callbacks.Backward()
}

func (in *implicitNavigator[T]) SetToBegin() {
	in.callbacks.SetToBegin()
}

func (in *implicitNavigator[T]) SetToEnd() {
	in.callbacks.SetToEnd()
}
