package cursor

// IntervalStream is a stream over the integers [0, stop), where stop can grow while the stream is used
type IntervalStream struct {
	Stream[int]
	nav *intervalNavigator
}

// Interval creates a stream over [0, stop). A negative stop is an invalid argument.
func Interval(stop int) (IntervalStream, error) {
	if stop < 0 {
		return IntervalStream{}, NewValidationError("stop", stop, "cannot be negative").
			WithHint("use 0 for an empty interval")
	}
	nav := &intervalNavigator{stop: stop}
	return IntervalStream{Stream: NewStream[int](nav), nav: nav}, nil
}

// MustInterval is a convenience function that panics if stop is invalid
func MustInterval(stop int) IntervalStream {
	s, err := Interval(stop)
	if err != nil {
		panic(err)
	}
	return s
}

// IncrementStop extends the interval by one element. A stream that was at its end is no longer at its end.
func (s IntervalStream) IncrementStop() {
	s.nav.stop++
}

func (s IntervalStream) Stop() int {
	return s.nav.stop
}

type intervalNavigator struct {
	pos  int
	stop int
}

func (in *intervalNavigator) AtBeginning() bool {
	return in.pos == 0
}

func (in *intervalNavigator) AtEnd() bool {
	return in.pos >= in.stop
}

func (in *intervalNavigator) Forward() int {
	in.pos++
	return in.pos - 1
}

func (in *intervalNavigator) Backward() int {
	in.pos--
	return in.pos
}

func (in *intervalNavigator) Current() int {
	return in.pos - 1
}

func (in *intervalNavigator) Peek() int {
	return in.pos
}

func (in *intervalNavigator) SetToBegin() {
	in.pos = 0
}

func (in *intervalNavigator) SetToEnd() {
	in.pos = in.stop
}
