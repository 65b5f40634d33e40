package cursor

import (
	"github.com/shpandrak/shpancursor"
	"github.com/shpandrak/shpancursor/internal/util"
)

// Concat concatenates a stream of streams into a single stream. the streams are joined sequentially one
// after the other, and empty streams are skipped.
// Sub-streams are pulled from the driver stream only when navigation reaches them, so the driver may be
// an unbounded stream.
func Concat[T any](streams Stream[Stream[T]]) Stream[T] {
	return newConcatStream(streams, util.Identity[Stream[T]]())
}

// ConcatStreams concatenates multiple streams into a single stream. the streams are joined sequentially one after the other.
func ConcatStreams[T any](streams ...Stream[T]) Stream[T] {
	return Concat(Just(streams...))
}

// Append returns the concatenation of s followed by the others
func Append[T any](s Stream[T], others ...Stream[T]) Stream[T] {
	return ConcatStreams(append([]Stream[T]{s}, others...)...)
}

// FlatMap maps every element of the source stream to a stream and concatenates the results.
// The mapper is called once per source element, when navigation first reaches its sub-stream. Sub-streams
// are kept for revisiting and are closed when the returned stream is closed.
func FlatMap[SRC any, TGT any](src Stream[SRC], mapper shpancursor.Mapper[SRC, Stream[TGT]]) Stream[TGT] {
	return newConcatStream(src, mapper)
}

func newConcatStream[S any, T any](seeds Stream[S], mapper shpancursor.Mapper[S, Stream[T]]) Stream[T] {
	cn := &concatNavigator[S, T]{
		seeds:  seeds,
		mapper: mapper,
		subs:   make(map[int]Stream[T]),
	}
	cn.SetToBegin()
	return NewStream[T](cn)
}

// concatNavigator is positioned by the seed slot and the slot of the active sub-stream.
// When the seeds are at their beginning the active sub-stream is empty, otherwise the active sub-stream is
// the one of the current seed and is on an element (never at its own beginning).
type concatNavigator[S any, T any] struct {
	seeds  Stream[S]
	mapper shpancursor.Mapper[S, Stream[T]]

	// pos is the seed slot, subs holds the sub-stream mapped from the seed at each visited slot
	pos    int
	subs   map[int]Stream[T]
	active Stream[T]
	err    error
}

func (cn *concatNavigator[S, T]) AtBeginning() bool {
	return cn.seeds.nav.AtBeginning()
}

func (cn *concatNavigator[S, T]) AtEnd() bool {
	if !cn.active.nav.AtEnd() {
		return false
	}
	_, found := cn.lookAhead()
	return !found
}

func (cn *concatNavigator[S, T]) Forward() T {
	if !cn.active.nav.AtEnd() {
		return cn.active.nav.Forward()
	}
	cn.recordErr(cn.active)
	for {
		next := cn.forwardSeed()
		next.nav.SetToBegin()
		if !next.nav.AtEnd() {
			cn.active = next
			return next.nav.Forward()
		}
		cn.recordErr(next)
	}
}

func (cn *concatNavigator[S, T]) Backward() T {
	departing := cn.active.nav.Backward()
	if cn.active.nav.AtBeginning() {
		cn.backwardSeed()
		cn.settleBackward()
	}
	return departing
}

func (cn *concatNavigator[S, T]) Current() T {
	v, _ := cn.active.Current()
	return v
}

func (cn *concatNavigator[S, T]) Peek() T {
	if v, ok := cn.active.Peek(); ok {
		return v
	}
	v, _ := cn.lookAhead()
	return v
}

func (cn *concatNavigator[S, T]) SetToBegin() {
	cn.seeds.nav.SetToBegin()
	cn.pos = 0
	cn.active = Empty[T]()
}

// SetToEnd walks the remaining seeds to keep the slot count, without mapping them
func (cn *concatNavigator[S, T]) SetToEnd() {
	for !cn.seeds.nav.AtEnd() {
		cn.seeds.nav.Forward()
		cn.pos++
	}
	cn.settleBackward()
}

func (cn *concatNavigator[S, T]) Err() error {
	if cn.err != nil {
		return cn.err
	}
	if err := cn.seeds.Err(); err != nil {
		return err
	}
	return cn.active.Err()
}

func (cn *concatNavigator[S, T]) Close() {
	for _, sub := range cn.subs {
		sub.Close()
	}
	cn.seeds.Close()
}

// subStream returns the sub-stream of the seed at the given slot, mapping the seed on the first visit
func (cn *concatNavigator[S, T]) subStream(slot int, seed S) Stream[T] {
	if sub, ok := cn.subs[slot]; ok {
		return sub
	}
	sub := cn.mapper(seed)
	cn.subs[slot] = sub
	return sub
}

func (cn *concatNavigator[S, T]) forwardSeed() Stream[T] {
	seed := cn.seeds.nav.Forward()
	cn.pos++
	return cn.subStream(cn.pos, seed)
}

func (cn *concatNavigator[S, T]) backwardSeed() {
	cn.seeds.nav.Backward()
	cn.pos--
}

// settleBackward makes the last element of the current seed's sub-stream the current element,
// retreating over empty sub-streams until one is found or the seeds are at their beginning
func (cn *concatNavigator[S, T]) settleBackward() {
	for !cn.seeds.nav.AtBeginning() {
		seed, _ := cn.seeds.Current()
		curr := cn.subStream(cn.pos, seed)
		curr.nav.SetToEnd()
		if !curr.nav.AtBeginning() {
			cn.active = curr
			return
		}
		cn.backwardSeed()
	}
	cn.active = Empty[T]()
}

// lookAhead finds the first element of the next non-empty sub-stream, leaving the seeds where they were
func (cn *concatNavigator[S, T]) lookAhead() (T, bool) {
	steps := 0
	defer func() {
		for ; steps > 0; steps-- {
			cn.backwardSeed()
		}
	}()
	for !cn.seeds.nav.AtEnd() {
		next := cn.forwardSeed()
		steps++
		next.nav.SetToBegin()
		if v, ok := next.Peek(); ok {
			return v, true
		}
	}
	return util.DefaultValue[T](), false
}

func (cn *concatNavigator[S, T]) recordErr(s Stream[T]) {
	if cn.err == nil {
		cn.err = s.Err()
	}
}
