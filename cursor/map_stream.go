package cursor

import (
	"github.com/shpandrak/shpancursor"
)

// Map maps the source stream to a target stream using the provided mapper function.
// The mapped stream has the same position as the source, and the mapper is applied on every read, so
// it is evaluated lazily and possibly more than once per element.
func Map[SRC any, TGT any](src Stream[SRC], mapper shpancursor.Mapper[SRC, TGT]) Stream[TGT] {
	return NewStream[TGT](&mapNavigator[SRC, TGT]{src: src, mapper: mapper})
}

type mapNavigator[SRC any, TGT any] struct {
	src    Stream[SRC]
	mapper shpancursor.Mapper[SRC, TGT]
}

func (mn *mapNavigator[SRC, TGT]) AtBeginning() bool {
	return mn.src.nav.AtBeginning()
}

func (mn *mapNavigator[SRC, TGT]) AtEnd() bool {
	return mn.src.nav.AtEnd()
}

func (mn *mapNavigator[SRC, TGT]) Forward() TGT {
	return mn.mapper(mn.src.nav.Forward())
}

func (mn *mapNavigator[SRC, TGT]) Backward() TGT {
	return mn.mapper(mn.src.nav.Backward())
}

func (mn *mapNavigator[SRC, TGT]) Current() TGT {
	v, _ := mn.src.Current()
	return mn.mapper(v)
}

func (mn *mapNavigator[SRC, TGT]) Peek() TGT {
	v, _ := mn.src.Peek()
	return mn.mapper(v)
}

func (mn *mapNavigator[SRC, TGT]) SetToBegin() {
	mn.src.nav.SetToBegin()
}

func (mn *mapNavigator[SRC, TGT]) SetToEnd() {
	mn.src.nav.SetToEnd()
}

func (mn *mapNavigator[SRC, TGT]) Err() error {
	return mn.src.Err()
}

func (mn *mapNavigator[SRC, TGT]) Close() {
	mn.src.Close()
}
