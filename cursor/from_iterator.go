package cursor

import (
	"context"
	"io"
	"iter"

	"github.com/shpandrak/shpancursor/internal/util"
)

// FromIterator creates a bidirectional stream over a Go iterator. The iterator is pulled lazily;
// if the stream is abandoned before the iterator is exhausted, Close must be called to release it.
func FromIterator[E any](seq iter.Seq[E]) Stream[E] {
	next, stop := iter.Pull(seq)
	return FromProvider(context.Background(), func(_ context.Context) (E, error) {
		e, ok := next()
		if !ok {
			return util.DefaultValue[E](), io.EOF
		}
		return e, nil
	}, WithCloseFuncOption(stop))
}
