package cursor

import (
	"context"
	"github.com/shpandrak/shpancursor/internal/util"
	"io"
	"log/slog"
)

// FromChannel creates a stream over the values received on ch. The stream ends when ch is closed or ctx is done,
// values received so far remain navigable.
func FromChannel[T any](ctx context.Context, ch <-chan T) Stream[T] {
	return FromProvider(ctx, func(ctx context.Context) (T, error) {
		select {
		case <-ctx.Done():
			return util.DefaultValue[T](), ctx.Err()
		case msg, stillGood := <-ch:
			if !stillGood {
				slog.Debug("Stream channel closed externally")
				return util.DefaultValue[T](), io.EOF
			}
			return msg, nil
		}
	})
}
