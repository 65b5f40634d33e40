package ws

import (
	"context"
	"errors"
	"fmt"
	"github.com/gorilla/websocket"
	"github.com/shpandrak/shpancursor/cursor"
	"io"
	"log/slog"
	"sync"
)

type wsJsonStreamProvider[T any] struct {
	wsFactory func(ctx context.Context) (*websocket.Conn, error)
	ws        *websocket.Conn
	closed    chan struct{}
	closeOnce sync.Once
}

// CreateJsonStreamFromWebSocket creates a stream of the JSON messages received on a websocket.
// The connection is dialed on the first read and is closed when the peer closes it, a read fails,
// the stream is closed, or ctx is done. Messages received so far remain navigable after that.
// Once connected, a goroutine watches ctx until the connection is done; if the stream is abandoned before the
// peer closes, Close must be called (or ctx cancelled) to release it.
func CreateJsonStreamFromWebSocket[T any](
	ctx context.Context,
	wsFactory func(ctx context.Context) (*websocket.Conn, error),
) cursor.Stream[T] {
	w := &wsJsonStreamProvider[T]{
		wsFactory: wsFactory,
		closed:    make(chan struct{}),
	}
	return cursor.FromProvider(
		ctx,
		w.emit,
		cursor.WithOpenFuncOption(w.open),
		cursor.WithCloseFuncOption(w.close),
	)
}

func (w *wsJsonStreamProvider[T]) open(ctx context.Context) error {
	ws, err := w.wsFactory(ctx)
	if err != nil {
		return err
	}
	w.ws = ws

	// Unblock a pending read once the context is done
	go func() {
		select {
		case <-ctx.Done():
			w.closeConn()
		case <-w.closed:
		}
	}()

	return nil
}

func (w *wsJsonStreamProvider[T]) close() {
	w.closeConn()
	select {
	case <-w.closed:
	default:
		close(w.closed)
	}
}

func (w *wsJsonStreamProvider[T]) closeConn() {
	w.closeOnce.Do(func() {
		if w.ws != nil {
			if closeErr := w.ws.Close(); closeErr != nil {
				slog.Warn(fmt.Sprintf("error closing websocket: %v", closeErr))
			}
		}
	})
}

func (w *wsJsonStreamProvider[T]) emit(ctx context.Context) (T, error) {
	var ret T
	if ctx.Err() != nil {
		return ret, ctx.Err()
	}
	err := w.ws.ReadJSON(&ret)
	if err != nil {
		if ctx.Err() != nil {
			return ret, ctx.Err()
		}
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || errors.Is(err, io.EOF) {
			return ret, io.EOF
		}
		return ret, fmt.Errorf("error reading from websocket: %w", err)
	}
	return ret, nil
}
