package cursor

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ProviderFunc returns the next element of a forward-only source, or io.EOF when the source is done
type ProviderFunc[T any] func(ctx context.Context) (T, error)

type CreateStreamOption struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

// WithOpenFuncOption runs openFunc once, right before the first element is pulled
func WithOpenFuncOption(openFunc func(ctx context.Context) error) CreateStreamOption {
	return CreateStreamOption{openFunc: openFunc}
}

// WithCloseFuncOption runs closeFunc once, when the provider is done, fails, or the stream is closed.
// It runs even if nothing was pulled yet, so it must cope with a source that was never opened.
func WithCloseFuncOption(closeFunc func()) CreateStreamOption {
	return CreateStreamOption{closeFunc: closeFunc}
}

// FromProvider creates a bidirectional stream over a forward-only provider.
// Elements are pulled lazily, at most one ahead of the cursor, and are kept so they can be revisited.
// SetToEnd drains the provider, so it must not be used on unbounded providers.
// A provider error other than io.EOF ends the stream, and is reported by Err.
func FromProvider[T any](ctx context.Context, provider ProviderFunc[T], options ...CreateStreamOption) Stream[T] {
	pn := &providerNavigator[T]{ctx: ctx, provider: provider}
	for _, option := range options {
		if option.openFunc != nil {
			pn.openFunc = option.openFunc
		}
		if option.closeFunc != nil {
			pn.closeFunc = option.closeFunc
		}
	}
	return NewStream[T](pn)
}

type providerNavigator[T any] struct {
	ctx       context.Context
	provider  ProviderFunc[T]
	openFunc  func(ctx context.Context) error
	closeFunc func()

	opened bool
	done   bool
	err    error
	buf    []T
	pos    int
}

func (pn *providerNavigator[T]) AtBeginning() bool {
	return pn.pos == 0
}

func (pn *providerNavigator[T]) AtEnd() bool {
	return pn.pos >= len(pn.buf) && !pn.pull()
}

func (pn *providerNavigator[T]) Forward() T {
	pn.pos++
	return pn.buf[pn.pos-1]
}

func (pn *providerNavigator[T]) Backward() T {
	pn.pos--
	return pn.buf[pn.pos]
}

func (pn *providerNavigator[T]) Current() T {
	return pn.buf[pn.pos-1]
}

func (pn *providerNavigator[T]) Peek() T {
	return pn.buf[pn.pos]
}

func (pn *providerNavigator[T]) SetToBegin() {
	pn.pos = 0
}

func (pn *providerNavigator[T]) SetToEnd() {
	for pn.pull() {
	}
	pn.pos = len(pn.buf)
}

func (pn *providerNavigator[T]) Err() error {
	return pn.err
}

// Close stops pulling from the provider, elements pulled so far remain navigable
func (pn *providerNavigator[T]) Close() {
	if !pn.done {
		pn.finish(nil)
	}
}

// pull appends the next provided element to the buffer, returning false once the provider is done
func (pn *providerNavigator[T]) pull() bool {
	if pn.done {
		return false
	}
	if !pn.opened {
		pn.opened = true
		if pn.openFunc != nil {
			if err := pn.openFunc(pn.ctx); err != nil {
				pn.finish(fmt.Errorf("failed to open stream provider: %w", err))
				return false
			}
		}
	}
	if pn.ctx.Err() != nil {
		pn.finish(pn.ctx.Err())
		return false
	}
	v, err := pn.provider(pn.ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		pn.finish(err)
		return false
	}
	pn.buf = append(pn.buf, v)
	return true
}

func (pn *providerNavigator[T]) finish(err error) {
	pn.done = true
	pn.err = err
	if pn.closeFunc != nil {
		pn.closeFunc()
	}
}
