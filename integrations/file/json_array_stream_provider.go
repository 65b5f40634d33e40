package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/shpandrak/shpancursor/cursor"
	"github.com/shpandrak/shpancursor/internal/util"
	"io"
	"log/slog"
)

type jsonArrayStreamProvider[T any] struct {
	readCloserProvider func(ctx context.Context) (io.ReadCloser, error)
	readCloser         io.ReadCloser
	jsonDecoder        *json.Decoder
}

// StreamJsonArray creates a stream over the elements of a JSON array, decoding one element at a time.
// The reader is opened on the first read and closed once the closing bracket is reached.
func StreamJsonArray[T any](ctx context.Context, readCloserProvider func(ctx context.Context) (io.ReadCloser, error)) cursor.Stream[T] {
	j := &jsonArrayStreamProvider[T]{
		readCloserProvider: readCloserProvider,
	}
	return cursor.FromProvider(
		ctx,
		j.emit,
		cursor.WithOpenFuncOption(j.open),
		cursor.WithCloseFuncOption(j.close),
	)
}

func (j *jsonArrayStreamProvider[T]) open(ctx context.Context) error {
	rc, err := j.readCloserProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to open json array: %w", err)
	}
	j.readCloser = rc
	j.jsonDecoder = json.NewDecoder(j.readCloser)

	// Check that the first token is an array start
	t, err := j.jsonDecoder.Token()
	if err != nil {
		return fmt.Errorf("failed to read json array start: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '[' {
		return errors.New("input is not a JSON array")
	}
	return nil
}

func (j *jsonArrayStreamProvider[T]) close() {
	if j.readCloser != nil {
		if err := j.readCloser.Close(); err != nil {
			slog.Warn(fmt.Sprintf("failed closing json array reader: %v", err))
		}
		j.readCloser = nil
	}
	j.jsonDecoder = nil
}

func (j *jsonArrayStreamProvider[T]) emit(_ context.Context) (T, error) {
	if j.jsonDecoder.More() {
		var parsedElement T
		if err := j.jsonDecoder.Decode(&parsedElement); err != nil {
			return util.DefaultValue[T](), fmt.Errorf("error parsing array element: %w", err)
		}
		return parsedElement, nil
	}

	// Read closing array token
	t, err := j.jsonDecoder.Token()
	if err != nil {
		return util.DefaultValue[T](), fmt.Errorf("error reading json array end: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != ']' {
		return util.DefaultValue[T](), fmt.Errorf("expected end of json array, got %v", t)
	}
	return util.DefaultValue[T](), io.EOF
}
