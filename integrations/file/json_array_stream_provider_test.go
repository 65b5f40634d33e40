package file

import (
	"context"
	"errors"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"testing"
)

type trackingReadCloser struct {
	io.Reader
	closed bool
}

func (t *trackingReadCloser) Close() error {
	t.closed = true
	return nil
}

func readerProvider(json string) (*trackingReadCloser, func(ctx context.Context) (io.ReadCloser, error)) {
	rc := &trackingReadCloser{Reader: strings.NewReader(json)}
	return rc, func(ctx context.Context) (io.ReadCloser, error) {
		return rc, nil
	}
}

type hero struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

func TestStreamJsonArray(t *testing.T) {
	rc, provider := readerProvider(`[{"name":"Storm","team":"X-Men"},{"name":"Cyclops","team":"X-Men"},{"name":"Beast","team":"Avengers"}]`)
	s := StreamJsonArray[hero](context.Background(), provider)
	require.False(t, rc.closed)

	first, err := s.Forward()
	require.NoError(t, err)
	require.Equal(t, hero{Name: "Storm", Team: "X-Men"}, first)

	avengers := s.Filter(func(h hero) bool { return h.Team == "Avengers" })
	require.Equal(t, []hero{{Name: "Beast", Team: "Avengers"}}, avengers.Entries())
	require.True(t, rc.closed)
	require.NoError(t, s.Err())
	require.Equal(t, 3, s.Count())
}

func TestStreamJsonArray_Errors(t *testing.T) {
	_, provider := readerProvider(`{"name":"Storm"}`)
	s := StreamJsonArray[hero](context.Background(), provider)
	require.True(t, s.IsEmpty())
	require.ErrorContains(t, s.Err(), "input is not a JSON array")

	rc, provider := readerProvider(`[{"name":"Storm"}, 42]`)
	s = StreamJsonArray[hero](context.Background(), provider)
	require.Equal(t, []hero{{Name: "Storm"}}, s.Entries())
	require.ErrorContains(t, s.Err(), "error parsing array element")
	require.True(t, rc.closed)

	s = StreamJsonArray[hero](context.Background(), func(ctx context.Context) (io.ReadCloser, error) {
		return nil, errors.New("no such object")
	})
	require.Empty(t, s.Entries())
	require.ErrorContains(t, s.Err(), "no such object")
}
