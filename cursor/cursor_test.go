package cursor

import (
	"testing"

	"github.com/shpandrak/shpancursor"
	"github.com/stretchr/testify/require"
)

func TestCollectionStream(t *testing.T) {
	s := oneToFive()
	require.Equal(t, []int{1, 2, 3, 4, 5}, s.Entries())
	require.True(t, s.AtEnd())
	_, err := s.Forward()
	require.ErrorIs(t, err, ErrEndOfStream)

	v, err := s.Backward()
	require.NoError(t, err)
	require.Equal(t, 5, v)
	v, err = s.Forward()
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, tagged[int]{V: 5, OK: true}, currentOf(s))
	require.Equal(t, tagged[int]{}, peekOf(s))

	s.SetToBegin()
	require.True(t, s.AtBeginning())
	_, err = s.Backward()
	require.ErrorIs(t, err, ErrEndOfStream)
	require.Equal(t, tagged[int]{}, currentOf(s))
	require.Equal(t, tagged[int]{V: 1, OK: true}, peekOf(s))
	v, err = s.Forward()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, tagged[int]{V: 1, OK: true}, currentOf(s))
	require.Equal(t, tagged[int]{V: 2, OK: true}, peekOf(s))
}

func TestStream_MoveForwardUntil(t *testing.T) {
	s := oneToFive()
	_, _ = s.Forward()

	v, found := s.MoveForwardUntil(func(x int) bool { return x > 3 })
	require.True(t, found)
	require.Equal(t, 4, v)

	_, found = s.MoveForwardUntil(func(x int) bool { return x < 3 })
	require.False(t, found)
	require.True(t, s.AtEnd())

	s.SetToBegin()
	_, found = s.MoveForwardUntil(shpancursor.GreaterThan(6))
	require.False(t, found)
	require.True(t, s.AtEnd())
}

func TestStream_MoveBackwardUntil(t *testing.T) {
	s := oneToFive()
	s.SetToEnd()

	v, found := s.MoveBackwardUntil(shpancursor.LessThan(3))
	require.True(t, found)
	require.Equal(t, 2, v)
	require.Equal(t, tagged[int]{V: 1, OK: true}, currentOf(s))

	_, found = s.MoveBackwardUntil(shpancursor.GreaterThan(3))
	require.False(t, found)
	require.True(t, s.AtBeginning())
}

func TestStream_FirstAndLast(t *testing.T) {
	s := oneToFive()
	last, err := s.Last()
	require.NoError(t, err)
	require.Equal(t, 5, last)
	require.Equal(t, tagged[int]{V: 4, OK: true}, currentOf(s))

	first, err := s.First()
	require.NoError(t, err)
	require.Equal(t, 1, first)
	require.Equal(t, tagged[int]{V: 1, OK: true}, currentOf(s))

	_, err = Empty[int]().First()
	require.ErrorIs(t, err, ErrEndOfStream)
	_, err = Empty[int]().Last()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestStream_ForwardAtEndFailsForEveryExample(t *testing.T) {
	for _, ex := range allExamples() {
		t.Run(ex.name, func(t *testing.T) {
			s := ex.create()
			s.SetToEnd()
			_, err := s.Forward()
			require.ErrorIs(t, err, ErrEndOfStream)
			require.True(t, s.AtEnd())

			s.SetToBegin()
			_, err = s.Backward()
			require.ErrorIs(t, err, ErrEndOfStream)
			require.True(t, s.AtBeginning())
		})
	}
}

func TestStream_PeekIsIdempotent(t *testing.T) {
	for _, ex := range allExamples() {
		t.Run(ex.name, func(t *testing.T) {
			s := ex.create()
			s.SetToBegin()
			first := peekOf(s)
			require.Equal(t, first, peekOf(s))
			require.Equal(t, first, peekOf(s))
			require.True(t, s.AtBeginning())

			if first.OK {
				v, err := s.Forward()
				require.NoError(t, err)
				require.Equal(t, first.V, v)
			}
			s.SetToEnd()
		})
	}
}

func TestStream_IsEmpty(t *testing.T) {
	require.True(t, Empty[int]().IsEmpty())
	require.True(t, Just[int]().IsEmpty())
	require.True(t, Just(1, 2).Filter(shpancursor.GreaterThan(2)).IsEmpty())
	require.False(t, Just(1).IsEmpty())
}

func TestStream_CopiesShareTheCursor(t *testing.T) {
	s := oneToFive()
	other := s
	_, _ = s.Forward()
	require.Equal(t, tagged[int]{V: 1, OK: true}, currentOf(other))
}

func TestStream_ModifiedStream(t *testing.T) {
	a := []int{1, 2, 3}
	require.Equal(t, []int{2, 3}, FromSlice(a).RemoveFirst().Entries())
	require.Equal(t, []int{1, 2}, FromSlice(a).RemoveLast().Entries())

	_, err := Just(1).RemoveLast().Forward()
	require.ErrorIs(t, err, ErrEndOfStream)
	_, err = Just(1).RemoveFirst().Forward()
	require.ErrorIs(t, err, ErrEndOfStream)

	require.True(t, Empty[int]().RemoveFirst().IsEmpty())
	require.True(t, Empty[int]().RemoveLast().IsEmpty())
}

func TestStream_ConcatenatedEmptyStream(t *testing.T) {
	s := Append(Empty[int](), Empty[int]())
	require.True(t, s.AtEnd())
	require.True(t, s.AtBeginning())
}
