package cursor

import (
	"testing"

	"github.com/shpandrak/shpancursor"
	"github.com/stretchr/testify/require"
)

func TestStream_Filter(t *testing.T) {
	s := MustInterval(7).RemoveFirst().Filter(isEven)
	require.Equal(t, []int{2, 4, 6}, s.Entries())
	requireStandardBehavior(t, s)
	requireStandardBehavior(t, Just(1, 2, 3, 4, 5, 6).Filter(isEven))
}

func TestStream_FilterAlwaysFalseBehavesLikeEmpty(t *testing.T) {
	s := oneToFive().Filter(func(int) bool { return false })
	empty := Empty[int]()

	require.Equal(t, empty.AtBeginning(), s.AtBeginning())
	require.Equal(t, empty.AtEnd(), s.AtEnd())
	require.Equal(t, currentOf(empty), currentOf(s))
	require.Equal(t, peekOf(empty), peekOf(s))
	_, err := s.Forward()
	require.ErrorIs(t, err, ErrEndOfStream)
	_, err = s.Backward()
	require.ErrorIs(t, err, ErrEndOfStream)

	s.SetToEnd()
	require.True(t, s.AtBeginning())
	require.True(t, s.AtEnd())
}

func TestStream_FilterPeekDoesNotAdvance(t *testing.T) {
	calls := 0
	s := oneToFive().Filter(func(x int) bool {
		calls++
		return x > 3
	})
	for i := 0; i < 3; i++ {
		require.Equal(t, tagged[int]{V: 4, OK: true}, peekOf(s))
		require.True(t, s.AtBeginning())
	}
	require.Positive(t, calls)

	v, err := s.Forward()
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, tagged[int]{V: 5, OK: true}, peekOf(s))
	require.False(t, s.AtEnd())
}

func TestStream_FilterChained(t *testing.T) {
	s := Just(1, 2, 3, 4, 5, 6, 7, 8).
		Filter(isEven).
		Filter(shpancursor.GreaterThan(3)).
		Filter(shpancursor.Predicate[int](isEven).And(shpancursor.EqualTo(6).Not()))
	require.Equal(t, []int{4, 8}, s.Entries())

	v, err := s.Backward()
	require.NoError(t, err)
	require.Equal(t, 8, v)
	v, err = s.Backward()
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.True(t, s.AtBeginning())
}

func TestStream_FilterBackwardSkipsRejected(t *testing.T) {
	s := Just(2, 1, 1, 4, 3, 3).Filter(isEven)
	s.SetToEnd()
	require.Equal(t, tagged[int]{V: 4, OK: true}, currentOf(s))
	require.Equal(t, tagged[int]{}, peekOf(s))

	v, err := s.Backward()
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, tagged[int]{V: 2, OK: true}, currentOf(s))
	require.Equal(t, tagged[int]{V: 4, OK: true}, peekOf(s))
}
