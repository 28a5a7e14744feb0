package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionOrdering(t *testing.T) {
	a := Position{Line: 1, Column: 5}
	b := Position{Line: 1, Column: 9}
	c := Position{Line: 2, Column: 0}

	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.False(t, b.Less(a))
	require.True(t, a.LessEqual(a))
	require.Equal(t, "1:5", a.String())
}

func TestRangeLenAndContains(t *testing.T) {
	outer := Range{From: 0, To: 10}
	inner := Range{From: 2, To: 5}
	require.Equal(t, uint32(10), outer.Len())
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
}

func TestRangeLenClampsWhenInverted(t *testing.T) {
	r := Range{From: 5, To: 2}
	require.Equal(t, uint32(0), r.Len())
}

func TestRangeJoinHandlesZeroSides(t *testing.T) {
	r := Range{From: 2, To: 4}
	require.Equal(t, r, Range{}.Join(r))
	require.Equal(t, r, r.Join(Range{}))

	joined := Range{From: 0, To: 3}.Join(Range{From: 2, To: 5})
	require.Equal(t, Range{From: 0, To: 5}, joined)
}

func TestLocationContainsAndJoin(t *testing.T) {
	outer := Location{Start: Position{1, 0}, End: Position{3, 0}}
	inner := Location{Start: Position{1, 2}, End: Position{2, 4}}
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))

	joined := Location{Start: Position{2, 0}, End: Position{2, 5}}.
		Join(Location{Start: Position{1, 1}, End: Position{1, 9}})
	require.Equal(t, Position{1, 1}, joined.Start)
	require.Equal(t, Position{2, 5}, joined.End)
}

func TestLocationJoinHandlesZeroSides(t *testing.T) {
	loc := Location{Start: Position{1, 0}, End: Position{1, 3}}
	require.Equal(t, loc, Location{}.Join(loc))
	require.Equal(t, loc, loc.Join(Location{}))
}
