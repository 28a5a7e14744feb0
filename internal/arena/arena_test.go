package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSliceAndValueAdvancePosition(t *testing.T) {
	a := NewWithPageSize(4)

	s := NewSlice[int](a, 3)
	require.Len(t, s, 3)
	require.Equal(t, 3, a.Pos())
	require.Equal(t, 1, a.Pages())

	v := NewValue[string](a)
	require.NotNil(t, v)
	require.Equal(t, "", *v)
}

func TestBumpRollsOverToNewPageWhenFull(t *testing.T) {
	a := NewWithPageSize(4)

	NewSlice[int](a, 3)
	require.Equal(t, 1, a.Pages())

	// Doesn't fit in the 1 remaining slot of page 1, so it rolls to page 2.
	NewSlice[int](a, 2)
	require.Equal(t, 2, a.Pages())
	require.Equal(t, 4+2, a.Pos())
}

func TestResetClearsBookkeeping(t *testing.T) {
	a := NewWithPageSize(4)
	NewSlice[int](a, 3)
	NewSlice[int](a, 3)
	require.NotZero(t, a.Pos())

	a.Reset()
	require.Equal(t, 0, a.Pos())
	require.Equal(t, 1, a.Pages())
}

func TestNewWithPageSizeRejectsNonPositive(t *testing.T) {
	a := NewWithPageSize(0)
	require.Equal(t, New().pageSize, a.pageSize)
}
