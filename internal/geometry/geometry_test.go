package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninekoh/atarigo/internal/geometry"
)

func TestNeighborsOnEdgeAndCorner(t *testing.T) {
	require.Len(t, geometry.Position{Row: 4, Col: 4}.Neighbors(), 4)
	require.Len(t, geometry.Position{Row: 0, Col: 0}.Neighbors(), 2)
	require.Len(t, geometry.Position{Row: 0, Col: 4}.Neighbors(), 3)
}

func TestCornersOnEdgeAndCorner(t *testing.T) {
	require.Len(t, geometry.Position{Row: 4, Col: 4}.Corners(), 4)
	require.Len(t, geometry.Position{Row: 0, Col: 0}.Corners(), 1)
}

func TestLocalities(t *testing.T) {
	center := geometry.Position{Row: 4, Col: 4}
	require.Len(t, center.Locality1(), 8)
	require.Len(t, center.Locality2(), 24)
}

func TestAllPositionsCoversWholeGrid(t *testing.T) {
	require.Len(t, geometry.AllPositions(), geometry.BoardSize*geometry.BoardSize)
}

func TestSetOperations(t *testing.T) {
	s := geometry.NewSetOf(geometry.Position{Row: 1, Col: 1}, geometry.Position{Row: 2, Col: 2})
	require.Equal(t, 2, s.Size())
	require.True(t, s.Contains(geometry.Position{Row: 1, Col: 1}))

	other := geometry.NewSetOf(geometry.Position{Row: 3, Col: 3})
	s.Union(other)
	require.Equal(t, 3, s.Size())

	clone := s.Clone()
	clone.Remove(geometry.Position{Row: 3, Col: 3})
	require.Equal(t, 3, s.Size(), "cloning must not alias the original set")
	require.Equal(t, 2, clone.Size())
}
