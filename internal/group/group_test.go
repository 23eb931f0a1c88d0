package group_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
)

func TestOpponent(t *testing.T) {
	require.Equal(t, group.White, group.Black.Opponent())
	require.Equal(t, group.Black, group.White.Opponent())
}

func TestInAtari(t *testing.T) {
	g := &group.Group{
		Color:     group.Black,
		Stones:    geometry.NewSetOf(geometry.Position{Row: 0, Col: 0}),
		Liberties: geometry.NewSetOf(geometry.Position{Row: 0, Col: 1}),
	}
	require.True(t, g.InAtari())

	g.Liberties.Add(geometry.Position{Row: 1, Col: 0})
	require.False(t, g.InAtari())
}

func TestArenaAllocAndFree(t *testing.T) {
	a := group.NewArena()
	id := a.Alloc(group.White)
	require.NotEqual(t, group.NoGroup, id)
	require.NotNil(t, a.Get(id))

	a.Free(id)
	require.Nil(t, a.Get(id))
}

func TestArenaCloneIsIndependent(t *testing.T) {
	a := group.NewArena()
	id := a.Alloc(group.Black)
	a.Get(id).Liberties.Add(geometry.Position{Row: 2, Col: 2})

	clone := a.Clone()
	clone.Get(id).Liberties.Add(geometry.Position{Row: 3, Col: 3})

	require.Equal(t, 1, a.Get(id).Liberties.Size())
	require.Equal(t, 2, clone.Get(id).Liberties.Size())
}
