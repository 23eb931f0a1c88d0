package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
)

func at(r, c int) geometry.Position {
	return geometry.Position{Row: r, Col: c}
}

func TestSimpleCapture(t *testing.T) {
	b := board.New()
	require.True(t, b.PlaceStone(group.Black, at(0, 0)))
	require.True(t, b.PlaceStone(group.Black, at(0, 2)))
	require.True(t, b.PlaceStone(group.Black, at(1, 1)))
	require.True(t, b.PlaceStone(group.White, at(0, 1)))
	require.True(t, b.PlaceStone(group.White, at(2, 1)))
	require.True(t, b.PlaceStone(group.Black, at(1, 2)))
	require.True(t, b.PlaceStone(group.Black, at(1, 0)))

	_, occupied := b.StoneAt(at(0, 1))
	require.False(t, occupied, "captured White stone must be removed")
}

func TestSuicideRejected(t *testing.T) {
	b := board.New()
	require.True(t, b.PlaceStone(group.White, at(0, 1)))
	require.True(t, b.PlaceStone(group.White, at(1, 0)))

	before := b.String()
	require.False(t, b.PlaceStone(group.Black, at(0, 0)))
	require.Equal(t, before, b.String(), "board must be unchanged after rejected suicide")
}

func TestKoRejectsImmediateRecapture(t *testing.T) {
	b := board.New()
	// Classic diamond ko centered on (4,6), built up one legal placement at
	// a time: Black's lone stone at (4,5) sits in atari surrounded by three
	// White groups, with (4,6) as its sole liberty.
	require.True(t, b.PlaceStone(group.Black, at(3, 6)))
	require.True(t, b.PlaceStone(group.White, at(3, 5)))
	require.True(t, b.PlaceStone(group.Black, at(4, 7)))
	require.True(t, b.PlaceStone(group.White, at(4, 4)))
	require.True(t, b.PlaceStone(group.Black, at(5, 6)))
	require.True(t, b.PlaceStone(group.White, at(5, 5)))
	require.True(t, b.PlaceStone(group.Black, at(4, 5)))

	// White takes the ko: playing (4,6) captures the lone Black stone.
	require.True(t, b.PlaceStone(group.White, at(4, 6)))
	_, occupied := b.StoneAt(at(4, 5))
	require.False(t, occupied)

	// Black's immediate recapture at (4,5) would restore the prior whole
	// board configuration and must be rejected.
	require.False(t, b.PlaceStone(group.Black, at(4, 5)))

	// After both sides play elsewhere, the board as a whole no longer
	// matches any earlier configuration, so the recapture becomes legal.
	require.True(t, b.PlaceStone(group.Black, at(8, 8)))
	require.True(t, b.PlaceStone(group.White, at(7, 7)))
	require.True(t, b.PlaceStone(group.Black, at(4, 5)))
	_, stillOccupied := b.StoneAt(at(4, 6))
	require.False(t, stillOccupied, "recapture should have taken the White ko stone")
}

func TestSimpleKoRejectsImmediateRecapture(t *testing.T) {
	b := board.New()
	b.SetKoRule(board.SimpleKo)
	// Same diamond ko shape as TestKoRejectsImmediateRecapture.
	require.True(t, b.PlaceStone(group.Black, at(3, 6)))
	require.True(t, b.PlaceStone(group.White, at(3, 5)))
	require.True(t, b.PlaceStone(group.Black, at(4, 7)))
	require.True(t, b.PlaceStone(group.White, at(4, 4)))
	require.True(t, b.PlaceStone(group.Black, at(5, 6)))
	require.True(t, b.PlaceStone(group.White, at(5, 5)))
	require.True(t, b.PlaceStone(group.Black, at(4, 5)))

	require.True(t, b.PlaceStone(group.White, at(4, 6)))
	_, occupied := b.StoneAt(at(4, 5))
	require.False(t, occupied)

	require.False(t, b.PlaceStone(group.Black, at(4, 5)), "simple ko must reject the immediate recapture")
}

func TestSimpleKoAllowsRecaptureAfterElsewhere(t *testing.T) {
	b := board.New()
	b.SetKoRule(board.SimpleKo)
	require.True(t, b.PlaceStone(group.Black, at(3, 6)))
	require.True(t, b.PlaceStone(group.White, at(3, 5)))
	require.True(t, b.PlaceStone(group.Black, at(4, 7)))
	require.True(t, b.PlaceStone(group.White, at(4, 4)))
	require.True(t, b.PlaceStone(group.Black, at(5, 6)))
	require.True(t, b.PlaceStone(group.White, at(5, 5)))
	require.True(t, b.PlaceStone(group.Black, at(4, 5)))
	require.True(t, b.PlaceStone(group.White, at(4, 6)))

	// Playing elsewhere first makes the recapture no longer immediate;
	// simple ko only ever looks two plies back, so this must succeed. The
	// stones at (8,8) and (7,7) also make the result a position not seen
	// before.
	require.True(t, b.PlaceStone(group.Black, at(8, 8)))
	require.True(t, b.PlaceStone(group.White, at(7, 7)))
	require.True(t, b.PlaceStone(group.Black, at(4, 5)))
	_, stillOccupied := b.StoneAt(at(4, 6))
	require.False(t, stillOccupied, "recapture should have taken the White ko stone")
}

func TestCopyIsIndependent(t *testing.T) {
	b := board.New()
	require.True(t, b.PlaceStone(group.Black, at(4, 4)))
	original := b.String()

	cp := b.Copy()
	require.True(t, cp.PlaceStone(group.White, at(4, 5)))

	require.Equal(t, original, b.String(), "mutating a copy must not affect the original")
	require.NotEqual(t, original, cp.String())
}

func TestGroupMerging(t *testing.T) {
	b := board.New()
	require.True(t, b.PlaceStone(group.Black, at(3, 3)))
	require.True(t, b.PlaceStone(group.Black, at(3, 4)))

	g := b.GroupAt(at(3, 3))
	require.Same(t, g, b.GroupAt(at(3, 4)), "adjacent friendly stones must share one group")
	require.Equal(t, 2, g.Stones.Size())
}
