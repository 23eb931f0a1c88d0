package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
	"github.com/ninekoh/atarigo/internal/rules"
)

func at(r, c int) geometry.Position {
	return geometry.Position{Row: r, Col: c}
}

func TestIsValidMove(t *testing.T) {
	b := board.New()
	require.True(t, b.PlaceStone(group.White, at(0, 1)))
	require.True(t, b.PlaceStone(group.White, at(1, 0)))

	require.False(t, rules.IsValidMove(b, at(0, 0), group.Black), "suicide move must be invalid")
	require.True(t, rules.IsValidMove(b, at(5, 5), group.Black))
	// IsValidMove must not mutate b.
	_, occupied := b.StoneAt(at(5, 5))
	require.False(t, occupied)
}

func TestIsInAtari(t *testing.T) {
	b := board.New()
	require.False(t, rules.IsInAtari(b, group.Black))

	require.True(t, b.PlaceStone(group.Black, at(4, 4)))
	require.True(t, b.PlaceStone(group.White, at(3, 4)))
	require.True(t, b.PlaceStone(group.White, at(4, 3)))
	require.True(t, b.PlaceStone(group.White, at(4, 5)))
	// Black(4,4) now has a sole liberty at (5,4); White has plenty of
	// liberties of its own.
	require.True(t, rules.IsInAtari(b, group.Black))
	require.False(t, rules.IsInAtari(b, group.White))
}

func TestIsMoveSelfCapture(t *testing.T) {
	b := board.New()
	require.True(t, b.PlaceStone(group.White, at(0, 1)))
	require.True(t, b.PlaceStone(group.White, at(1, 0)))

	require.True(t, rules.IsMoveSelfCapture(b, at(0, 0), group.Black))

	// Counter-capture is not self-capture: if the move empties an enemy
	// liberty to zero, the mover's own group gains a liberty back.
	require.True(t, b.PlaceStone(group.Black, at(0, 2)))
	require.True(t, b.PlaceStone(group.Black, at(1, 1)))
	require.False(t, rules.IsMoveSelfCapture(b, at(0, 0), group.Black))
}

func TestIsPointAnEye(t *testing.T) {
	b := board.New()
	// All four orthogonal neighbors plus three of four diagonals: a center
	// eye only needs a 3-out-of-4 diagonal majority.
	require.True(t, b.PlaceStone(group.Black, at(0, 1)))
	require.True(t, b.PlaceStone(group.Black, at(1, 0)))
	require.True(t, b.PlaceStone(group.Black, at(1, 2)))
	require.True(t, b.PlaceStone(group.Black, at(2, 1)))
	require.True(t, b.PlaceStone(group.Black, at(0, 0)))
	require.True(t, b.PlaceStone(group.Black, at(0, 2)))
	require.True(t, b.PlaceStone(group.Black, at(2, 0)))

	require.True(t, rules.IsPointAnEye(b, at(1, 1), group.Black))
}

func TestIsPointAnEyeBrokenByMissingOrthogonal(t *testing.T) {
	b := board.New()
	require.True(t, b.PlaceStone(group.Black, at(1, 0)))
	require.True(t, b.PlaceStone(group.Black, at(1, 2)))
	require.True(t, b.PlaceStone(group.Black, at(2, 1)))
	require.False(t, rules.IsPointAnEye(b, at(1, 1), group.Black), "missing an orthogonal neighbor breaks the eye")
}

func TestIsPointAnEyeNeedsDiagonalMajority(t *testing.T) {
	b := board.New()
	// All four orthogonal neighbors but only two of four diagonals: not
	// enough for a center eye.
	require.True(t, b.PlaceStone(group.Black, at(0, 1)))
	require.True(t, b.PlaceStone(group.Black, at(1, 0)))
	require.True(t, b.PlaceStone(group.Black, at(1, 2)))
	require.True(t, b.PlaceStone(group.Black, at(2, 1)))
	require.True(t, b.PlaceStone(group.Black, at(0, 0)))
	require.True(t, b.PlaceStone(group.Black, at(0, 2)))

	require.False(t, rules.IsPointAnEye(b, at(1, 1), group.Black))
}

func TestIsPointAnEyeCorner(t *testing.T) {
	b := board.New()
	// Corner point (0,0) with Black stones at its two orthogonal neighbors
	// and its single diagonal neighbor is a corner eye.
	require.True(t, b.PlaceStone(group.Black, at(0, 1)))
	require.True(t, b.PlaceStone(group.Black, at(1, 0)))
	require.True(t, b.PlaceStone(group.Black, at(1, 1)))

	require.True(t, rules.IsPointAnEye(b, at(0, 0), group.Black))
}
