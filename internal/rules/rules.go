// Package rules implements move-legality and position predicates on top
// of a board: validity, atari, eye detection, and self-capture.
package rules

import (
	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
)

// IsValidMove reports whether placing color at pos would succeed, by
// trying it on a disposable copy of b.
func IsValidMove(b *board.Board, pos geometry.Position, color group.Color) bool {
	return b.Copy().PlaceStone(color, pos)
}

// IsInAtari reports whether any active group of color has exactly one
// liberty.
func IsInAtari(b *board.Board, color group.Color) bool {
	for _, g := range b.Groups(color) {
		if g.InAtari() {
			return true
		}
	}
	return false
}

// IsMoveSelfCapture reports whether playing color at pos would be a
// suicide: the placed stone's group ends up with zero liberties and no
// enemy group is captured.
func IsMoveSelfCapture(b *board.Board, pos geometry.Position, color group.Color) bool {
	if !pos.Valid() || !b.IsEmpty(pos) {
		return false
	}
	return wouldBeSuicide(b, pos, color)
}

// wouldBeSuicide directly reimplements board.PlaceStone's suicide check
// without committing a move, so IsMoveSelfCapture can distinguish
// "illegal because suicide" from "illegal because ko" or "illegal
// because occupied".
func wouldBeSuicide(b *board.Board, pos geometry.Position, color group.Color) bool {
	friendlyLiberties := geometry.NewSet()
	hasEnemyAtZero := false

	for _, n := range pos.Neighbors() {
		if b.IsEmpty(n) {
			friendlyLiberties.Add(n)
			continue
		}
		g := b.GroupAt(n)
		if g.Color == color {
			friendlyLiberties.Union(g.Liberties)
		} else if g.Liberties.Size() == 1 && g.Liberties.Contains(pos) {
			hasEnemyAtZero = true
		}
	}
	friendlyLiberties.Remove(pos)

	if hasEnemyAtZero {
		return false
	}
	return friendlyLiberties.Size() == 0
}

// IsPointAnEye reports whether pos is an empty point whose orthogonal
// neighbors are all stones of color, and whose diagonal neighbors satisfy
// the center/side/corner eye rule: a center point needs at least 3 of its
// 4 diagonals friendly, a side or corner point needs all of them.
func IsPointAnEye(b *board.Board, pos geometry.Position, color group.Color) bool {
	if !b.IsEmpty(pos) {
		return false
	}

	neighbors := pos.Neighbors()
	for _, n := range neighbors {
		c, ok := b.StoneAt(n)
		if !ok || c != color {
			return false
		}
	}
	// A point with fewer than 4 on-grid orthogonal neighbors only happens
	// at the edge/corner of the grid, which off-board neighbors already
	// handle implicitly: Neighbors() only returns on-grid cells, so we also
	// need all 4 directions present for the interior "center eye" case.
	isCenter := len(neighbors) == 4

	corners := pos.Corners()
	friendlyDiagonals := 0
	for _, d := range corners {
		if c, ok := b.StoneAt(d); ok && c == color {
			friendlyDiagonals++
		}
	}

	if isCenter {
		return friendlyDiagonals >= 3
	}
	// Side or corner eye: every on-grid diagonal must be friendly.
	return friendlyDiagonals == len(corners)
}
