//go:build debug

package board

import (
	"github.com/pkg/errors"

	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
)

// ErrInvariantViolation marks a fatal internal consistency failure,
// surfaced only in debug builds.
var ErrInvariantViolation = errors.New("board: invariant violation")

// CheckInvariants walks the arena and grid and panics if any of the
// group/board consistency invariants below do not hold. Only compiled
// into debug builds; production code never pays for this walk.
func (b *Board) CheckInvariants() {
	for _, id := range b.arena.IDs() {
		g := b.arena.Get(id)

		// stones and liberties are disjoint.
		for _, p := range g.Stones.Slice() {
			if g.Liberties.Contains(p) {
				panic(errors.Wrapf(ErrInvariantViolation, "group %d: stone %v is also a liberty", id, p))
			}
		}

		// every liberty is empty and touches the group.
		for _, lib := range g.Liberties.Slice() {
			if !b.IsEmpty(lib) {
				panic(errors.Wrapf(ErrInvariantViolation, "group %d: liberty %v is occupied", id, lib))
			}
			if !adjacentToAny(lib, g.Stones) {
				panic(errors.Wrapf(ErrInvariantViolation, "group %d: liberty %v touches no stone", id, lib))
			}
		}

		// no active group has zero liberties.
		if g.Liberties.Size() == 0 {
			panic(errors.Wrapf(ErrInvariantViolation, "group %d has zero liberties", id))
		}

		// stones are 4-connected.
		if !connected(g.Stones) {
			panic(errors.Wrapf(ErrInvariantViolation, "group %d is not 4-connected", id))
		}
	}

	// every occupied cell references a unique active group containing it.
	for r := 0; r < geometry.BoardSize; r++ {
		for c := 0; c < geometry.BoardSize; c++ {
			pos := geometry.Position{Row: r, Col: c}
			id := b.grid[r][c]
			if id == group.NoGroup {
				continue
			}
			g := b.arena.Get(id)
			if g == nil {
				panic(errors.Wrapf(ErrInvariantViolation, "cell %v references freed group %d", pos, id))
			}
			if !g.Stones.Contains(pos) {
				panic(errors.Wrapf(ErrInvariantViolation, "cell %v references group %d which does not contain it", pos, id))
			}
		}
	}
}

func adjacentToAny(p geometry.Position, stones *geometry.Set) bool {
	for _, n := range p.Neighbors() {
		if stones.Contains(n) {
			return true
		}
	}
	return false
}

func connected(stones *geometry.Set) bool {
	all := stones.Slice()
	if len(all) == 0 {
		return false
	}
	seen := geometry.NewSet()
	stack := []geometry.Position{all[0]}
	seen.Add(all[0])
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range p.Neighbors() {
			if stones.Contains(n) && !seen.Contains(n) {
				seen.Add(n)
				stack = append(stack, n)
			}
		}
	}
	return seen.Size() == len(all)
}
