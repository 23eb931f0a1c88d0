// Package board implements the 9x9 grid of stones, backed by an arena of
// groups (internal/group), and enforces the placement rules: suicide
// rejection, capture, and ko.
package board

import (
	"strings"

	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
)

// KoRule selects how Board.PlaceStone enforces the ko rule.
type KoRule int

const (
	// SuperKo rejects any move that would recreate a whole-board
	// configuration seen earlier in the game (positional superko). This
	// is the default rule.
	SuperKo KoRule = iota
	// SimpleKo only rejects the immediate recapture of a single stone.
	SimpleKo
)

// Board is the 9x9 grid of stones, each cell either empty (group.NoGroup)
// or a reference to the group occupying it, plus the arena of active
// groups and the hash history used for ko enforcement.
type Board struct {
	grid    [geometry.BoardSize][geometry.BoardSize]group.ID
	arena   *group.Arena
	koRule  KoRule
	history []uint64
}

// New returns an empty 9x9 board using positional superko.
func New() *Board {
	return &Board{arena: group.NewArena(), koRule: SuperKo}
}

// SetKoRule selects simple-ko or superko enforcement. Must be called
// before any stones are placed to have a well-defined effect on history.
func (b *Board) SetKoRule(rule KoRule) {
	b.koRule = rule
}

// KoRule reports the board's current ko enforcement mode.
func (b *Board) KoRule() KoRule {
	return b.koRule
}

// StoneAt returns the color at pos and whether the cell is occupied.
func (b *Board) StoneAt(pos geometry.Position) (group.Color, bool) {
	id := b.grid[pos.Row][pos.Col]
	if id == group.NoGroup {
		return 0, false
	}
	return b.arena.Get(id).Color, true
}

// IsEmpty reports whether pos has no stone.
func (b *Board) IsEmpty(pos geometry.Position) bool {
	return b.grid[pos.Row][pos.Col] == group.NoGroup
}

// GroupAt returns the group occupying pos, or nil if pos is empty.
func (b *Board) GroupAt(pos geometry.Position) *group.Group {
	id := b.grid[pos.Row][pos.Col]
	return b.arena.Get(id)
}

// Groups returns every active group of the given color.
func (b *Board) Groups(color group.Color) []*group.Group {
	out := make([]*group.Group, 0)
	for _, id := range b.arena.IDs() {
		g := b.arena.Get(id)
		if g.Color == color {
			out = append(out, g)
		}
	}
	return out
}

// AllGroups returns every active group on the board.
func (b *Board) AllGroups() []*group.Group {
	out := make([]*group.Group, 0)
	for _, id := range b.arena.IDs() {
		out = append(out, b.arena.Get(id))
	}
	return out
}

// PlaceStone attempts to place a stone of color at pos:
// suicide and ko violations are rejected and leave the board unchanged.
// Returns true on success.
func (b *Board) PlaceStone(color group.Color, pos geometry.Position) bool {
	if !pos.Valid() || !b.IsEmpty(pos) {
		return false
	}

	// snapshot for rollback: grid is a fixed-size array (value semantics),
	// the arena needs an explicit deep clone.
	snapshotGrid := b.grid
	snapshotArena := b.arena
	snapshotHistoryLen := len(b.history)
	b.arena = b.arena.Clone()

	friendly := map[group.ID]bool{}
	enemy := map[group.ID]bool{}
	var emptyNeighbors []geometry.Position
	for _, n := range pos.Neighbors() {
		id := b.grid[n.Row][n.Col]
		if id == group.NoGroup {
			emptyNeighbors = append(emptyNeighbors, n)
			continue
		}
		g := b.arena.Get(id)
		if g.Color == color {
			friendly[id] = true
		} else {
			enemy[id] = true
		}
	}

	candidate := &group.Group{
		Color:     color,
		Stones:    geometry.NewSetOf(pos),
		Liberties: geometry.NewSetOf(emptyNeighbors...),
	}
	for id := range friendly {
		g := b.arena.Get(id)
		candidate.Stones.Union(g.Stones)
		candidate.Liberties.Union(g.Liberties)
		b.arena.Free(id)
	}
	candidate.Liberties.Remove(pos)
	candidateID := b.arena.Put(candidate)
	for _, sp := range candidate.Stones.Slice() {
		b.grid[sp.Row][sp.Col] = candidateID
	}

	for id := range enemy {
		b.arena.Get(id).Liberties.Remove(pos)
	}

	var captured []geometry.Position
	for id := range enemy {
		g := b.arena.Get(id)
		if g.Liberties.Size() == 0 {
			captured = append(captured, g.Stones.Slice()...)
			b.arena.Free(id)
		}
	}
	for _, cp := range captured {
		b.grid[cp.Row][cp.Col] = group.NoGroup
	}
	// A captured cell becomes a new liberty for every still-active group
	// touching it — including, possibly, the stone just placed.
	for _, cp := range captured {
		for _, n := range cp.Neighbors() {
			nid := b.grid[n.Row][n.Col]
			if nid != group.NoGroup {
				b.arena.Get(nid).Liberties.Add(cp)
			}
		}
	}

	if len(captured) == 0 && candidate.Liberties.Size() == 0 {
		// Suicide: no enemy died and the placed group has no liberties.
		b.grid = snapshotGrid
		b.arena = snapshotArena
		b.history = b.history[:snapshotHistoryLen]
		return false
	}

	newHash := b.hash()
	if b.koViolation(newHash, len(captured)) {
		b.grid = snapshotGrid
		b.arena = snapshotArena
		b.history = b.history[:snapshotHistoryLen]
		return false
	}

	b.history = append(b.history, newHash)
	return true
}

func (b *Board) koViolation(newHash uint64, captureCount int) bool {
	switch b.koRule {
	case SimpleKo:
		// The position two plies back is the one before the opponent's
		// capturing move; an immediate recapture that reproduces it is
		// the only thing simple ko forbids. history[len-1] is the current
		// position (before this move), not the one to compare against.
		return captureCount == 1 && len(b.history) >= 2 && newHash == b.history[len(b.history)-2]
	default: // SuperKo
		for _, h := range b.history {
			if h == newHash {
				return true
			}
		}
		return false
	}
}

// hash returns a DJB-style hash of the whole-board stone configuration,
// based on cell colors rather than group ids so that two boards with the
// same stones but differently-numbered groups hash equal.
func (b *Board) hash() uint64 {
	var h uint64 = 5381
	for r := 0; r < geometry.BoardSize; r++ {
		for c := 0; c < geometry.BoardSize; c++ {
			id := b.grid[r][c]
			var v uint64
			if id != group.NoGroup {
				if b.arena.Get(id).Color == group.Black {
					v = 1
				} else {
					v = 2
				}
			}
			h = ((h << 5) + h) + v
		}
	}
	return h
}

// Copy returns an independent board: the grid and arena are deep-cloned
// and the ko history is copied by value, so mutating the copy (as search
// does) never affects the original.
func (b *Board) Copy() *Board {
	histCopy := make([]uint64, len(b.history))
	copy(histCopy, b.history)
	return &Board{
		grid:    b.grid,
		arena:   b.arena.Clone(),
		koRule:  b.koRule,
		history: histCopy,
	}
}

// String renders the board as a 9x9 grid of '.', 'B', 'W', one row per
// line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < geometry.BoardSize; r++ {
		for c := 0; c < geometry.BoardSize; c++ {
			color, ok := b.StoneAt(geometry.Position{Row: r, Col: c})
			switch {
			case !ok:
				sb.WriteByte('.')
			case color == group.Black:
				sb.WriteByte('B')
			default:
				sb.WriteByte('W')
			}
		}
		if r < geometry.BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
