// Package readers implements the tactical move generators that feed the
// bot driver: capture, anti-capture, ladder, and anti-ladder.
package readers

import (
	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
	"github.com/ninekoh/atarigo/internal/rules"
)

// Result is the total output of a tactical reader: either a (possibly
// empty) list of candidate moves, or a must-resign signal. MustResign is
// only ever set by readers that are allowed to emit it (anti-capture,
// anti-ladder) and only when the bot's configuration permits resignation.
type Result struct {
	Moves      []geometry.Position
	MustResign bool
}

// Capture scans active enemy groups with exactly one liberty and returns
// every such liberty that is a legal move for color.
func Capture(b *board.Board, color group.Color) Result {
	seen := geometry.NewSet()
	var moves []geometry.Position
	for _, g := range b.Groups(color.Opponent()) {
		if !g.InAtari() {
			continue
		}
		lib := g.Liberties.Slice()[0]
		if seen.Contains(lib) {
			continue
		}
		if rules.IsValidMove(b, lib, color) {
			seen.Add(lib)
			moves = append(moves, lib)
		}
	}
	return Result{Moves: moves}
}

// AntiCapture scans friendly groups in atari and tries to play their
// escape liberty.
func AntiCapture(b *board.Board, color group.Color, canResign bool) Result {
	var moves []geometry.Position
	acPool := board.NewPool()
	for _, g := range b.Groups(color) {
		if !g.InAtari() {
			continue
		}
		esc := g.Liberties.Slice()[0]

		if rules.IsMoveSelfCapture(b, esc, color) {
			if canResign {
				return Result{MustResign: true}
			}
			continue
		}

		if canResign {
			trial := acPool.Get(b)
			trial.PlaceStone(color, esc)
			inAtari := rules.IsInAtari(trial, color)
			acPool.Put(trial)
			if inAtari {
				return Result{MustResign: true}
			}
		}
		moves = append(moves, esc)
	}
	return Result{Moves: moves}
}

// Ladder attempts to force-capture an enemy 2-liberty group within
// depthLimit plies. Returns the move to play now and
// whether the ladder works; depthLimit <= 0 disables the reader. If an
// enemy group is already in atari, it reports true with the zero Position
// and leaves the capture to the caller.
func Ladder(b *board.Board, friendly group.Color, depthLimit int) (geometry.Position, bool) {
	if depthLimit <= 0 {
		return geometry.Position{}, false
	}
	pool := board.NewPool()
	return ladderStep(b, friendly, 1, depthLimit, pool)
}

// ladderStep recurses on pooled scratch boards: trial (friendly's candidate
// chase move) and trial2 (enemy's forced response) are both returned to pool
// before this call's two return points, so a single pool covers the whole
// recursion no matter how deep it goes.
func ladderStep(b *board.Board, friendly group.Color, r, depthLimit int, pool *board.Pool) (geometry.Position, bool) {
	if r > depthLimit {
		return geometry.Position{}, false
	}
	enemy := friendly.Opponent()
	if rules.IsInAtari(b, enemy) {
		return geometry.Position{}, true
	}

	for _, g := range b.Groups(enemy) {
		if g.Liberties.Size() != 2 {
			continue
		}
		anchor := g.Stones.Slice()[0]

		for _, h := range g.Liberties.Slice() {
			if !rules.IsValidMove(b, h, friendly) {
				continue
			}
			trial := pool.Get(b)
			trial.PlaceStone(friendly, h)
			if rules.IsInAtari(trial, friendly) {
				pool.Put(trial)
				continue
			}

			eg := trial.GroupAt(anchor)
			if eg == nil {
				// h captured the whole group outright.
				pool.Put(trial)
				return h, true
			}
			if eg.Liberties.Size() != 1 {
				pool.Put(trial)
				continue
			}
			n := eg.Liberties.Slice()[0]

			trial2 := pool.Get(trial)
			pool.Put(trial)
			if !trial2.PlaceStone(enemy, n) {
				// Enemy can't actually take its one remaining liberty.
				pool.Put(trial2)
				return h, true
			}
			_, works := ladderStep(trial2, friendly, r+1, depthLimit, pool)
			pool.Put(trial2)
			if works {
				return h, true
			}
		}
	}
	return geometry.Position{}, false
}

// AntiLadder returns moves that defuse a ladder the opponent could run
// against friendly.
func AntiLadder(b *board.Board, friendly group.Color, depthLimit int, nearest, canResign bool) Result {
	enemy := friendly.Opponent()
	if _, threatens := Ladder(b, enemy, depthLimit); !threatens {
		return Result{}
	}

	var qualifying []geometry.Position
	scanPool := board.NewPool()
	for _, pos := range geometry.AllPositions() {
		if !rules.IsValidMove(b, pos, friendly) {
			continue
		}
		trial := scanPool.Get(b)
		trial.PlaceStone(friendly, pos)
		selfAtari := rules.IsInAtari(trial, friendly)
		var stillWorks bool
		if !selfAtari {
			_, stillWorks = Ladder(trial, enemy, depthLimit)
		}
		scanPool.Put(trial)
		if selfAtari || stillWorks {
			continue
		}
		qualifying = append(qualifying, pos)
	}

	if len(qualifying) == 0 {
		return Result{MustResign: canResign}
	}

	if nearest {
		if filtered := filterNearFriendly(b, qualifying, friendly); len(filtered) > 0 {
			return Result{Moves: filtered}
		}
	}
	return Result{Moves: qualifying}
}

func filterNearFriendly(b *board.Board, moves []geometry.Position, friendly group.Color) []geometry.Position {
	var out []geometry.Position
	for _, m := range moves {
		for _, n := range m.Neighbors() {
			if c, ok := b.StoneAt(n); ok && c == friendly {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
