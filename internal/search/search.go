// Package search implements a depth-limited minimax reader: a
// liberty-based evaluation with forced win/loss short-circuits, one of
// which (optional) reads whether the opponent has a working ladder.
package search

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
	"github.com/ninekoh/atarigo/internal/readers"
	"github.com/ninekoh/atarigo/internal/rules"
)

// win and loss are the forced-outcome evaluation bounds.
const (
	win  = 1000
	loss = -1000
)

// Options configures a minimax search.
type Options struct {
	Depth int
	// LadderDepth bounds the minimax_ladder short-circuit read; 0 disables
	// that read. The leaf evaluation does not use it.
	LadderDepth int
	// MinimaxLadder enables the "opponent has a working ladder against
	// the mover" short-circuit.
	MinimaxLadder bool
	Rand          *rand.Rand
	// Log, if set, receives Debug-level depth/score diagnostics. Nil
	// disables logging entirely.
	Log *zap.Logger

	pool *board.Pool
}

// Move runs minimax to Options.Depth plies and returns the best move for
// color, chosen uniformly at random among ties. ok is false
// if color has no legal, non-eye, non-self-atari move anywhere on the board.
func Move(b *board.Board, color group.Color, opts Options) (geometry.Position, bool) {
	if opts.pool == nil {
		opts.pool = board.NewPool()
	}

	var best []geometry.Position
	bestScore := loss - 1

	for _, pos := range branchMoves(b, color, opts) {
		score := childScore(b, color, pos, opts.Depth-1, opts)
		if opts.Log != nil {
			opts.Log.Debug("minimax candidate scored",
				zap.Int("row", pos.Row), zap.Int("col", pos.Col), zap.Int("score", score))
		}
		switch {
		case score > bestScore:
			bestScore = score
			best = []geometry.Position{pos}
		case score == bestScore:
			best = append(best, pos)
		}
	}

	if len(best) == 0 {
		return geometry.Position{}, false
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	chosen := best[0]
	if len(best) > 1 {
		chosen = best[r.Intn(len(best))]
	}
	if opts.Log != nil {
		opts.Log.Debug("minimax move chosen",
			zap.Int("row", chosen.Row), zap.Int("col", chosen.Col),
			zap.Int("score", bestScore), zap.Int("ties", len(best)))
	}
	return chosen, true
}

// minimax returns the evaluation of b from mover's point of view: positive
// favors mover, negative favors its opponent.
func minimax(b *board.Board, mover group.Color, depth int, opts Options) int {
	moves := branchMoves(b, mover, opts)
	if len(moves) == 0 {
		return evaluate(b, mover, opts)
	}

	bestScore := loss - 1
	for _, pos := range moves {
		score := childScore(b, mover, pos, depth-1, opts)
		if score > bestScore {
			bestScore = score
		}
	}
	return bestScore
}

// childScore plays mover's candidate move pos on a pooled scratch copy of
// b and applies the node short-circuits below before recursing.
func childScore(b *board.Board, mover group.Color, pos geometry.Position, depth int, opts Options) int {
	trial := opts.pool.Get(b)
	defer opts.pool.Put(trial)
	trial.PlaceStone(mover, pos)
	opponent := mover.Opponent()

	if rules.IsInAtari(trial, mover) {
		return loss
	}
	if opts.MinimaxLadder {
		if _, works := readers.Ladder(trial, opponent, opts.LadderDepth); works {
			return loss
		}
	}
	if ataries := atariGroupCount(trial, opponent); ataries >= 2 {
		return win
	} else if ataries == 1 {
		if escapeIsSelfCapture(trial, opponent) {
			return win
		}
	}

	if depth <= 0 {
		return evaluate(trial, mover, opts)
	}
	return -minimax(trial, opponent, depth, opts)
}

// branchMoves lists every move legal for mover that is not eye-filling and
// does not immediately leave mover in self-atari.
func branchMoves(b *board.Board, mover group.Color, opts Options) []geometry.Position {
	var out []geometry.Position
	for _, pos := range geometry.AllPositions() {
		if !rules.IsValidMove(b, pos, mover) {
			continue
		}
		if rules.IsPointAnEye(b, pos, mover) {
			continue
		}
		trial := opts.pool.Get(b)
		trial.PlaceStone(mover, pos)
		selfAtari := rules.IsInAtari(trial, mover)
		opts.pool.Put(trial)
		if selfAtari {
			continue
		}
		out = append(out, pos)
	}
	return out
}

func atariGroupCount(b *board.Board, color group.Color) int {
	n := 0
	for _, g := range b.Groups(color) {
		if g.InAtari() {
			n++
		}
	}
	return n
}

// escapeIsSelfCapture reports whether color's one atari group cannot be
// saved without self-capture.
func escapeIsSelfCapture(b *board.Board, color group.Color) bool {
	for _, g := range b.Groups(color) {
		if g.InAtari() {
			esc := g.Liberties.Slice()[0]
			return rules.IsMoveSelfCapture(b, esc, color)
		}
	}
	return false
}

// evaluate scores a leaf position by liberty differential.
func evaluate(b *board.Board, mover group.Color, opts Options) int {
	return minLiberties(b, mover) - minLiberties(b, mover.Opponent())
}

// minLiberties returns the fewest liberties held by any active group of
// color, or 0 if color has no active groups.
func minLiberties(b *board.Board, color group.Color) int {
	min := -1
	for _, g := range b.Groups(color) {
		if n := g.Liberties.Size(); min < 0 || n < min {
			min = n
		}
	}
	if min < 0 {
		return 0
	}
	return min
}
