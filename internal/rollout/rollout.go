// Package rollout implements a Monte-Carlo playout sampler: for each
// candidate move, simulate random games and score by wins over losses.
package rollout

import (
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
	"github.com/ninekoh/atarigo/internal/readers"
	"github.com/ninekoh/atarigo/internal/rules"
)

// minLossDenominator substitutes for a zero-loss denominator so a move
// with no recorded losses yet scores high rather than undefined.
const minLossDenominator = 0.1

// Options configures a rollout sampler run.
type Options struct {
	Visits int
	Rand   *rand.Rand
	// Workers, when > 1, fans candidate-move sampling out across that many
	// goroutines for an optional concurrent mode. 0 or 1 runs
	// sequentially on opts.Rand.
	Workers int
	// Log, if set, receives Debug-level per-candidate sample diagnostics.
	// Nil disables logging entirely.
	Log *zap.Logger
}

// Move runs the sampler for every legal, non-eye, non-self-capture
// candidate move and returns the move with the best wins/losses score.
// ok is false if no candidate survives filtering, in which case the bot
// passes.
func Move(b *board.Board, color group.Color, opts Options) (geometry.Position, bool) {
	candidates := candidateMoves(b, color)
	if len(candidates) == 0 {
		return geometry.Position{}, false
	}

	var scores []float64
	if opts.Workers > 1 {
		scores = scoreParallel(b, color, candidates, opts)
	} else {
		scores = make([]float64, len(candidates))
		r := opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(1))
		}
		pool := board.NewPool()
		for i, m := range candidates {
			scores[i] = scoreMove(b, color, m, opts.Visits, r, pool)
		}
	}

	if opts.Log != nil {
		for i, pos := range candidates {
			opts.Log.Debug("rollout candidate sampled",
				zap.Int("row", pos.Row), zap.Int("col", pos.Col),
				zap.Int("visits", opts.Visits), zap.Float64("score", scores[i]))
		}
	}

	best := 0
	bestScore := scores[0]
	var ties []int
	for i, s := range scores {
		switch {
		case s > bestScore:
			bestScore = s
			best = i
			ties = []int{i}
		case s == bestScore:
			ties = append(ties, i)
		}
	}
	if len(ties) > 1 {
		r := opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(1))
		}
		best = ties[r.Intn(len(ties))]
	}
	if opts.Log != nil {
		opts.Log.Debug("rollout move chosen",
			zap.Int("row", candidates[best].Row), zap.Int("col", candidates[best].Col),
			zap.Float64("score", bestScore), zap.Int("ties", len(ties)))
	}
	return candidates[best], true
}

// Parallel runs Move with its playouts fanned out across workerCount
// goroutines, one candidate move's samples per worker slot at a time.
func Parallel(b *board.Board, color group.Color, visits, workerCount int, r *rand.Rand) (geometry.Position, bool) {
	return Move(b, color, Options{Visits: visits, Workers: workerCount, Rand: r})
}

// scoreParallel runs candidate moves concurrently, each with its own
// deterministic RNG stream so results stay reproducible regardless of
// goroutine scheduling order.
func scoreParallel(b *board.Board, color group.Color, candidates []geometry.Position, opts Options) []float64 {
	scores := make([]float64, len(candidates))
	jobs := make(chan int)
	var wg sync.WaitGroup

	seedBase := int64(1)
	if opts.Rand != nil {
		seedBase = opts.Rand.Int63()
	}

	workers := opts.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker gets its own pool: board.Pool is a plain LIFO
			// free list with no internal locking.
			pool := board.NewPool()
			for i := range jobs {
				r := rand.New(rand.NewSource(seedBase + int64(i)))
				scores[i] = scoreMove(b, color, candidates[i], opts.Visits, r, pool)
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return scores
}

func candidateMoves(b *board.Board, color group.Color) []geometry.Position {
	var out []geometry.Position
	for _, pos := range geometry.AllPositions() {
		if !rules.IsValidMove(b, pos, color) {
			continue
		}
		if rules.IsPointAnEye(b, pos, color) {
			continue
		}
		if rules.IsMoveSelfCapture(b, pos, color) {
			continue
		}
		out = append(out, pos)
	}
	return out
}

func scoreMove(b *board.Board, color group.Color, move geometry.Position, visits int, r *rand.Rand, pool *board.Pool) float64 {
	wins, losses := 0, 0
	for i := 0; i < visits; i++ {
		start := pool.Get(b)
		start.PlaceStone(color, move)
		winner := playout(start, color.Opponent(), color, r)
		pool.Put(start)
		switch winner {
		case color:
			wins++
		case color.Opponent():
			losses++
		}
	}
	return float64(wins) / maxFloat(float64(losses), minLossDenominator)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// playout alternates random play starting with toMove.
// Returns the winning color, or group.Color(-1) when the side to move has
// no candidate move left (no winner); the caller's switch counts that as
// neither a win nor a loss.
func playout(b *board.Board, toMove, root group.Color, r *rand.Rand) group.Color {
	const noWinner = group.Color(-1)
	side := toMove
	for {
		if rules.IsInAtari(b, side) {
			return side.Opponent()
		}
		if ac := readers.AntiCapture(b, side, false); len(ac.Moves) > 0 {
			move := ac.Moves[r.Intn(len(ac.Moves))]
			b.PlaceStone(side, move)
			side = side.Opponent()
			continue
		}

		move, ok := randomLegalMove(b, side, r)
		if !ok {
			return noWinner
		}
		b.PlaceStone(side, move)
		side = side.Opponent()
	}
}

func randomLegalMove(b *board.Board, color group.Color, r *rand.Rand) (geometry.Position, bool) {
	candidates := candidateMoves(b, color)
	if len(candidates) == 0 {
		return geometry.Position{}, false
	}
	return candidates[r.Intn(len(candidates))], true
}
