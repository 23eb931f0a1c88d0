package board

import "github.com/ninekoh/atarigo/internal/group"

// Pool recycles scratch Board values so recursive and per-candidate trial
// moves (minimax, rollout playouts, the ladder reader) don't allocate a
// fresh Board and Arena on every trial. It is a simple LIFO free list: Get
// returns a board initialized as a copy of src, owned exclusively by the
// caller until it is returned with Put. Not safe for concurrent use —
// each goroutine (e.g. a rollout worker) needs its own Pool.
type Pool struct {
	free []*Board
}

// NewPool returns an empty pool. Boards are allocated lazily as Get needs
// them and reused for the lifetime of the pool thereafter.
func NewPool() *Pool {
	return &Pool{}
}

// Get returns a scratch board initialized as an independent copy of src.
// Callers must call Put on the returned board once they are done with it
// (typically via defer) so it can be reused by a later Get.
func (p *Pool) Get(src *Board) *Board {
	n := len(p.free)
	if n == 0 {
		dst := &Board{arena: group.NewArena()}
		src.copyInto(dst)
		return dst
	}
	dst := p.free[n-1]
	p.free = p.free[:n-1]
	src.copyInto(dst)
	return dst
}

// Put returns b to the pool for reuse by a later Get. b must not be read
// or written after calling Put.
func (p *Pool) Put(b *Board) {
	p.free = append(p.free, b)
}

// copyInto overwrites dst with an independent copy of b's state, reusing
// dst's existing arena storage instead of allocating a new one.
func (b *Board) copyInto(dst *Board) {
	dst.grid = b.grid
	dst.koRule = b.koRule
	b.arena.CloneInto(dst.arena)
	dst.history = append(dst.history[:0], b.history...)
}
