// Package group implements connected stone groups and the arena that
// addresses them by small integer id, so a board grid holds plain ids
// instead of pointers and a board snapshot is an array-value copy of the
// grid plus a group-by-group clone of the arena.
package group

import "github.com/ninekoh/atarigo/internal/geometry"

// Color is one of the two stone colors.
type Color int

const (
	Black Color = iota
	White
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// ID addresses a Group in an Arena. The zero value, NoGroup, means "empty".
type ID int

// NoGroup is the id of "no group" — an empty board cell.
const NoGroup ID = 0

// Group is one connected component of same-color stones, plus its liberties.
//
// Invariants: Stones∩Liberties=∅; every liberty is orthogonally adjacent
// to at least one stone; stones are 4-connected; all stones share Color.
type Group struct {
	Color     Color
	Stones    *geometry.Set
	Liberties *geometry.Set
}

func newGroup(color Color) *Group {
	return &Group{Color: color, Stones: geometry.NewSet(), Liberties: geometry.NewSet()}
}

// Clone returns an independent deep copy of g.
func (g *Group) Clone() *Group {
	return &Group{Color: g.Color, Stones: g.Stones.Clone(), Liberties: g.Liberties.Clone()}
}

// InAtari reports whether g has exactly one liberty.
func (g *Group) InAtari() bool {
	return g.Liberties.Size() == 1
}

// Arena owns the set of currently active groups, addressed by ID. Ids are
// never reused while a game is in progress: freeing a group never lowers
// the next-allocation counter. Superko hashing (see internal/board) reads
// cell colors, not ids, so it does not depend on id numbering.
type Arena struct {
	groups map[ID]*Group
	nextID ID
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{groups: make(map[ID]*Group), nextID: 1}
}

// Alloc creates a new group of the given color, with no stones and no
// liberties yet, and returns its id.
func (a *Arena) Alloc(color Color) ID {
	id := a.nextID
	a.nextID++
	a.groups[id] = newGroup(color)
	return id
}

// Put inserts an already-built group under a freshly allocated id and
// returns it. Used when merging friendly groups into a new combined group.
func (a *Arena) Put(g *Group) ID {
	id := a.nextID
	a.nextID++
	a.groups[id] = g
	return id
}

// Get returns the group for id, or nil if id is NoGroup or unallocated.
func (a *Arena) Get(id ID) *Group {
	if id == NoGroup {
		return nil
	}
	return a.groups[id]
}

// Free removes a group from the arena (it was captured or merged away).
func (a *Arena) Free(id ID) {
	delete(a.groups, id)
}

// IDs returns every currently active group id, in unspecified order.
func (a *Arena) IDs() []ID {
	out := make([]ID, 0, len(a.groups))
	for id := range a.groups {
		out = append(out, id)
	}
	return out
}

// Clone returns an independent arena: every active group is deep-cloned,
// and ids are preserved so a paired grid clone stays consistent.
func (a *Arena) Clone() *Arena {
	out := &Arena{groups: make(map[ID]*Group, len(a.groups)), nextID: a.nextID}
	for id, g := range a.groups {
		out.groups[id] = g.Clone()
	}
	return out
}

// CloneInto overwrites dst with an independent deep copy of a's groups,
// reusing dst's existing backing map instead of allocating a new one.
func (a *Arena) CloneInto(dst *Arena) {
	if dst.groups == nil {
		dst.groups = make(map[ID]*Group, len(a.groups))
	} else {
		for id := range dst.groups {
			delete(dst.groups, id)
		}
	}
	for id, g := range a.groups {
		dst.groups[id] = g.Clone()
	}
	dst.nextID = a.nextID
}
