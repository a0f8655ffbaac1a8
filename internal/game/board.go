// File game/board.go
package game

import (
	"slices"

	"hive_go/internal/hex"
)

// BoardView is the read-only face of a board that the rules consult.
// Stack returns the pieces on h bottom to top (nil when empty); callers must
// not modify the returned slice.
type BoardView interface {
	Stack(h hex.Hex) []Piece
	Len() int         // number of occupied hexes
	Hexes() []hex.Hex // occupied hexes, stable order
}

// Board maps each occupied hex to its stack of pieces.
// Invariant: a hex is present only while its stack is non-empty.
type Board struct {
	stacks map[hex.Hex][]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{stacks: make(map[hex.Hex][]Piece)}
}

func (b *Board) Stack(h hex.Hex) []Piece { return b.stacks[h] }

func (b *Board) Len() int { return len(b.stacks) }

func (b *Board) Hexes() []hex.Hex {
	out := make([]hex.Hex, 0, len(b.stacks))
	for h := range b.stacks {
		out = append(out, h)
	}
	slices.SortFunc(out, hex.Compare)
	return out
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	nb := &Board{stacks: make(map[hex.Hex][]Piece, len(b.stacks))}
	for h, s := range b.stacks {
		nb.stacks[h] = slices.Clone(s)
	}
	return nb
}

// place puts a new single-piece stack on an empty hex.
func (b *Board) place(h hex.Hex, p Piece) {
	b.stacks[h] = []Piece{p}
}

// relocate pops the top piece of from and puts it on to: pushed onto the
// existing stack when the piece may stack, otherwise as a new stack.
// An emptied origin is deleted. Legality is the caller's concern.
func (b *Board) relocate(from, to hex.Hex) Piece {
	s := b.stacks[from]
	p := s[len(s)-1]
	if len(s) == 1 {
		delete(b.stacks, from)
	} else {
		b.stacks[from] = s[: len(s)-1 : len(s)-1]
	}
	if dst, ok := b.stacks[to]; ok && p.Type.CanStack() {
		b.stacks[to] = append(dst, p)
	} else {
		b.stacks[to] = []Piece{p}
	}
	return p
}

// TopAt returns the live piece on h.
func TopAt(b BoardView, h hex.Hex) (Piece, bool) {
	s := b.Stack(h)
	if len(s) == 0 {
		return Piece{}, false
	}
	return s[len(s)-1], true
}

// Occupied reports whether any piece sits on h.
func Occupied(b BoardView, h hex.Hex) bool { return len(b.Stack(h)) > 0 }

// liftedBoard is b with the top piece of at removed. Nothing is copied.
type liftedBoard struct {
	base BoardView
	at   hex.Hex
}

// lift returns a view of b as if the top piece on h had been picked up.
func lift(b BoardView, h hex.Hex) BoardView {
	if !Occupied(b, h) {
		return b
	}
	return liftedBoard{base: b, at: h}
}

func (l liftedBoard) Stack(h hex.Hex) []Piece {
	s := l.base.Stack(h)
	if h == l.at {
		if len(s) <= 1 {
			return nil
		}
		return s[:len(s)-1]
	}
	return s
}

func (l liftedBoard) Len() int {
	if len(l.base.Stack(l.at)) == 1 {
		return l.base.Len() - 1
	}
	return l.base.Len()
}

func (l liftedBoard) Hexes() []hex.Hex {
	hs := l.base.Hexes()
	if len(l.base.Stack(l.at)) != 1 {
		return hs
	}
	return slices.DeleteFunc(hs, func(h hex.Hex) bool { return h == l.at })
}
