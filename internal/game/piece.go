package game

import "fmt"

// Player identifies one of the two sides. White always moves first.
type Player int

const (
	White Player = iota
	Black
)

// NumPlayers is the number of sides in a match.
const NumPlayers = 2

// Players lists both sides in the fixed canonical order used by every
// per-player iteration, including the win check.
var Players = [NumPlayers]Player{White, Black}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// PieceType is the closed set of piece kinds {A, B, C, D, E}.
type PieceType int

const (
	A PieceType = iota // queen-like: its capture ends the game
	B                  // may climb onto occupied hexes
	C                  // exactly CSlideSteps slides
	D                  // jumps over a line of pieces
	E                  // free slider
)

// NumPieceTypes is the number of piece kinds.
const NumPieceTypes = 5

// PieceTypes lists every kind in summon-panel order.
var PieceTypes = [NumPieceTypes]PieceType{A, B, C, D, E}

// CSlideSteps is the exact slide distance a C piece travels.
const CSlideSteps = 3

// Limit is the number of pieces of a type each player may summon.
func (t PieceType) Limit() int {
	switch t {
	case A:
		return 1
	case B, C, D:
		return 2
	case E:
		return 3
	}
	return 0
}

// CanStack reports whether the type may move onto an occupied hex.
func (t PieceType) CanStack() bool { return t == B }

// RespectsTraps reports whether the type may not land on a trapped hex.
// D jumps in and is exempt; B is only ever checked for stacking.
func (t PieceType) RespectsTraps() bool {
	switch t {
	case A, C, E:
		return true
	}
	return false
}

func (t PieceType) String() string {
	if t >= A && t <= E {
		return string(rune('A' + int(t)))
	}
	return fmt.Sprintf("PieceType(%d)", int(t))
}

// ParsePieceType converts "A".."E" to a PieceType.
func ParsePieceType(s string) (PieceType, error) {
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'E' {
		return PieceType(s[0] - 'A'), nil
	}
	return 0, fmt.Errorf("unknown piece type %q", s)
}

// Piece is an immutable (type, owner) pair. Moving a piece removes it from
// one stack and pushes an equal value onto another.
type Piece struct {
	Type  PieceType
	Owner Player
}

func (p Piece) String() string { return p.Owner.String()[:1] + p.Type.String() }
