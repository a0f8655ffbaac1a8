package game

import "hive_go/internal/hex"

// Snapshot is the read-only match data consulted by the rules.
type Snapshot struct {
	Grid          *hex.Grid
	Board         BoardView
	Turn          int
	CurrentPlayer Player
	Summoned      [NumPlayers][NumPieceTypes]int
}

// SummonLocations returns where the current player may place a new piece of
// type t:
//   - on an empty board, anywhere on the grid;
//   - with a single piece down on turn 1, next to it;
//   - otherwise on an empty hex next to one of the player's own pieces and
//     not next to any opponent piece.
//
// A type already at its limit has no locations.
func SummonLocations(s Snapshot, t PieceType) []hex.Hex {
	if s.Summoned[s.CurrentPlayer][t] >= t.Limit() {
		return nil
	}
	b := s.Board
	switch {
	case b.Len() == 0:
		return s.Grid.Hexes()
	case b.Len() == 1 && s.Turn == 1:
		return s.Grid.Neighbors(b.Hexes()[0])
	}

	me := s.CurrentPlayer
	seen := make(map[hex.Hex]bool)
	var out []hex.Hex
	for _, h := range b.Hexes() {
		if top, _ := TopAt(b, h); top.Owner != me {
			continue
		}
		for _, n := range h.Neighbors() {
			if seen[n] || !s.Grid.Contains(n) || Occupied(b, n) {
				continue
			}
			seen[n] = true
			if !touchesOwner(b, n, me.Opponent()) {
				out = append(out, n)
			}
		}
	}
	return out
}

// touchesOwner reports whether a neighbor of h has a top piece owned by p.
func touchesOwner(b BoardView, h hex.Hex, p Player) bool {
	for _, n := range h.Neighbors() {
		if top, ok := TopAt(b, n); ok && top.Owner == p {
			return true
		}
	}
	return false
}

// Winner checks players in canonical order (White, then Black) and returns
// the first whose opponent's A piece is live and fully surrounded.
func Winner(b BoardView) (Player, bool) {
	for _, p := range Players {
		if h, ok := findTop(b, Piece{Type: A, Owner: p.Opponent()}); ok && occupiedNeighbors(b, h) == 6 {
			return p, true
		}
	}
	return White, false
}

// findTop locates a live (top of stack) piece equal to want.
func findTop(b BoardView, want Piece) (hex.Hex, bool) {
	for _, h := range b.Hexes() {
		if top, _ := TopAt(b, h); top == want {
			return h, true
		}
	}
	return hex.Hex{}, false
}

// MustSummonA reports whether a player is on the last turn allowed to bring
// in the A piece and so may summon nothing else.
func MustSummonA(turnsTaken int, aSummoned bool) bool {
	return turnsTaken == 3 && !aSummoned
}

// MayMove reports whether a player's pieces may move at all: once A is on
// the board, or after the forced-A deadline has passed.
func MayMove(turnsTaken int, aSummoned bool) bool {
	return aSummoned || turnsTaken >= 4
}
