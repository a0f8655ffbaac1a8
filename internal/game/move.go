// File game/move.go
package game

import (
	"slices"

	"hive_go/internal/hex"
)

// Move is a relocation of the top piece on From to To.
type Move struct {
	From hex.Hex
	To   hex.Hex
}

// CandidateMoves returns the unfiltered destinations of the piece p standing
// on h, by piece type.
func CandidateMoves(b BoardView, g *hex.Grid, h hex.Hex, p Piece) []hex.Hex {
	switch p.Type {
	case A, E:
		return slideReach(lift(b, h), g, h)
	case B:
		lifted := lift(b, h)
		return append(slideReach(lifted, g, h), climbTargets(lifted, g, h)...)
	case C:
		return exactSlides(lift(b, h), g, h, CSlideSteps)
	case D:
		return jumpTargets(b, g, h)
	}
	panic("CandidateMoves: unknown piece type " + p.Type.String())
}

// slideReach flood-fills every empty in-grid hex reachable from start through
// legal single slides, never revisiting a hex. start itself is excluded.
func slideReach(b BoardView, g *hex.Grid, start hex.Hex) []hex.Hex {
	var out []hex.Hex
	visited := map[hex.Hex]bool{start: true}
	queue := []hex.Hex{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if visited[n] || !g.Contains(n) || Occupied(b, n) || !CanSlide(b, cur, n) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
			out = append(out, n)
		}
	}
	return out
}

// exactSlides returns the hexes whose shortest slide path from start is
// exactly steps long.
func exactSlides(b BoardView, g *hex.Grid, start hex.Hex, steps int) []hex.Hex {
	var out []hex.Hex
	dist := map[hex.Hex]int{start: 0}
	queue := []hex.Hex{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		if d == steps {
			out = append(out, cur)
			continue
		}
		for _, n := range cur.Neighbors() {
			if _, seen := dist[n]; seen || !g.Contains(n) || Occupied(b, n) || !CanSlide(b, cur, n) {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}
	return out
}

// climbTargets returns the occupied neighbors of h a stacking piece may
// climb onto.
func climbTargets(b BoardView, g *hex.Grid, h hex.Hex) []hex.Hex {
	var out []hex.Hex
	for _, n := range h.Neighbors() {
		if g.Contains(n) && Occupied(b, n) {
			out = append(out, n)
		}
	}
	return out
}

// jumpTargets walks each direction from h across at least one occupied hex
// and lands on the first empty hex beyond, if it is still on the grid.
func jumpTargets(b BoardView, g *hex.Grid, h hex.Hex) []hex.Hex {
	var out []hex.Hex
	for _, d := range hex.Directions {
		jumped := false
		for cur := h.Add(d); g.Contains(cur); cur = cur.Add(d) {
			if Occupied(b, cur) {
				jumped = true
				continue
			}
			if jumped {
				out = append(out, cur)
			}
			break
		}
	}
	return out
}

// FilterMoves applies the placement rules shared by every piece type to the
// candidates of piece p leaving origin.
//
// The destination must be on the grid and next to the hive once p is picked
// up; that adjacency is waived while at most two hexes are occupied, unless
// p is the only piece (nothing to stay attached to). B may land on an
// occupied hex; every other type needs an empty one, and A, C, E may not
// enter a trapped hex.
func FilterMoves(b BoardView, g *hex.Grid, p Piece, origin hex.Hex, moves []hex.Hex) []hex.Hex {
	lifted := lift(b, origin)
	waive := b.Len() <= 2 && lifted.Len() > 0
	out := make([]hex.Hex, 0, len(moves))
	for _, to := range moves {
		if to == origin || !g.Contains(to) {
			continue
		}
		if !waive && !touchesHive(lifted, to) {
			continue
		}
		if p.Type.CanStack() {
			out = append(out, to)
			continue
		}
		if Occupied(b, to) {
			continue
		}
		if p.Type.RespectsTraps() && IsTrapped(b, to) {
			continue
		}
		out = append(out, to)
	}
	return out
}

// ValidMoves returns the legal destinations of the top piece on h.
func ValidMoves(b BoardView, g *hex.Grid, h hex.Hex) []hex.Hex {
	p, ok := TopAt(b, h)
	if !ok || MoveBreaksHive(b, h) {
		return nil
	}
	moves := FilterMoves(b, g, p, h, CandidateMoves(b, g, h, p))
	if b.Len() > 2 {
		return moves
	}
	// bootstrap waiver: keep only moves that leave one hive
	return slices.DeleteFunc(moves, func(to hex.Hex) bool {
		after := materialize(b)
		after.relocate(h, to)
		return !IsHiveConnected(after)
	})
}

// materialize copies any view into a mutable scratch board.
func materialize(b BoardView) *Board {
	nb := NewBoard()
	for _, h := range b.Hexes() {
		nb.stacks[h] = slices.Clone(b.Stack(h))
	}
	return nb
}
