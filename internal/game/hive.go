package game

import "hive_go/internal/hex"

// IsHiveConnected reports whether every occupied hex is reachable from every
// other through occupied neighbors. Empty and single-piece boards are
// connected.
func IsHiveConnected(b BoardView) bool {
	hs := b.Hexes()
	if len(hs) <= 1 {
		return true
	}
	visited := map[hex.Hex]bool{hs[0]: true}
	queue := []hex.Hex{hs[0]}
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, n := range cur.Neighbors() {
			if !visited[n] && Occupied(b, n) {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return count == len(hs)
}

// MoveBreaksHive reports whether picking up the top piece on h would split
// the hive. A stack taller than one always leaves an occupant behind.
func MoveBreaksHive(b BoardView, h hex.Hex) bool {
	if len(b.Stack(h)) != 1 {
		return false
	}
	return !IsHiveConnected(lift(b, h))
}

// TrapThreshold is the number of occupied neighbors that makes a hex too
// tight to enter.
const TrapThreshold = 5

// IsTrapped reports whether at least TrapThreshold neighbors of h are occupied.
func IsTrapped(b BoardView, h hex.Hex) bool {
	return occupiedNeighbors(b, h) >= TrapThreshold
}

func occupiedNeighbors(b BoardView, h hex.Hex) int {
	n := 0
	for _, nb := range h.Neighbors() {
		if Occupied(b, nb) {
			n++
		}
	}
	return n
}

// touchesHive reports whether any neighbor of h is occupied.
func touchesHive(b BoardView, h hex.Hex) bool {
	for _, nb := range h.Neighbors() {
		if Occupied(b, nb) {
			return true
		}
	}
	return false
}

// Gates returns the two hexes adjacent to both from and to. ok is false when
// the hexes are not neighbors.
func Gates(from, to hex.Hex) (g1, g2 hex.Hex, ok bool) {
	for i := range hex.Directions {
		if from.Neighbor(i) == to {
			return from.Neighbor((i + 1) % 6), from.Neighbor((i + 5) % 6), true
		}
	}
	return hex.Hex{}, hex.Hex{}, false
}

// CanSlide reports whether a piece can slide from one hex to an adjacent one:
// at least one of the two gates must be open.
func CanSlide(b BoardView, from, to hex.Hex) bool {
	g1, g2, ok := Gates(from, to)
	if !ok {
		return false
	}
	return !(Occupied(b, g1) && Occupied(b, g2))
}
