// File hex/coord.go
package hex

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex represents an axial hex coordinate (q, r).
// The third cube coordinate s is derived as -q-r and never stored.
type Hex struct {
	Q, R int
}

// Directions defines the 6 neighbor offsets in axial coordinates.
// Index order is fixed: neighbor(i) always uses Directions[i].
var Directions = [6]Hex{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// New returns the hex at (q, r).
func New(q, r int) Hex { return Hex{Q: q, R: r} }

// S returns the implicit third cube coordinate.
func (h Hex) S() int { return -h.Q - h.R }

// Add returns h+o in axial space.
func (h Hex) Add(o Hex) Hex { return Hex{h.Q + o.Q, h.R + o.R} }

// Scale multiplies the axial vector by k.
func (h Hex) Scale(k int) Hex { return Hex{h.Q * k, h.R * k} }

// Neighbor returns the adjacent hex in direction dir (0..5).
func (h Hex) Neighbor(dir int) Hex { return h.Add(Directions[dir]) }

// Neighbors returns all six adjacent hexes in Directions order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range Directions {
		out[i] = h.Add(d)
	}
	return out
}

// Distance returns the hex distance (|dq|+|dr|+|ds|)/2.
func (h Hex) Distance(o Hex) int {
	dq, dr := h.Q-o.Q, h.R-o.R
	ds := h.S() - o.S()
	return (abs(dq) + abs(dr) + abs(ds)) / 2
}

// Key returns the canonical "q,r" string for h.
func (h Hex) Key() string {
	return strconv.Itoa(h.Q) + "," + strconv.Itoa(h.R)
}

func (h Hex) String() string { return h.Key() }

// FromKey parses a key produced by Key.
func FromKey(key string) (Hex, error) {
	qs, rs, ok := strings.Cut(key, ",")
	if !ok {
		return Hex{}, fmt.Errorf("hex key %q: missing separator", key)
	}
	q, err := strconv.Atoi(qs)
	if err != nil {
		return Hex{}, fmt.Errorf("hex key %q: bad q: %w", key, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Hex{}, fmt.Errorf("hex key %q: bad r: %w", key, err)
	}
	return Hex{q, r}, nil
}

// Compare orders hexes by q, then r. Used wherever iteration order must be stable.
func Compare(a, b Hex) int {
	if a.Q != b.Q {
		return a.Q - b.Q
	}
	return a.R - b.R
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
