package hex

// Grid is the fixed, finite set of playable hexes: a hexagon of the given
// radius around the origin. It is built once per match and never mutated.
type Grid struct {
	radius int
	cells  map[Hex]struct{}
	order  []Hex
}

// NewGrid enumerates every hex with max(|q|,|r|,|s|) <= radius.
func NewGrid(radius int) *Grid {
	if radius < 0 {
		radius = 0
	}
	g := &Grid{
		radius: radius,
		cells:  make(map[Hex]struct{}, CellCount(radius)),
		order:  make([]Hex, 0, CellCount(radius)),
	}
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			h := Hex{q, r}
			g.cells[h] = struct{}{}
			g.order = append(g.order, h)
		}
	}
	return g
}

// CellCount is the number of hexes in a grid of the given radius.
func CellCount(radius int) int { return 1 + 3*radius*(radius+1) }

// Radius returns the grid radius.
func (g *Grid) Radius() int { return g.radius }

// Contains reports whether h is a playable hex.
func (g *Grid) Contains(h Hex) bool {
	_, ok := g.cells[h]
	return ok
}

// Len returns the number of hexes in the grid.
func (g *Grid) Len() int { return len(g.order) }

// Hexes returns every hex in a stable order (q ascending, then r).
// The returned slice is a copy.
func (g *Grid) Hexes() []Hex {
	out := make([]Hex, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the in-grid neighbors of h in Directions order.
func (g *Grid) Neighbors(h Hex) []Hex {
	out := make([]Hex, 0, 6)
	for _, n := range h.Neighbors() {
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
