package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	g := NewGrid(5)
	for _, h := range g.Hexes() {
		got, err := FromKey(h.Key())
		require.NoError(t, err)
		require.Equal(t, h, got, "round trip of %s", h.Key())
	}
}

func TestFromKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "1", "a,2", "1,b", "1;2"} {
		_, err := FromKey(key)
		require.Error(t, err, "key %q", key)
	}
}

func TestCubeInvariant(t *testing.T) {
	for _, h := range NewGrid(6).Hexes() {
		require.Zero(t, h.Q+h.R+h.S())
		for _, n := range h.Neighbors() {
			require.Zero(t, n.Q+n.R+n.S())
		}
	}
}

func TestNeighborsOrderAndDistance(t *testing.T) {
	origin := New(0, 0)
	ns := origin.Neighbors()
	for i, n := range ns {
		require.Equal(t, origin.Neighbor(i), n)
		require.Equal(t, 1, origin.Distance(n))
	}
	require.Equal(t, New(1, 0), ns[0])
	require.Equal(t, New(0, 1), ns[5])

	t.Run("distance is symmetric", func(t *testing.T) {
		a, b := New(2, -3), New(-1, 2)
		require.Equal(t, a.Distance(b), b.Distance(a))
		require.Equal(t, 5, a.Distance(b))
	})
}

func TestGrid(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{0, 1},
		{1, 7},
		{3, 37},
		{5, 91},
	}
	for _, tt := range tests {
		g := NewGrid(tt.radius)
		require.Equal(t, tt.want, g.Len(), "radius %d", tt.radius)
		require.Equal(t, tt.want, CellCount(tt.radius))
		for _, h := range g.Hexes() {
			require.LessOrEqual(t, h.Distance(New(0, 0)), tt.radius)
		}
	}

	g := NewGrid(2)
	require.True(t, g.Contains(New(2, -2)))
	require.False(t, g.Contains(New(2, 1)))
	require.Len(t, g.Neighbors(New(2, 0)), 3)
	require.Len(t, g.Neighbors(New(0, 0)), 6)
}

func TestPixelRoundTrip(t *testing.T) {
	const size = 35.0
	for _, h := range NewGrid(5).Hexes() {
		x, y := ToPixel(h, size)
		require.Equal(t, h, FromPixel(x, y, size))
		// a point well inside the hex still resolves to it
		require.Equal(t, h, FromPixel(x+size*0.4, y-size*0.3, size))
	}
}
