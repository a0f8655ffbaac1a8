package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hive_go/internal/hex"
)

func TestLoneCHasNoMoves(t *testing.T) {
	b := boardWith(map[hex.Hex][]Piece{at(0, 0): {wp(C)}})
	require.Empty(t, ValidMoves(b, hex.NewGrid(5), at(0, 0)))
}

func TestCExactThree(t *testing.T) {
	b := boardWith(map[hex.Hex][]Piece{
		at(0, 0): {wp(C)},
		at(1, 0): {bp(A)},
		at(2, 0): {wp(A)},
		at(3, 0): {bp(E)},
	})
	got := ValidMoves(b, hex.NewGrid(5), at(0, 0))
	require.ElementsMatch(t, []hex.Hex{at(3, -1), at(2, 1)}, got)
	for _, h := range got {
		require.Equal(t, 3, at(0, 0).Distance(h))
	}
}

func TestSlidersReachAlongHive(t *testing.T) {
	grid := hex.NewGrid(5)
	b := boardWith(map[hex.Hex][]Piece{
		at(0, 0): {wp(E)},
		at(1, 0): {bp(A)},
		at(2, 0): {wp(A)},
	})
	got := ValidMoves(b, grid, at(0, 0))
	// every empty hex touching the remaining pair
	require.ElementsMatch(t, []hex.Hex{
		at(1, -1), at(2, -1), at(3, -1), at(3, 0), at(2, 1), at(1, 1), at(0, 1),
	}, got)
	require.NotContains(t, got, at(1, 0))
	require.NotContains(t, got, at(-1, 0))
}

func TestSlideBlockedByGate(t *testing.T) {
	// E sits in a pocket whose only exit is a gate.
	grid := hex.NewGrid(5)
	b := NewBoard()
	pocket := at(0, 0)
	ns := pocket.Neighbors()
	for i := 0; i < 5; i++ {
		b.place(ns[i], bp(E))
	}
	b.place(pocket, wp(E))
	open := ns[5]
	g1, g2, ok := Gates(pocket, open)
	require.True(t, ok)
	require.True(t, Occupied(b, g1) && Occupied(b, g2))
	require.Empty(t, ValidMoves(b, grid, pocket))
}

func TestTrappedHexExcluded(t *testing.T) {
	grid := hex.NewGrid(5)
	target := at(0, 0)
	ring := func() *Board {
		b := NewBoard()
		for _, h := range []hex.Hex{at(1, 0), at(1, -1), at(0, -1), at(-1, 0)} {
			b.place(h, bp(E))
		}
		return b
	}

	for _, pt := range []PieceType{A, C, E} {
		t.Run(pt.String(), func(t *testing.T) {
			b := ring()
			b.place(at(-1, 1), wp(pt))
			require.True(t, IsTrapped(b, target))
			require.True(t, CanSlide(lift(b, at(-1, 1)), at(-1, 1), target))
			require.NotContains(t, ValidMoves(b, grid, at(-1, 1)), target)
		})
	}

	t.Run("four neighbors do not trap", func(t *testing.T) {
		b := ring()
		b.place(at(-2, 1), wp(A))
		require.False(t, IsTrapped(b, target))
		require.Contains(t, ValidMoves(b, grid, at(-2, 1)), target)
	})

	t.Run("D may land in it", func(t *testing.T) {
		b := ring()
		b.place(at(-1, 1), bp(E))
		b.place(at(2, 0), wp(D))
		require.Contains(t, ValidMoves(b, grid, at(2, 0)), target)
	})
}

func TestDJumps(t *testing.T) {
	t.Run("over a line", func(t *testing.T) {
		b := boardWith(map[hex.Hex][]Piece{
			at(0, 0): {wp(D)},
			at(1, 0): {bp(A)},
			at(2, 0): {wp(A)},
		})
		require.Equal(t, []hex.Hex{at(3, 0)}, ValidMoves(b, hex.NewGrid(5), at(0, 0)))
	})

	t.Run("not off the grid", func(t *testing.T) {
		b := boardWith(map[hex.Hex][]Piece{
			at(0, 0): {wp(D)},
			at(1, 0): {bp(A)},
			at(2, 0): {wp(A)},
		})
		require.Empty(t, ValidMoves(b, hex.NewGrid(2), at(0, 0)))
	})

	t.Run("adjacent empty is no jump", func(t *testing.T) {
		b := boardWith(map[hex.Hex][]Piece{
			at(0, 0): {wp(D)},
			at(1, 0): {bp(A)},
		})
		got := jumpTargets(b, hex.NewGrid(5), at(0, 0))
		require.Equal(t, []hex.Hex{at(2, 0)}, got)
	})
}

func TestBStacks(t *testing.T) {
	grid := hex.NewGrid(5)
	b := boardWith(map[hex.Hex][]Piece{
		at(0, 0): {wp(B)},
		at(1, 0): {bp(A)},
		at(2, 0): {wp(A)},
	})
	got := ValidMoves(b, grid, at(0, 0))
	require.Contains(t, got, at(1, 0), "climb")
	require.Contains(t, got, at(1, -1), "slide")
	require.NotContains(t, got, at(2, 0), "not next to origin")

	b.relocate(at(0, 0), at(1, 0))
	require.Equal(t, []Piece{bp(A), wp(B)}, b.Stack(at(1, 0)))
	require.False(t, Occupied(b, at(0, 0)))
	top, _ := TopAt(b, at(1, 0))
	require.Equal(t, wp(B), top)

	t.Run("covered piece is frozen", func(t *testing.T) {
		require.False(t, MoveBreaksHive(b, at(1, 0)))
		for _, to := range ValidMoves(b, grid, at(1, 0)) {
			require.NotEqual(t, at(1, 0), to)
		}
		b.relocate(at(1, 0), at(1, 1))
		require.Equal(t, []Piece{bp(A)}, b.Stack(at(1, 0)))
	})

	t.Run("others never land on a stack", func(t *testing.T) {
		b := boardWith(map[hex.Hex][]Piece{
			at(0, 0): {wp(A)},
			at(1, 0): {bp(A)},
		})
		for _, pt := range []PieceType{A, C, D, E} {
			require.Empty(t, FilterMoves(b, grid, wp(pt), at(0, 0), []hex.Hex{at(1, 0)}))
		}
		require.Equal(t, []hex.Hex{at(1, 0)}, FilterMoves(b, grid, wp(B), at(0, 0), []hex.Hex{at(1, 0)}))
	})
}

func TestTwoPieceWaiver(t *testing.T) {
	grid := hex.NewGrid(5)
	b := boardWith(map[hex.Hex][]Piece{
		at(0, 0): {wp(E)},
		at(1, 0): {bp(E)},
	})
	got := ValidMoves(b, grid, at(0, 0))
	require.NotEmpty(t, got)
	for _, to := range got {
		after := b.Clone()
		after.relocate(at(0, 0), to)
		require.True(t, IsHiveConnected(after), "move to %s splits the hive", to)
	}
}

func TestLiftedBoard(t *testing.T) {
	b := boardWith(map[hex.Hex][]Piece{
		at(0, 0): {wp(A), bp(B)},
		at(1, 0): {bp(A)},
	})
	l := lift(b, at(0, 0))
	require.Equal(t, 2, l.Len())
	require.Equal(t, []Piece{wp(A)}, l.Stack(at(0, 0)))

	l = lift(b, at(1, 0))
	require.Equal(t, 1, l.Len())
	require.Nil(t, l.Stack(at(1, 0)))
	require.Equal(t, []hex.Hex{at(0, 0)}, l.Hexes())
	require.Len(t, b.Hexes(), 2, "base untouched")
}
