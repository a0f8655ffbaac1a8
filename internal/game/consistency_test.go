package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"hive_go/internal/hex"
)

// randomBoards plays 5..39 random turns per position to get boards from
// different stages of the game.
func randomBoards(numPositions, radius int, seed uint64) []*Board {
	rng := rand.New(rand.NewSource(seed))
	positions := make([]*Board, 0, numPositions)
	for i := 0; i < numPositions; i++ {
		m := NewMatch(radius, WithLogger(nopLogger))
		Playout(m, rng, rng.Intn(35)+5)
		positions = append(positions, m.board.Clone())
	}
	return positions
}

// popped is the reference for lift: a real copy with the top piece removed.
func popped(b *Board, h hex.Hex) *Board {
	c := b.Clone()
	s := c.stacks[h]
	if len(s) == 1 {
		delete(c.stacks, h)
	} else {
		c.stacks[h] = s[:len(s)-1]
	}
	return c
}

func TestLiftMatchesCopy(t *testing.T) {
	grid := hex.NewGrid(4)
	for i, b := range randomBoards(200, 4, 7) {
		for _, h := range b.Hexes() {
			ref := popped(b, h)
			l := lift(b, h)
			require.Equal(t, ref.Len(), l.Len(), "position %d hex %s", i, h)
			require.Equal(t, ref.Hexes(), l.Hexes(), "position %d hex %s", i, h)
			require.Equal(t, IsHiveConnected(ref), IsHiveConnected(l))
			require.ElementsMatch(t, slideReach(ref, grid, h), slideReach(l, grid, h))
			require.ElementsMatch(t, exactSlides(ref, grid, h, CSlideSteps), exactSlides(l, grid, h, CSlideSteps))
		}
	}
}

func TestValidMovesKeepHiveWhole(t *testing.T) {
	grid := hex.NewGrid(4)
	for i, b := range randomBoards(100, 4, 11) {
		for _, h := range b.Hexes() {
			for _, to := range ValidMoves(b, grid, h) {
				after := b.Clone()
				after.relocate(h, to)
				require.True(t, IsHiveConnected(after), "position %d: %s -> %s\n%v", i, h, to, b.Hexes())
			}
		}
	}
}

func BenchmarkValidMoves(b *testing.B) {
	grid := hex.NewGrid(5)
	boards := randomBoards(50, 5, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd := boards[i%len(boards)]
		for _, h := range bd.Hexes() {
			ValidMoves(bd, grid, h)
		}
	}
}
