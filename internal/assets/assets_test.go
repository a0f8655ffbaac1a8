package assets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hive_go/internal/game"
)

func TestPieceToken(t *testing.T) {
	white, err := PieceToken(game.White, 100, false)
	require.NoError(t, err)
	require.Equal(t, 100, white.Bounds().Dx())
	require.Equal(t, 100, white.Bounds().Dy())

	center := white.RGBAAt(50, 50)
	require.Equal(t, uint8(0xff), center.A)
	require.Greater(t, center.R, uint8(0xc0), "white fill")
	require.Zero(t, white.RGBAAt(0, 0).A, "corner stays transparent")
	require.Zero(t, white.RGBAAt(98, 50).A, "no halo")

	black, err := PieceToken(game.Black, 100, false)
	require.NoError(t, err)
	require.Less(t, black.RGBAAt(50, 50).R, uint8(0x40), "black fill")

	stacked, err := PieceToken(game.White, 100, true)
	require.NoError(t, err)
	require.NotZero(t, stacked.RGBAAt(98, 50).A, "halo")

	again, err := PieceToken(game.White, 100, false)
	require.NoError(t, err)
	require.Same(t, white, again)
}

func TestPieceTokenErrors(t *testing.T) {
	_, err := PieceToken(game.White, 0, false)
	require.Error(t, err)
	_, err = PieceToken(game.Player(7), 10, false)
	require.Error(t, err)
	_, err = RasterizeSVG([]byte(`<svg viewBox="0 0 10 10"><circle`), 10, 10)
	require.Error(t, err)
}

func TestRasterizeSVGAspect(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100"><rect x="0" y="0" width="200" height="100" fill="#ff0000"/></svg>`)
	img, err := RasterizeSVG(svg, 40, 0)
	require.NoError(t, err)
	require.Equal(t, 40, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())
	require.Equal(t, uint8(0xff), img.RGBAAt(20, 10).R)
}
