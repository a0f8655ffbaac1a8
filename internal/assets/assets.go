package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"hive_go/internal/game"
)

// tokenSVG draws a round piece token; the optional halo marks a stack.
const tokenSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
%s<circle cx="50" cy="50" r="41" fill="%s" stroke="%s" stroke-width="6"/>
</svg>`

const haloSVG = `<circle cx="50" cy="50" r="48" fill="none" stroke="#e0b030" stroke-width="3"/>
`

var tokenColors = [game.NumPlayers]struct{ fill, stroke string }{
	game.White: {"#f4efe1", "#3a3a3a"},
	game.Black: {"#2b2b2b", "#d8d8d8"},
}

type tokenKey struct {
	owner   game.Player
	size    int
	stacked bool
}

// rasterized tokens, filled lazily from the draw loop
var tokenCache = map[tokenKey]*image.RGBA{}

// PieceToken returns a size x size token for owner's pieces. Results are
// cached; callers must not modify the image.
func PieceToken(owner game.Player, size int, stacked bool) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("token size must be positive, got %d", size)
	}
	if owner != game.White && owner != game.Black {
		return nil, fmt.Errorf("unknown player %d", owner)
	}
	key := tokenKey{owner, size, stacked}
	if img := tokenCache[key]; img != nil {
		return img, nil
	}
	halo := ""
	if stacked {
		halo = haloSVG
	}
	c := tokenColors[owner]
	img, err := RasterizeSVG([]byte(fmt.Sprintf(tokenSVG, halo, c.fill, c.stroke)), size, size)
	if err != nil {
		return nil, fmt.Errorf("render %s token: %w", owner, err)
	}
	tokenCache[key] = img
	return img, nil
}

// RasterizeSVG renders SVG bytes onto a transparent image. A non-positive
// target dimension is derived from the view box aspect ratio.
func RasterizeSVG(svgData []byte, targetW, targetH int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	vb := icon.ViewBox

	w := float64(targetW)
	h := float64(targetH)
	switch {
	case w <= 0 && h <= 0:
		w, h = vb.W, vb.H
	case w <= 0:
		w = h * vb.W / vb.H
	case h <= 0:
		h = w * vb.H / vb.W
	}
	w, h = max(w, 1), max(h, 1)

	icon.SetTarget(0, 0, w, h)

	dstW, dstH := int(w+0.5), int(h+0.5)
	rgba := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.Draw(rgba, rgba.Bounds(), image.Transparent, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(dstW, dstH, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(dstW, dstH, scanner)
	icon.Draw(dasher, 1.0)
	return rgba, nil
}
