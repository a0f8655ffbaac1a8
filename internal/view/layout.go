package view

import (
	"math"

	"hive_go/internal/game"
	"hive_go/internal/hex"
)

// PanelHeight is the strip under the board that holds the HUD and buttons.
const PanelHeight = 110

const margin = 0.95

// Layout maps grid hexes to screen pixels and back. The board is centered in
// the area above the panel and shrunk when the configured hex size would not
// fit.
type Layout struct {
	Grid    *hex.Grid
	Width   int
	Height  int
	HexSize float64 // effective size, corner to center
	OriginX float64 // screen position of hex (0,0)
	OriginY float64
}

// NewLayout fits grid into a width x height screen, using hexSize when
// there is room for it.
func NewLayout(grid *hex.Grid, width, height int, hexSize float64) Layout {
	boardH := float64(height - PanelHeight)
	span := float64(2*grid.Radius() + 1)
	fitW := float64(width) / (span * math.Sqrt(3))
	fitH := boardH / (span * 1.5)
	size := math.Min(hexSize, math.Min(fitW, fitH)*margin)
	return Layout{
		Grid:    grid,
		Width:   width,
		Height:  height,
		HexSize: size,
		OriginX: float64(width) / 2,
		OriginY: boardH / 2,
	}
}

// Center returns the screen position of h's center.
func (l Layout) Center(h hex.Hex) (x, y float64) {
	px, py := hex.ToPixel(h, l.HexSize)
	return l.OriginX + px, l.OriginY + py
}

// HexAt returns the grid hex under a screen point. ok is false off the grid.
func (l Layout) HexAt(x, y float64) (h hex.Hex, ok bool) {
	h = hex.FromPixel(x-l.OriginX, y-l.OriginY, l.HexSize)
	return h, l.Grid.Contains(h)
}

// Corners returns the six screen-space corners of h.
func (l Layout) Corners(h hex.Hex) [6][2]float64 {
	cs := hex.Corners(h, l.HexSize)
	for i := range cs {
		cs[i][0] += l.OriginX
		cs[i][1] += l.OriginY
	}
	return cs
}

// ButtonKind tells what a panel button does.
type ButtonKind int

const (
	ButtonSummon ButtonKind = iota
	ButtonPass
	ButtonReset
)

// Button is a clickable rectangle in the panel.
type Button struct {
	Kind       ButtonKind
	Type       game.PieceType // for ButtonSummon
	X, Y, W, H float64
}

func (b Button) contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

const (
	buttonW   = 72
	buttonH   = 34
	buttonGap = 10
)

// Buttons lays out the summon buttons (A..E) followed by pass and reset in
// one row at the bottom of the panel.
func (l Layout) Buttons() []Button {
	n := game.NumPieceTypes + 2
	total := float64(n)*buttonW + float64(n-1)*buttonGap
	x := (float64(l.Width) - total) / 2
	y := float64(l.Height) - buttonH - 14
	out := make([]Button, 0, n)
	for _, t := range game.PieceTypes {
		out = append(out, Button{Kind: ButtonSummon, Type: t, X: x, Y: y, W: buttonW, H: buttonH})
		x += buttonW + buttonGap
	}
	out = append(out, Button{Kind: ButtonPass, X: x, Y: y, W: buttonW, H: buttonH})
	x += buttonW + buttonGap
	out = append(out, Button{Kind: ButtonReset, X: x, Y: y, W: buttonW, H: buttonH})
	return out
}

// ButtonAt returns the button under a screen point.
func (l Layout) ButtonAt(x, y float64) (Button, bool) {
	for _, b := range l.Buttons() {
		if b.contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
