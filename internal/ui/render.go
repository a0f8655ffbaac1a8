package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hive_go/internal/game"
	"hive_go/internal/hex"
	"hive_go/internal/view"
)

// fillHex fills the hexagon with the given screen corners as a fan of six
// triangles around its center.
func (gs *GameScreen) fillHex(dst *ebiten.Image, cx, cy float64, pts [6][2]float64, fill color.Color) {
	r, g, b, a := fill.RGBA()
	vtx := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 0, SrcY: 0,
			ColorR: float32(r) / 0xffff, ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff, ColorA: float32(a) / 0xffff,
		}
	}
	vs := make([]ebiten.Vertex, 0, 7)
	vs = append(vs, vtx(cx, cy))
	for _, p := range pts {
		vs = append(vs, vtx(p[0], p[1]))
	}
	is := make([]uint16, 0, 18)
	for i := 0; i < 6; i++ {
		is = append(is, 0, uint16(i+1), uint16((i+1)%6+1))
	}
	dst.DrawTriangles(vs, is, gs.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokeHex outlines the hexagon with the given corners.
func strokeHex(dst *ebiten.Image, pts [6][2]float64, width float32, clr color.Color) {
	for i := 0; i < 6; i++ {
		j := (i + 1) % 6
		vector.StrokeLine(dst,
			float32(pts[i][0]), float32(pts[i][1]),
			float32(pts[j][0]), float32(pts[j][1]),
			width, clr, true)
	}
}

func (gs *GameScreen) drawGrid(dst *ebiten.Image) {
	for _, h := range gs.state.Grid.Hexes() {
		cx, cy := gs.layout.Center(h)
		pts := gs.layout.Corners(h)
		gs.fillHex(dst, cx, cy, pts, view.HexFill)
		strokeHex(dst, pts, 1, view.HexStroke)
	}
}

// drawTargets marks legal destinations or summon placements.
func (gs *GameScreen) drawTargets(dst *ebiten.Image) {
	clr := view.TargetColor(gs.state.Phase)
	r := float32(gs.layout.HexSize * 0.4)
	for _, h := range gs.state.Targets {
		cx, cy := gs.layout.Center(h)
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), r, clr, true)
	}
}

// drawMovableHints puts a dot under every piece that can move, while idle.
func (gs *GameScreen) drawMovableHints(dst *ebiten.Image) {
	if gs.state.Phase != game.AwaitingInput {
		return
	}
	r := float32(gs.layout.HexSize * 0.3)
	for _, h := range gs.state.MovableHexes() {
		cx, cy := gs.layout.Center(h)
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), r, view.MovableHint, true)
	}
}

func (gs *GameScreen) drawPieces(dst *ebiten.Image) {
	b := gs.state.Board
	for _, h := range b.Hexes() {
		top, _ := game.TopAt(b, h)
		stacked := len(b.Stack(h)) > 1
		gs.drawPiece(dst, h, top, stacked)
	}
}

func (gs *GameScreen) drawPiece(dst *ebiten.Image, h hex.Hex, p game.Piece, stacked bool) {
	img := gs.tokens[tokenKey{p.Owner, stacked}]
	cx, cy := gs.layout.Center(h)
	w, ht := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(cx-w/2, cy-ht/2)
	dst.DrawImage(img, op)

	gs.drawTextCentered(dst, p.Type.String(), cx, cy, view.PieceText(p.Owner))
	if stacked && gs.debug {
		gs.drawTextCentered(dst, strconv.Itoa(len(gs.state.Board.Stack(h))), cx+gs.layout.HexSize*0.55, cy-gs.layout.HexSize*0.55, view.StackHalo)
	}
}

func (gs *GameScreen) drawSelection(dst *ebiten.Image) {
	if !gs.state.HasSelection {
		return
	}
	strokeHex(dst, gs.layout.Corners(gs.state.Selected), 3, view.SelectionRing)
}

// drawPanel draws the status lines and the button row.
func (gs *GameScreen) drawPanel(dst *ebiten.Image) {
	l := gs.layout
	top := float32(l.Height - view.PanelHeight)
	vector.DrawFilledRect(dst, 0, top, float32(l.Width), view.PanelHeight, view.PanelFill, false)

	st := gs.state
	status := "Game over"
	if st.Phase != game.GameOver {
		status = fmt.Sprintf("Turn %d  |  %s to play", st.Turn, view.PlayerName(st.CurrentPlayer))
	}
	text.Draw(dst, status, gs.fontFace, 16, int(top)+20, view.Text)
	text.Draw(dst, view.Prompt(st), gs.fontFace, 16, int(top)+38, view.Text)
	if st.Notice != "" {
		text.Draw(dst, st.Notice, gs.fontFace, 16, int(top)+56, view.DebugText)
	} else if gs.debug {
		text.Draw(dst, view.DebugLine(st), gs.fontFace, 16, int(top)+56, view.DebugText)
	}

	for _, b := range l.Buttons() {
		enabled := view.ButtonEnabled(b, st)
		fill := view.ButtonFill
		switch {
		case !enabled:
			fill = view.ButtonDisabled
		case b.Kind == view.ButtonSummon && st.Phase == game.Summoning && st.SummonType == b.Type:
			fill = view.ButtonActive
		}
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
		vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, view.HexStroke, false)
		clr := view.Text
		if !enabled {
			clr = view.TextDim
		}
		gs.drawTextCentered(dst, view.ButtonLabel(b, st), b.X+b.W/2, b.Y+b.H/2, clr)
	}
}

// drawTextCentered draws s centered on (x, y).
func (gs *GameScreen) drawTextCentered(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	b := text.BoundString(gs.fontFace, s)
	w := float64(b.Dx())
	h := float64(b.Dy())
	text.Draw(dst, s, gs.fontFace, int(x-w/2), int(y+h/2)-2, clr)
}
