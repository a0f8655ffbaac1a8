package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hive_go/internal/game"
	"hive_go/internal/view"
)

// summonKeys maps number keys to piece types in panel order.
var summonKeys = [game.NumPieceTypes]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// handleInput feeds one tick of mouse and keyboard input into the match.
func (gs *GameScreen) handleInput() {
	for i, k := range summonKeys {
		if inpututil.IsKeyJustPressed(k) {
			gs.match.StartSummoning(game.PieceTypes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		gs.match.PassTurn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.reset()
	}
	if gs.debug && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		gs.copyDump()
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	gs.frames.touch(time.Now())
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if b, ok := gs.layout.ButtonAt(x, y); ok {
		gs.pressButton(b)
		return
	}
	if h, ok := gs.layout.HexAt(x, y); ok {
		gs.match.HandleHexClick(h)
	}
}

func (gs *GameScreen) pressButton(b view.Button) {
	if !view.ButtonEnabled(b, gs.state) {
		return
	}
	switch b.Kind {
	case view.ButtonSummon:
		gs.match.StartSummoning(b.Type)
	case view.ButtonPass:
		gs.match.PassTurn()
	case view.ButtonReset:
		gs.reset()
	}
}

func (gs *GameScreen) reset() {
	gs.log.Info().Int("turn", gs.state.Turn).Msg("reset")
	gs.match.Reset()
}

// copyDump puts a text description of the state on the clipboard.
func (gs *GameScreen) copyDump() {
	if err := clipboard.WriteAll(gs.state.Dump()); err != nil {
		gs.log.Warn().Err(err).Msg("copy state to clipboard")
		return
	}
	gs.log.Debug().Msg("state copied to clipboard")
}
