package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"hive_go/internal/assets"
	"hive_go/internal/config"
	"hive_go/internal/game"
	"hive_go/internal/view"
)

type tokenKey struct {
	owner   game.Player
	stacked bool
}

// GameScreen implements ebiten.Game. It turns mouse and keyboard input into
// match calls and draws the latest match state.
type GameScreen struct {
	match  *game.Match
	layout view.Layout
	debug  bool
	log    zerolog.Logger

	state    game.MatchState // refreshed by the match observer
	tokens   map[tokenKey]*ebiten.Image
	white    *ebiten.Image // 1x1 source for DrawTriangles
	fontFace font.Face
	frames   *frameGovernor
}

// NewGameScreen builds the match and the screen from cfg.
func NewGameScreen(cfg *config.Config, logger zerolog.Logger) (*GameScreen, error) {
	gs := &GameScreen{
		debug:    cfg.Debug,
		log:      logger.With().Str("component", "ui").Logger(),
		tokens:   make(map[tokenKey]*ebiten.Image),
		white:    ebiten.NewImage(1, 1),
		fontFace: basicfont.Face7x13,
		frames:   newFrameGovernor(),
	}
	gs.white.Fill(color.White)
	gs.match = game.NewMatch(cfg.Board.Radius,
		game.WithLogger(logger),
		game.WithObserver(gs.refresh),
	)
	gs.refresh()
	gs.layout = view.NewLayout(gs.state.Grid, cfg.Display.WindowWidth, cfg.Display.WindowHeight, cfg.Display.HexSize)

	size := tokenSize(gs.layout.HexSize)
	for _, p := range game.Players {
		for _, stacked := range []bool{false, true} {
			img, err := assets.PieceToken(p, size, stacked)
			if err != nil {
				return nil, fmt.Errorf("load piece token: %w", err)
			}
			gs.tokens[tokenKey{p, stacked}] = ebiten.NewImageFromImage(img)
		}
	}
	gs.log.Info().Int("radius", cfg.Board.Radius).Float64("hex_size", gs.layout.HexSize).Msg("screen ready")
	return gs, nil
}

// tokenSize is the token image edge for a hex size; the piece disc covers
// 0.7 of the hex and the stack halo 0.8.
func tokenSize(hexSize float64) int {
	return max(int(hexSize*1.6+0.5), 8)
}

// refresh is the match observer: it snapshots the state for drawing and
// marks the screen active.
func (gs *GameScreen) refresh() {
	gs.state = gs.match.State()
	gs.frames.touch(time.Now())
}

// Update handles input once per tick.
func (gs *GameScreen) Update() error {
	gs.handleInput()
	gs.frames.tick(time.Now())
	return nil
}

// Draw renders the board, highlights, pieces and the panel.
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(view.Background)
	gs.drawGrid(screen)
	gs.drawTargets(screen)
	gs.drawMovableHints(screen)
	gs.drawPieces(screen)
	gs.drawSelection(screen)
	gs.drawPanel(screen)
}

// Layout keeps the logical screen at the configured window size.
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gs.layout.Width, gs.layout.Height
}
