package game

import (
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hive_go/internal/hex"
)

// Phase is the turn state machine value.
type Phase int

const (
	AwaitingInput Phase = iota // idle, waiting for a selection or summon request
	PieceSelected              // a piece is picked up, destinations highlighted
	Summoning                  // a piece type is chosen, placements highlighted
	GameOver                   // terminal
)

func (p Phase) String() string {
	switch p {
	case AwaitingInput:
		return "AWAITING_INPUT"
	case PieceSelected:
		return "PIECE_SELECTED"
	case Summoning:
		return "SUMMONING"
	case GameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// NoticeNoSummonLocation is shown when a summon is requested but the piece
// has nowhere to go.
const NoticeNoSummonLocation = "no legal summon location"

// Actions tells whether the current player has anything to do besides pass.
type Actions struct {
	CanMove   bool
	CanSummon bool
}

// Observer is invoked after every call that may have changed the match.
type Observer func()

type Option func(m *Match)

// WithLogger sets the logger used for state transition events.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Match) {
		m.log = l
	}
}

// WithObserver registers a re-render trigger.
func WithObserver(o Observer) Option {
	return func(m *Match) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// Match owns all mutable match state and is the only component that changes
// it. It is not safe for concurrent use; the game loop drives it from a
// single goroutine.
type Match struct {
	grid    *hex.Grid
	board   *Board
	current Player
	turn    int

	turnsTaken [NumPlayers]int
	aSummoned  [NumPlayers]bool
	summoned   [NumPlayers][NumPieceTypes]int

	phase       Phase
	selected    hex.Hex
	hasSelected bool
	summonType  PieceType
	targets     []hex.Hex
	movable     map[hex.Hex][]hex.Hex // current player's movable pieces -> destinations

	winner    Player
	hasWinner bool
	notice    string

	observers []Observer
	log       zerolog.Logger
}

// NewMatch creates a fresh match on a grid of the given radius. White moves
// first on turn 1.
func NewMatch(radius int, opts ...Option) *Match {
	m := &Match{log: log.Logger}
	for _, opt := range opts {
		opt(m)
	}
	m.init(radius)
	return m
}

func (m *Match) init(radius int) {
	m.grid = hex.NewGrid(radius)
	m.board = NewBoard()
	m.current = White
	m.turn = 1
	m.turnsTaken = [NumPlayers]int{}
	m.aSummoned = [NumPlayers]bool{}
	m.summoned = [NumPlayers][NumPieceTypes]int{}
	m.winner, m.hasWinner = White, false
	m.notice = ""
	m.clearSelection()
	m.phase = AwaitingInput
	m.updateMovable()
	m.log.Debug().Int("radius", radius).Int("hexes", m.grid.Len()).Msg("match init")
}

// Reset discards the match and starts a new one on the same grid size.
// Observers and logger are kept.
func (m *Match) Reset() {
	m.init(m.grid.Radius())
	m.notify()
}

// Observe registers another re-render trigger.
func (m *Match) Observe(o Observer) {
	WithObserver(o)(m)
}

func (m *Match) notify() {
	for _, o := range m.observers {
		o()
	}
}

// Snapshot exposes the live state to the rules. The board is not copied.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Grid:          m.grid,
		Board:         m.board,
		Turn:          m.turn,
		CurrentPlayer: m.current,
		Summoned:      m.summoned,
	}
}

// HandleHexClick feeds a clicked grid hex into the state machine. Clicks off
// the grid and clicks that mean nothing in the current phase are ignored or
// cancel the current selection.
func (m *Match) HandleHexClick(h hex.Hex) {
	defer m.notify()
	if m.phase == GameOver || !m.grid.Contains(h) {
		return
	}
	m.notice = ""
	m.log.Debug().Str("hex", h.Key()).Stringer("phase", m.phase).Msg("click")

	switch m.phase {
	case Summoning:
		if !slices.Contains(m.targets, h) {
			m.log.Debug().Msg("invalid summon location, cancelling summon mode")
			m.resetSelection()
			return
		}
		m.summon(h, m.summonType)
		m.endTurn()

	case PieceSelected:
		switch {
		case h == m.selected:
			m.log.Debug().Msg("clicked selected piece, cancelling selection")
			m.resetSelection()
		case slices.Contains(m.targets, h):
			m.move(m.selected, h)
			m.endTurn()
		default:
			m.log.Debug().Msg("clicked outside destinations, cancelling selection")
			m.resetSelection()
		}

	case AwaitingInput:
		if top, ok := TopAt(m.board, h); ok && top.Owner == m.current {
			m.selectPiece(h)
		}
	}
}

func (m *Match) selectPiece(h hex.Hex) {
	dests := m.movable[h]
	if len(dests) == 0 {
		m.log.Debug().Str("hex", h.Key()).Msg("piece has no legal moves")
		return
	}
	m.phase = PieceSelected
	m.selected, m.hasSelected = h, true
	m.targets = dests
	m.log.Debug().Str("hex", h.Key()).Int("moves", len(dests)).Msg("piece selected")
}

// StartSummoning enters summon mode for piece type t. The request is dropped
// when the forced-A rule forbids t, and refused with a notice when t has no
// legal location.
func (m *Match) StartSummoning(t PieceType) {
	defer m.notify()
	if m.phase == GameOver || t < A || t > E {
		return
	}
	m.notice = ""
	if MustSummonA(m.turnsTaken[m.current], m.aSummoned[m.current]) && t != A {
		m.log.Debug().Stringer("player", m.current).Stringer("type", t).Msg("blocked summon: must summon A now")
		return
	}
	locs := SummonLocations(m.Snapshot(), t)
	if len(locs) == 0 {
		m.notice = NoticeNoSummonLocation
		m.log.Info().Stringer("player", m.current).Stringer("type", t).Msg(NoticeNoSummonLocation)
		return
	}
	m.resetSelection()
	m.phase = Summoning
	m.summonType = t
	m.targets = locs
	m.log.Debug().Stringer("type", t).Int("locations", len(locs)).Msg("summon mode")
}

// PassTurn ends the turn without touching the board. Only allowed when the
// current player can neither move nor summon.
func (m *Match) PassTurn() {
	defer m.notify()
	if m.phase == GameOver {
		return
	}
	if a := m.CheckPlayerActions(); a.CanMove || a.CanSummon {
		return
	}
	m.log.Debug().Stringer("player", m.current).Msg("pass")
	m.endTurn()
}

// CheckPlayerActions reports whether the current player can move a piece or
// summon a new one.
func (m *Match) CheckPlayerActions() Actions {
	if m.phase == GameOver {
		return Actions{}
	}
	a := Actions{CanMove: len(m.movable) > 0}
	snap := m.Snapshot()
	forced := MustSummonA(m.turnsTaken[m.current], m.aSummoned[m.current])
	for _, t := range PieceTypes {
		if forced && t != A {
			continue
		}
		if len(SummonLocations(snap, t)) > 0 {
			a.CanSummon = true
			break
		}
	}
	return a
}

// summon places a new piece for the current player. The location is assumed
// legal.
func (m *Match) summon(h hex.Hex, t PieceType) {
	m.board.place(h, Piece{Type: t, Owner: m.current})
	m.summoned[m.current][t]++
	if t == A {
		m.aSummoned[m.current] = true
	}
	m.log.Debug().Stringer("player", m.current).Stringer("type", t).Str("hex", h.Key()).Msg("summon")
}

// move relocates the top piece. The destination is assumed legal.
func (m *Match) move(from, to hex.Hex) {
	p := m.board.relocate(from, to)
	m.log.Debug().Stringer("piece", p).Str("from", from.Key()).Str("to", to.Key()).
		Int("height", len(m.board.Stack(to))).Msg("move")
}

// endTurn is shared by move, summon and pass.
func (m *Match) endTurn() {
	mover := m.current
	m.turnsTaken[mover]++
	if w, ok := Winner(m.board); ok {
		m.phase = GameOver
		m.winner, m.hasWinner = w, true
		m.clearSelection()
		clear(m.movable)
		m.log.Info().Stringer("winner", w).Int("turn", m.turn).Msg("game over")
		return
	}
	m.current = mover.Opponent()
	if m.current == White {
		m.turn++
	}
	m.log.Debug().Stringer("player", m.current).Int("turn", m.turn).Msg("end turn")
	m.resetSelection()
}

func (m *Match) clearSelection() {
	m.selected, m.hasSelected = hex.Hex{}, false
	m.summonType = A
	m.targets = nil
}

// resetSelection returns to AwaitingInput and recomputes the movable cache.
func (m *Match) resetSelection() {
	m.clearSelection()
	m.phase = AwaitingInput
	m.updateMovable()
}

func (m *Match) updateMovable() {
	if m.movable == nil {
		m.movable = make(map[hex.Hex][]hex.Hex)
	}
	clear(m.movable)
	if !MayMove(m.turnsTaken[m.current], m.aSummoned[m.current]) {
		return
	}
	for _, h := range m.board.Hexes() {
		if top, _ := TopAt(m.board, h); top.Owner != m.current {
			continue
		}
		if dests := ValidMoves(m.board, m.grid, h); len(dests) > 0 {
			m.movable[h] = dests
		}
	}
	m.log.Debug().Stringer("player", m.current).Int("movable", len(m.movable)).Msg("movable pieces")
}
