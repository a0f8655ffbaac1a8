package game

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"hive_go/internal/hex"
)

// MatchState is a read-only copy of everything a renderer needs: the grid,
// pieces, turn data, selection and highlights.
type MatchState struct {
	Grid          *hex.Grid
	Board         *Board
	CurrentPlayer Player
	Turn          int
	TurnsTaken    [NumPlayers]int
	ASummoned     [NumPlayers]bool
	Summoned      [NumPlayers][NumPieceTypes]int
	Phase         Phase

	Selected     hex.Hex // valid when HasSelection
	HasSelection bool
	SummonType   PieceType // valid when Phase == Summoning
	Targets      []hex.Hex // legal destinations or summon placements
	Movable      map[hex.Hex][]hex.Hex

	Winner    Player // valid when HasWinner
	HasWinner bool
	Notice    string
	Actions   Actions
}

// State returns a snapshot of the match. Mutating it does not affect the
// match.
func (m *Match) State() MatchState {
	movable := make(map[hex.Hex][]hex.Hex, len(m.movable))
	for h, d := range m.movable {
		movable[h] = slices.Clone(d)
	}
	return MatchState{
		Grid:          m.grid,
		Board:         m.board.Clone(),
		CurrentPlayer: m.current,
		Turn:          m.turn,
		TurnsTaken:    m.turnsTaken,
		ASummoned:     m.aSummoned,
		Summoned:      m.summoned,
		Phase:         m.phase,
		Selected:      m.selected,
		HasSelection:  m.hasSelected,
		SummonType:    m.summonType,
		Targets:       slices.Clone(m.targets),
		Movable:       movable,
		Winner:        m.winner,
		HasWinner:     m.hasWinner,
		Notice:        m.notice,
		Actions:       m.CheckPlayerActions(),
	}
}

// MustSummonA reports whether the current player may only summon A this turn.
func (s MatchState) MustSummonA() bool {
	return MustSummonA(s.TurnsTaken[s.CurrentPlayer], s.ASummoned[s.CurrentPlayer])
}

// CanSummonType reports whether the summon button for t should be enabled.
func (s MatchState) CanSummonType(t PieceType) bool {
	if s.Phase == GameOver || s.Summoned[s.CurrentPlayer][t] >= t.Limit() {
		return false
	}
	return !s.MustSummonA() || t == A
}

// MovableHexes returns the keys of Movable in stable order.
func (s MatchState) MovableHexes() []hex.Hex {
	return slices.SortedFunc(maps.Keys(s.Movable), hex.Compare)
}

// Dump renders a deterministic, human-readable description of the state.
func (s MatchState) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn=%d player=%s phase=%s", s.Turn, s.CurrentPlayer, s.Phase)
	if s.HasWinner {
		fmt.Fprintf(&sb, " winner=%s", s.Winner)
	}
	sb.WriteString("\n")
	for _, p := range Players {
		fmt.Fprintf(&sb, "%s: turns=%d a=%t summoned=", p, s.TurnsTaken[p], s.ASummoned[p])
		for _, t := range PieceTypes {
			fmt.Fprintf(&sb, "%s%d/%d ", t, s.Summoned[p][t], t.Limit())
		}
		sb.WriteString("\n")
	}
	for _, h := range s.Board.Hexes() {
		fmt.Fprintf(&sb, "%s:", h.Key())
		for _, p := range s.Board.Stack(h) {
			sb.WriteString(" " + p.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
