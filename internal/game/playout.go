package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"hive_go/internal/hex"
)

// PlayoutResult summarizes a random playout.
type PlayoutResult struct {
	Turns     int
	Moves     int
	Summons   int
	Passes    int
	Winner    Player
	HasWinner bool
	Violation string // first broken invariant, empty if none
}

type action struct {
	summon bool
	t      PieceType
	from   hex.Hex
	to     hex.Hex
}

// legalActions lists every move and summon open to the current player, in a
// stable order.
func (m *Match) legalActions() []action {
	var acts []action
	for _, h := range m.board.Hexes() {
		for _, to := range m.movable[h] {
			acts = append(acts, action{from: h, to: to})
		}
	}
	snap := m.Snapshot()
	forced := MustSummonA(m.turnsTaken[m.current], m.aSummoned[m.current])
	for _, t := range PieceTypes {
		if forced && t != A {
			continue
		}
		for _, h := range SummonLocations(snap, t) {
			acts = append(acts, action{summon: true, t: t, to: h})
		}
	}
	return acts
}

// Playout plays m forward with uniformly random legal actions, driven only
// through the public entry points, until the game ends or maxTurns turns
// have been completed. Invariants are checked after every turn; the first
// failure stops the playout.
func Playout(m *Match, rng *rand.Rand, maxTurns int) PlayoutResult {
	var res PlayoutResult
	for res.Turns < maxTurns && m.phase != GameOver {
		before := m.turnsTaken[White] + m.turnsTaken[Black]
		acts := m.legalActions()
		switch {
		case len(acts) == 0:
			m.PassTurn()
			res.Passes++
		default:
			a := acts[rng.Intn(len(acts))]
			if a.summon {
				m.StartSummoning(a.t)
				m.HandleHexClick(a.to)
				res.Summons++
			} else {
				m.HandleHexClick(a.from)
				m.HandleHexClick(a.to)
				res.Moves++
			}
		}
		res.Turns++
		if after := m.turnsTaken[White] + m.turnsTaken[Black]; after != before+1 {
			res.Violation = fmt.Sprintf("turn %d: action did not complete a turn", res.Turns)
			break
		}
		if v := m.checkInvariants(); v != "" {
			res.Violation = fmt.Sprintf("turn %d: %s", res.Turns, v)
			break
		}
	}
	res.Winner, res.HasWinner = m.winner, m.hasWinner
	return res
}

// checkInvariants returns a description of the first broken board invariant.
func (m *Match) checkInvariants() string {
	if !IsHiveConnected(m.board) {
		return "hive disconnected"
	}
	for _, h := range m.board.Hexes() {
		s := m.board.Stack(h)
		if len(s) == 0 {
			return "empty stack left at " + h.Key()
		}
		if !m.grid.Contains(h) {
			return "piece off grid at " + h.Key()
		}
		for _, p := range s[1:] {
			if !p.Type.CanStack() {
				return fmt.Sprintf("%s stacked at %s", p, h.Key())
			}
		}
	}
	for _, p := range Players {
		for _, t := range PieceTypes {
			if m.summoned[p][t] > t.Limit() {
				return fmt.Sprintf("%s summoned %d %s pieces", p, m.summoned[p][t], t)
			}
		}
	}
	return ""
}
