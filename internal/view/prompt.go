package view

import (
	"fmt"

	"hive_go/internal/game"
)

// Prompt returns the status line for the current state.
func Prompt(s game.MatchState) string {
	me := s.CurrentPlayer
	switch {
	case s.Phase == game.GameOver:
		return fmt.Sprintf("%s wins!", PlayerName(s.Winner))
	case s.Turn == 1 && me == game.White && s.Board.Len() == 0:
		return "White's first summon: pick a piece and place it on any hex."
	case s.Turn == 1 && me == game.Black && s.Board.Len() == 1:
		return "Black's first summon: pick a piece and place it next to White."
	case s.MustSummonA():
		return "Last chance: you must summon A this turn!"
	case !s.ASummoned[me] && s.TurnsTaken[me] < 4:
		return "Summon a piece (A must be summoned within your first 4 turns)."
	case !s.Actions.CanMove && !s.Actions.CanSummon:
		return "No legal action: press PASS to end your turn."
	}
	switch s.Phase {
	case game.Summoning:
		return fmt.Sprintf("Summoning: click a green hex to place %s.", s.SummonType)
	case game.PieceSelected:
		return "Moving: click a blue hex, or the piece again to cancel."
	}
	return "Click a piece with an orange dot to move it, or summon a new one."
}

// DebugLine is appended under the prompt in debug mode.
func DebugLine(s game.MatchState) string {
	sel := "none"
	if s.HasSelection {
		sel = s.Selected.Key()
	}
	return fmt.Sprintf("DEBUG: %s | sel: %s", s.Phase, sel)
}

// PlayerName is the display name of p.
func PlayerName(p game.Player) string {
	if p == game.White {
		return "White"
	}
	return "Black"
}

// ButtonLabel is the text on b given the current state, with the summon
// count for piece buttons.
func ButtonLabel(b Button, s game.MatchState) string {
	switch b.Kind {
	case ButtonPass:
		return "PASS"
	case ButtonReset:
		return "RESET"
	}
	return fmt.Sprintf("%s %d/%d", b.Type, s.Summoned[s.CurrentPlayer][b.Type], b.Type.Limit())
}

// ButtonEnabled reports whether b accepts clicks in s. Pass is offered only
// when the player has nothing else to do.
func ButtonEnabled(b Button, s game.MatchState) bool {
	switch b.Kind {
	case ButtonPass:
		return s.Phase != game.GameOver && !s.Actions.CanMove && !s.Actions.CanSummon
	case ButtonReset:
		return true
	}
	return s.CanSummonType(b.Type)
}
