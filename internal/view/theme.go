package view

import (
	"image/color"

	"hive_go/internal/game"
)

// Board and highlight colors.
var (
	Background     = color.RGBA{0x1d, 0x23, 0x2c, 0xff}
	HexFill        = color.RGBA{0x31, 0x53, 0x7f, 0xff}
	HexStroke      = color.RGBA{0x5b, 0x7d, 0xa8, 0xff}
	SummonTarget   = color.RGBA{0x3c, 0xc8, 0x5a, 0xb0}
	MoveTarget     = color.RGBA{0x3c, 0x8c, 0xf0, 0xb0}
	MovableHint    = color.RGBA{0xf0, 0x96, 0x28, 0xe0}
	SelectionRing  = color.RGBA{0xff, 0xd7, 0x3c, 0xff}
	StackHalo      = color.RGBA{0xe0, 0xb0, 0x30, 0xff}
	PanelFill      = color.RGBA{0x26, 0x2d, 0x38, 0xff}
	ButtonFill     = color.RGBA{0x3a, 0x46, 0x58, 0xff}
	ButtonDisabled = color.RGBA{0x2e, 0x33, 0x3b, 0xff}
	ButtonActive   = color.RGBA{0x3c, 0xc8, 0x5a, 0xff}
	Text           = color.RGBA{0xee, 0xee, 0xee, 0xff}
	TextDim        = color.RGBA{0x80, 0x86, 0x90, 0xff}
	DebugText      = color.RGBA{0xf0, 0x50, 0x50, 0xff}
)

// PieceText is the letter color drawn on p's token.
func PieceText(p game.Player) color.RGBA {
	if p == game.White {
		return color.RGBA{0x22, 0x22, 0x22, 0xff}
	}
	return color.RGBA{0xf2, 0xf2, 0xf2, 0xff}
}

// TargetColor picks the destination dot color for the phase.
func TargetColor(ph game.Phase) color.RGBA {
	if ph == game.Summoning {
		return SummonTarget
	}
	return MoveTarget
}
