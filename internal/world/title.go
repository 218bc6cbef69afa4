package world

import "github.com/openzzt/zztcore/internal/board"

// NewTitleWorld returns the single-board demo world shown before a game
// starts, distinct from a blank editor world. Mirrors the original
// engine's title/instructions board, minus the copy it displays.
func NewTitleWorld() *World {
	b := board.New("Title Screen")
	b.Info.TimeLimitSec = 0
	b.Info.IsDark = false

	w := &World{
		Info:    NewWorldInfo("Untitled"),
		boards:  [][]byte{nil},
		current: b,
	}
	return w
}

// Mode distinguishes the title/demo state from normal play, gating the
// scheduler's menu-key handling the way the original engine's game_state
// does.
type Mode int

const (
	ModeTitle Mode = iota
	ModePlay
)
