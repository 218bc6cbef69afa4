// Package driver holds the narrow ports the engine talks to — input,
// timer, video, audio, filesystem — plus concrete adapters: a PNG board
// renderer, a debug HTTP/WS spectate server, a beep-based audio sink,
// and file-based world I/O (spec §6 "External Interfaces").
package driver

import (
	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/tune"
)

// Input is the narrow keyboard-equivalent surface the scheduler reads
// from once per tick to drive the player stat (spec §6 "Input").
type Input interface {
	// Poll returns the currently pressed direction, if any, whether the
	// shoot/action key is held, and the in-game menu key pressed (if
	// any): "torch", "quit", "save", "help", "besttimes", or "pause"
	// (spec §4.2 "Player": "in-game menu items T/B/H/P/Q/S/?").
	Poll() (dx, dy int, action bool, cmd string)
}

// Timer abstracts "how long has elapsed", so the scheduler's hundredths-
// of-seconds waits (spec §4.6) are testable without a real clock.
type Timer interface {
	ElapsedHundredths() int
}

// Video is a text-mode-equivalent surface a board can be drawn to.
type Video interface {
	DrawBoard(b *board.Board) error
}

// Audio is the tune-language note sink.
type Audio interface {
	Play(notes []tune.Note, priority int)
}

// Filesystem is the narrow save/load surface the engine needs; concrete
// implementations read/write .ZZT/.SAV world files and the high score
// table.
type Filesystem interface {
	LoadWorld(path string) ([]byte, error)
	SaveWorld(path string, data []byte) error
}
