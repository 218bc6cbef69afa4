// Package world owns the save-game level container: the roster of boards
// (most serialized, one live at a time) and the player's persistent stats
// that survive a board transition.
package world

import (
	"fmt"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/serializer"
	"github.com/openzzt/zztcore/internal/tile"
)

// WorldInfo is the player-visible progress carried across board
// transitions (spec §3 "WorldInfo").
type WorldInfo struct {
	Ammo           int
	Gems           int
	Health         int
	Torches        int
	TorchTicks     int
	EnergizerTicks int
	Score          int
	Keys           [7]bool
	Flags          [16]string
	BoardTimeSec   int
	BoardTimeHsec  int
	CurrentBoard   int
	IsSave         bool
	Name           string
}

// NewWorldInfo returns the stats a freshly started game begins with.
func NewWorldInfo(name string) WorldInfo {
	return WorldInfo{
		Health: 100,
		Ammo:   0,
		Torches: 0,
		Name:   name,
	}
}

// World is a sequence of boards plus the progress that travels between
// them. Only the current board is held decoded; every other board is
// kept as the serialized byte blob produced when the player last left it
// (spec §3 "World", §4.6 "board transition").
type World struct {
	Info WorldInfo

	boards  [][]byte
	current *board.Board
}

// New returns a world with a single empty board, current.
func New(name string) *World {
	return &World{
		Info:    NewWorldInfo(name),
		boards:  [][]byte{nil},
		current: board.New("Board 1"),
	}
}

// BoardCount returns the number of boards in the world.
func (w *World) BoardCount() int { return len(w.boards) }

// Current returns the currently active, decoded board.
func (w *World) Current() *board.Board { return w.current }

// AddBoard appends a new, not-yet-visited board and returns its index.
func (w *World) AddBoard(b *board.Board) int {
	w.boards = append(w.boards, serializer.EncodeBoard(b))
	return len(w.boards) - 1
}

// BoardClose serializes the current board into its slot so the world can
// switch away from it without losing state (spec §4.6 "board transition").
func (w *World) BoardClose() {
	w.boards[w.Info.CurrentBoard] = serializer.EncodeBoard(w.current)
}

// BoardOpen decodes the board at index and makes it current. The caller
// must have called BoardClose first if the previous board's state needs
// to be preserved.
func (w *World) BoardOpen(index int) error {
	if index < 0 || index >= len(w.boards) {
		return fmt.Errorf("world: board index %d out of range [0, %d)", index, len(w.boards))
	}
	b, err := serializer.DecodeBoard(w.boards[index])
	if err != nil {
		return fmt.Errorf("world: decode board %d: %w", index, err)
	}
	w.current = b
	w.Info.CurrentBoard = index
	return nil
}

// Goto closes the current board, opens the one at index, and places the
// player at (x, y) on it — the shape of every board-edge and passage
// transition (spec §4.2 "BoardEdge", "Passage").
func (w *World) Goto(index, x, y int) error {
	w.BoardClose()
	if err := w.BoardOpen(index); err != nil {
		return err
	}
	p := w.current.Stats.Player()
	p.X, p.Y = x, y
	return nil
}

// GotoPassage closes the current board, opens the one at boardIndex, and
// places the player on the first Passage tile there whose color matches
// color, falling back to the board's start position if none matches
// (spec §4.2 "Passage").
func (w *World) GotoPassage(boardIndex, color int) error {
	w.BoardClose()
	if err := w.BoardOpen(boardIndex); err != nil {
		return err
	}
	b := w.current
	x, y := b.Info.StartX, b.Info.StartY
found:
	for sy := 1; sy <= b.Map.Height(); sy++ {
		for sx := 1; sx <= b.Map.Width(); sx++ {
			t := b.Map.Get(sx, sy)
			if t.Element == tile.Passage && int(t.Color)&7 == color {
				x, y = sx, sy
				break found
			}
		}
	}
	p := b.Stats.Player()
	p.X, p.Y = x, y
	return nil
}
