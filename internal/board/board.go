// Package board holds a single playfield: its tile grid, its live stats,
// and the metadata (BoardInfo) that governs shooting, darkness, board-edge
// transitions and the time limit for that board.
package board

import (
	"github.com/openzzt/zztcore/internal/tile"
)

// Direction indices into BoardInfo.NeighborBoards, matching the order the
// original engine's board-edge transition table uses.
const (
	DirN = 0
	DirS = 1
	DirW = 2
	DirE = 3
)

// BoardInfo is the per-board tuning and linkage data that rides alongside
// the tile grid and stat list (spec §3 "Board").
type BoardInfo struct {
	MaxShots          int
	IsDark            bool
	NeighborBoards    [4]int // board index in the owning World, or 0 for none
	ReenterWhenZapped bool
	Message           string
	StartX, StartY    int
	TimeLimitSec      int
}

// DefaultBoardInfo returns the metadata a freshly created board starts
// with: unlimited-ish shots, lit, no neighbors, no time limit.
func DefaultBoardInfo() BoardInfo {
	return BoardInfo{
		MaxShots: 255,
		StartX:   1,
		StartY:   1,
	}
}

// Board is one playfield: its grid, its active stats, and its metadata.
type Board struct {
	Name  string
	Map   *tile.TileMap
	Stats *tile.StatList
	Info  BoardInfo
}

// New returns an empty board of the standard ZZT dimensions, ringed with
// Normal border tiles, with a single player stat at its center (spec §3
// Lifecycle "a board is created empty with a player at its center;
// created boards are bordered").
func New(name string) *Board {
	m := tile.NewTileMap(tile.BoardWidth, tile.BoardHeight)
	stampBorderRing(m)

	px, py := m.Width()/2, m.Height()/2
	stats := tile.NewStatList()
	p := stats.Player()
	p.X, p.Y = px, py
	m.Set(px, py, tile.Tile{Element: tile.Player})

	info := DefaultBoardInfo()
	info.StartX, info.StartY = px, py

	return &Board{
		Name:  name,
		Map:   m,
		Stats: stats,
		Info:  info,
	}
}

// stampBorderRing fills the playable border (row/column 1 and
// width/height) with Normal wall tiles, matching the original engine's
// newly-created-board border (spec §3 Board "border rows/columns are
// filled with Normal tiles").
func stampBorderRing(m *tile.TileMap) {
	w, h := m.Width(), m.Height()
	for x := 1; x <= w; x++ {
		m.Set(x, 1, tile.Tile{Element: tile.Normal})
		m.Set(x, h, tile.Tile{Element: tile.Normal})
	}
	for y := 1; y <= h; y++ {
		m.Set(1, y, tile.Tile{Element: tile.Normal})
		m.Set(w, y, tile.Tile{Element: tile.Normal})
	}
}

// StatAt returns the id of the stat occupying (x, y), or tile.NoStat.
func (b *Board) StatAt(x, y int) int {
	return b.Stats.At(x, y)
}

// TileAt returns the tile at (x, y), or the board-edge sentinel if out of
// bounds.
func (b *Board) TileAt(x, y int) tile.Tile {
	return b.Map.Get(x, y)
}
