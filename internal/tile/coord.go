// Package tile holds the primitive data model shared by every board:
// tiles, stats, the bounds-safe grid they live on, and the compact stat
// arena that schedules them.
package tile

// Coord is a board-relative cell position. Boards are small (ZZT boards
// top out at 60x25) so int is plenty; it keeps arithmetic with StepX/StepY
// (which can be negative) simple.
type Coord struct {
	X, Y int
}

// Add returns the coordinate shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Equal reports whether two coordinates refer to the same cell.
func (c Coord) Equal(o Coord) bool {
	return c.X == o.X && c.Y == o.Y
}
