package tile

// Standard ZZT board dimensions (spec §3 "Board"). TileMap is not hard
// limited to these, but Board always constructs one at this size.
const (
	BoardWidth  = 60
	BoardHeight = 25
)

// TileMap is a bounds-safe grid of tiles. Coordinates run 1..Width,
// 1..Height; row/column 0 and Width+1/Height+1 are a frozen BoardEdge
// border, so callers never need an explicit bounds check before reading
// a neighbor (spec §4.1 "reads outside the playfield return BoardEdge").
// This mirrors the clamp-on-read style of the teacher's spatial grid
// (internal/game/spatial/grid.go) rather than panicking or erroring.
type TileMap struct {
	width, height int
	cells         []Tile
}

// NewTileMap returns a width x height map, every interior cell Empty and
// the border frozen to BoardEdgeTile.
func NewTileMap(width, height int) *TileMap {
	m := &TileMap{
		width:  width,
		height: height,
		cells:  make([]Tile, (width+2)*(height+2)),
	}
	for i := range m.cells {
		m.cells[i] = Tile{Element: Empty}
	}
	m.stampBorder()
	return m
}

func (m *TileMap) stampBorder() {
	for x := 0; x <= m.width+1; x++ {
		m.cells[m.index(x, 0)] = BoardEdgeTile
		m.cells[m.index(x, m.height+1)] = BoardEdgeTile
	}
	for y := 0; y <= m.height+1; y++ {
		m.cells[m.index(0, y)] = BoardEdgeTile
		m.cells[m.index(m.width+1, y)] = BoardEdgeTile
	}
}

func (m *TileMap) index(x, y int) int {
	return y*(m.width+2) + x
}

// Width and Height return the playable interior size.
func (m *TileMap) Width() int  { return m.width }
func (m *TileMap) Height() int { return m.height }

// InBounds reports whether (x, y) is inside the playable interior
// (excluding the border).
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 1 && x <= m.width && y >= 1 && y <= m.height
}

// Get returns the tile at (x, y), or BoardEdgeTile if out of bounds —
// including the frozen border ring itself.
func (m *TileMap) Get(x, y int) Tile {
	if !m.InBounds(x, y) {
		return BoardEdgeTile
	}
	return m.cells[m.index(x, y)]
}

// Set writes a tile at (x, y). Writes to the border or outside the grid
// are silently dropped; the border is immutable for the life of the map.
func (m *TileMap) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[m.index(x, y)] = t
}

// SetElement rewrites only the element at (x, y), keeping the color.
func (m *TileMap) SetElement(x, y int, e ElementID) {
	if !m.InBounds(x, y) {
		return
	}
	i := m.index(x, y)
	m.cells[i].Element = e
}

// SetColor rewrites only the color at (x, y), keeping the element.
func (m *TileMap) SetColor(x, y int, color uint8) {
	if !m.InBounds(x, y) {
		return
	}
	i := m.index(x, y)
	m.cells[i].Color = color
}
