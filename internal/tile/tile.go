package tile

// ElementID identifies a kind of tile. The numeric values have no meaning
// beyond indexing the element catalog (internal/elements); they are not
// wire-stable across versions the way the original engine's byte codes
// were, but the serializer only ever round-trips values produced by this
// same build, so that is not an issue here.
type ElementID uint8

// Core elements every board/serializer/scheduler needs to special-case
// directly. The rest of the catalog (enemies, items, scenery) lives in
// internal/elements and only needs an ElementID slot reserved here.
const (
	Empty ElementID = iota
	BoardEdge
	Normal // ZZT's "Wall" — solid, indestructible boundary material
	Player
	CentipedeSegment
	Object
	Scroll
	Passage

	// Pushables / terrain
	Boulder
	SliderNS
	SliderEW
	Breakable
	Water
	Forest
	Fake
	InvisibleWall
	Door
	Key
	Ammo
	Gem
	Torch
	Ricochet

	// Enemies
	Lion
	Tiger
	Ruffian
	Bear
	CentipedeHead
	Shark
	Slime

	// Projectiles / hazards
	Bullet
	Star
	SpinningGun
	ConveyorCW
	ConveyorCCW
	Bomb
	Transporter
	Energizer
	BlinkWall
	BlinkRayNs
	BlinkRayEw
	Duplicator

	// Text band: anything >= TextBlue is a text element; the tile's
	// "color" byte is the character to display (spec §4.4).
	TextBlue
	TextGreen
	TextCyan
	TextRed
	TextPurple
	TextBrown
	TextWhite

	ElementCount // sentinel: number of defined elements
)

// Color sentinel bits understood by the element catalog's color policy
// and by Tile.Render. They never appear as literal 0..255 color bytes on
// a real tile; a live tile's color byte is always a plain (bg<<4)|fg code.
const (
	ColorChoiceOnBlack = 0xF0 // draw tile.Color on black
	ColorWhiteOnChoice = 0xF1 // ((color&7)<<4)|0x0F
	ColorChoiceOnChoice = 0xF2 // ((color&7)*0x11)|0x08
)

// BlinkBit marks a color byte as blinking (the high bit of the BIOS
// attribute byte).
const BlinkBit = 0x80

// BoardEdgeTile is the frozen sentinel every TileMap read outside the
// playfield returns.
var BoardEdgeTile = Tile{Element: BoardEdge, Color: 0x0F}

// Tile is the smallest unit of board state: an element kind plus a BIOS
// text-mode color byte, (background<<4)|foreground, optionally blinking.
type Tile struct {
	Element ElementID
	Color   uint8
}

// Background returns the 0-7 background color index.
func (t Tile) Background() uint8 { return (t.Color >> 4) & 0x07 }

// Foreground returns the 0-15 foreground color index.
func (t Tile) Foreground() uint8 { return t.Color & 0x0F }

// Blinking reports whether the high bit of the color byte is set.
func (t Tile) Blinking() bool { return t.Color&BlinkBit != 0 }

// WithColor returns a copy of t with only its color changed.
func (t Tile) WithColor(color uint8) Tile {
	t.Color = color
	return t
}

// WithElement returns a copy of t with only its element changed.
func (t Tile) WithElement(e ElementID) Tile {
	t.Element = e
	return t
}

// ResolveColor expands a color sentinel (ChoiceOnBlack / WhiteOnChoice /
// ChoiceOnChoice) or passes a literal color byte through unchanged. This
// is the policy described in spec §4.2.
func ResolveColor(policy uint8, tileColor uint8) uint8 {
	switch policy {
	case ColorChoiceOnBlack:
		return tileColor & 0x0F
	case ColorWhiteOnChoice:
		return ((tileColor & 7) << 4) | 0x0F
	case ColorChoiceOnChoice:
		return ((tileColor & 7) * 0x11) | 0x08
	default:
		return policy
	}
}
