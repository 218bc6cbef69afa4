package elements

import "github.com/openzzt/zztcore/internal/tile"

// TickFunc runs a stat's per-cycle behavior.
type TickFunc func(ctx *TickContext, id int)

// TouchFunc runs when the player steps onto the tile at (x, y); it
// returns true if the player's move should be allowed to complete.
type TouchFunc func(ctx *TickContext, x, y int) bool

// ElementDef is the static, per-kind description every tile.ElementID
// indexes into — character, color policy, and the handful of boolean
// properties the scheduler and renderer need, plus its tick/touch hooks.
// A tagged enum plus this table stands in for the vtable/interface
// dispatch a more object-oriented engine would reach for (spec §4.2).
type ElementDef struct {
	Name           string
	Char           byte
	ColorPolicy    uint8
	Destructible   bool
	Pushable       bool
	VisibleInDark  bool
	PlaceableOnTop bool
	Walkable       bool
	Cycle          int
	ScoreValue     int
	Tick           TickFunc
	Touch          TouchFunc
}

// Catalog is indexed by tile.ElementID. Elements with no special
// behavior (scenery, walls) simply leave Tick/Touch nil; the engine
// checks each hook for nil before calling it (see internal/engine).
var Catalog [tile.ElementCount]ElementDef

func init() {
	Catalog[tile.Empty] = ElementDef{Name: "Empty", Char: ' ', Walkable: true}
	Catalog[tile.BoardEdge] = ElementDef{Name: "Board Edge", Char: ' '}
	Catalog[tile.Normal] = ElementDef{Name: "Wall", Char: 178, ColorPolicy: tile.ColorChoiceOnBlack}
	Catalog[tile.Player] = ElementDef{Name: "Player", Char: 2, Cycle: 1, Tick: tickPlayer}
	Catalog[tile.Object] = ElementDef{Name: "Object", Char: 1, Cycle: 1, Tick: tickObject}
	Catalog[tile.Scroll] = ElementDef{Name: "Scroll", Char: 232, Destructible: true, Cycle: 1, Tick: tickScroll, Touch: touchScroll}
	Catalog[tile.Passage] = ElementDef{Name: "Passage", Char: 240, ColorPolicy: tile.ColorChoiceOnChoice, Touch: touchPassage}

	Catalog[tile.Boulder] = ElementDef{Name: "Boulder", Char: 254, ColorPolicy: tile.ColorChoiceOnBlack, Pushable: true}
	Catalog[tile.SliderNS] = ElementDef{Name: "Slider (NS)", Char: 18, ColorPolicy: tile.ColorChoiceOnBlack, Pushable: true}
	Catalog[tile.SliderEW] = ElementDef{Name: "Slider (EW)", Char: 29, ColorPolicy: tile.ColorChoiceOnBlack, Pushable: true}
	Catalog[tile.Breakable] = ElementDef{Name: "Breakable Wall", Char: 177, ColorPolicy: tile.ColorChoiceOnBlack, Destructible: true, ScoreValue: 1}
	Catalog[tile.Water] = ElementDef{Name: "Water", Char: 176, ColorPolicy: tile.ColorWhiteOnChoice, Walkable: true}
	Catalog[tile.Forest] = ElementDef{Name: "Forest", Char: 176, ColorPolicy: tile.ColorChoiceOnBlack, Touch: touchForest}
	Catalog[tile.Fake] = ElementDef{Name: "Fake Wall", Char: 178, ColorPolicy: tile.ColorChoiceOnBlack, Walkable: true}
	Catalog[tile.InvisibleWall] = ElementDef{Name: "Invisible Wall", Char: ' ', Walkable: false}
	Catalog[tile.Door] = ElementDef{Name: "Door", Char: 10, ColorPolicy: tile.ColorChoiceOnChoice, Touch: touchDoor}
	Catalog[tile.Key] = ElementDef{Name: "Key", Char: 12, ColorPolicy: tile.ColorChoiceOnBlack, Touch: touchKey}
	Catalog[tile.Ammo] = ElementDef{Name: "Ammo", Char: 132, Touch: touchAmmo}
	Catalog[tile.Gem] = ElementDef{Name: "Gem", Char: 4, ColorPolicy: tile.ColorChoiceOnChoice, Touch: touchGem}
	Catalog[tile.Torch] = ElementDef{Name: "Torch", Char: 157, Touch: touchTorch}
	Catalog[tile.Ricochet] = ElementDef{Name: "Ricochet", Char: 42, Destructible: true}

	Catalog[tile.Lion] = ElementDef{Name: "Lion", Char: 234, Destructible: true, Cycle: 2, ScoreValue: 10, Tick: tickLion}
	Catalog[tile.Tiger] = ElementDef{Name: "Tiger", Char: 227, Destructible: true, Cycle: 2, ScoreValue: 10, Tick: tickTiger}
	Catalog[tile.Ruffian] = ElementDef{Name: "Ruffian", Char: 5, Destructible: true, Cycle: 3, ScoreValue: 10, Tick: tickRuffian}
	Catalog[tile.Bear] = ElementDef{Name: "Bear", Char: 153, Destructible: true, Cycle: 3, ScoreValue: 10, Tick: tickBear}
	Catalog[tile.CentipedeHead] = ElementDef{Name: "Centipede Head", Char: 233, Destructible: true, Cycle: 2, ScoreValue: 10, Tick: tickCentipedeHead}
	Catalog[tile.CentipedeSegment] = ElementDef{Name: "Centipede Segment", Char: 79, Destructible: true, Cycle: 2, ScoreValue: 10, Tick: tickCentipedeSegment}
	Catalog[tile.Shark] = ElementDef{Name: "Shark", Char: 94, Destructible: true, Cycle: 3, ScoreValue: 10, Tick: tickShark}
	Catalog[tile.Slime] = ElementDef{Name: "Slime", Char: 42, Destructible: true, Cycle: 2, ScoreValue: 10, Tick: tickSlime}

	Catalog[tile.Bullet] = ElementDef{Name: "Bullet", Char: 248, Cycle: 1, Tick: tickBullet}
	Catalog[tile.Star] = ElementDef{Name: "Star", Char: 42, Cycle: 1, Tick: tickStar}
	Catalog[tile.SpinningGun] = ElementDef{Name: "Spinning Gun", Char: 24, Cycle: 3, Tick: tickSpinningGun}
	Catalog[tile.ConveyorCW] = ElementDef{Name: "Conveyor (CW)", Char: 179, Cycle: 2, Tick: tickConveyor}
	Catalog[tile.ConveyorCCW] = ElementDef{Name: "Conveyor (CCW)", Char: 179, Cycle: 2, Tick: tickConveyor}
	Catalog[tile.Bomb] = ElementDef{Name: "Bomb", Char: 11, Destructible: true, Cycle: 6, Tick: tickBomb, Touch: touchBomb}
	Catalog[tile.Transporter] = ElementDef{Name: "Transporter", Char: 196, Touch: touchTransporter}
	Catalog[tile.Energizer] = ElementDef{Name: "Energizer", Char: 127, Touch: touchEnergizer}
	Catalog[tile.BlinkWall] = ElementDef{Name: "Blink Wall", Char: 206, Cycle: 3, Tick: tickBlinkWall}
	Catalog[tile.BlinkRayNs] = ElementDef{Name: "Blink Ray", Char: 179}
	Catalog[tile.BlinkRayEw] = ElementDef{Name: "Blink Ray", Char: 196}
	Catalog[tile.Duplicator] = ElementDef{Name: "Duplicator", Char: 250, Cycle: 5, Tick: tickDuplicator}

	for id := tile.TextBlue; id <= tile.TextWhite; id++ {
		Catalog[id] = ElementDef{Name: "Text", ColorPolicy: 0}
	}
}
