// Package elements is the behavior catalog: one ElementDef per tile.ElementID,
// a static table the scheduler consults instead of dispatching through an
// interface (spec §4.2 "element catalog"), plus the movement/combat
// primitives every behavior is built from.
package elements

import (
	"math/rand"

	"github.com/openzzt/zztcore/internal/board"
)

// TickContext is everything a behavior needs to act on its stat for one
// tick: the board it lives on, a source of randomness, the events the
// tick produces, whether the energizer is active, and which keys the
// player holds.
type TickContext struct {
	Board     *board.Board
	RNG       *rand.Rand
	Events    Events
	Energized bool
	Keys      [7]bool // which colored keys the player currently holds
}

// Events collects the side effects a tick produces that the engine needs
// to react to (ending the game, playing a sound) without elements
// importing the engine package.
type Events struct {
	GameOver   bool
	PlayerHit  int // damage dealt to the player this call, 0 if none
	ScoreDelta int // score awarded this call, 0 if none
	Sounds     []string
	OopErrors  int // unrecognized #directives hit this call

	// Inventory deltas from item pickups this call (spec §4.2 "Ammo",
	// "Gem", "Torch", "Key"); applied by the engine after the tick since
	// WorldInfo lives above this package.
	AmmoDelta    int
	GemsDelta    int
	HealthDelta  int
	TorchesDelta int
	EnergizerSet int  // ticks to set EnergizerTicks to, 0 if untouched
	HasKeyGrant  bool // true if KeyColor names a key just picked up
	KeyColor     int

	// PassageTriggered signals a board transition through a Passage tile
	// (spec §4.2 "Passage"); the engine owns World, so it performs the
	// actual board switch after the tick.
	PassageTriggered bool
	PassageBoard     int
	PassageColor     int

	// Messages queues timed-message/dialog text for the driver to show
	// (spec §4.5 "a single accumulated line becomes a timed message"),
	// e.g. a Scroll's text when the player touches it.
	Messages []string

	// ShotStats lists target stat ids a bullet delivered a SHOT
	// message to instead of destroying outright (spec §4.2 "Bullet…
	// hitting Object or Scroll sends SHOT to the target stat"). The
	// engine resolves this against the stat's script after the tick,
	// since finding a ":SHOT" label is internal/oop's job and this
	// package cannot import it without a cycle.
	ShotStats []int
}

// Message queues a timed message/dialog line.
func (e *Events) Message(text string) {
	e.Messages = append(e.Messages, text)
}

func (e *Events) Sound(name string) {
	e.Sounds = append(e.Sounds, name)
}

// Dir is an (x, y) step: one of the four cardinal unit vectors, or (0,0)
// for "not moving".
type Dir struct{ X, Y int }

var (
	North = Dir{0, -1}
	South = Dir{0, 1}
	East  = Dir{1, 0}
	West  = Dir{-1, 0}
	Idle  = Dir{0, 0}
)

// CW rotates the direction ninety degrees clockwise.
func (d Dir) CW() Dir { return Dir{-d.Y, d.X} }

// CCW rotates the direction ninety degrees counter-clockwise.
func (d Dir) CCW() Dir { return Dir{d.Y, -d.X} }

// Opp reverses the direction.
func (d Dir) Opp() Dir { return Dir{-d.X, -d.Y} }

// CalcDirectionRnd returns a uniformly random cardinal direction.
func CalcDirectionRnd(rng *rand.Rand) Dir {
	dirs := [4]Dir{North, South, East, West}
	return dirs[rng.Intn(4)]
}

// CalcDirectionSeek returns the cardinal direction that most reduces the
// distance from (x, y) to the player, preferring the axis with the larger
// delta and breaking ties on the x axis — the original engine's seek
// heuristic (spec §4.3 "movement AI").
func CalcDirectionSeek(b *board.Board, x, y int) Dir {
	p := b.Stats.Player()
	dx, dy := p.X-x, p.Y-y
	if dx == 0 && dy == 0 {
		return Idle
	}
	if abs(dx) > abs(dy) || (abs(dx) == abs(dy)) {
		if dx != 0 {
			if dx > 0 {
				return East
			}
			return West
		}
	}
	if dy != 0 {
		if dy > 0 {
			return South
		}
		return North
	}
	if dx > 0 {
		return East
	}
	return West
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
