package engine

import (
	"testing"

	"github.com/openzzt/zztcore/internal/tile"
)

// fakeInput hands the engine one canned (dx, dy, action) tuple, then goes
// idle — enough to drive a single tick deterministically in tests.
type fakeInput struct {
	dx, dy int
	action bool
	cmd    string
	polled int
}

func (f *fakeInput) Poll() (int, int, bool, string) {
	f.polled++
	if f.polled > 1 {
		return 0, 0, false, ""
	}
	return f.dx, f.dy, f.action, f.cmd
}

func newTestEngine() *Engine {
	e := NewEngine(EngineConfig{TickRate: 1, Seed: 1})
	e.mode = ModePlay
	return e
}

func TestTryMovePlayerWalksIntoEmpty(t *testing.T) {
	e := newTestEngine()
	b := e.world.Current()
	p := b.Stats.Player()
	p.X, p.Y = 10, 10

	e.SetInput(&fakeInput{dx: 1, dy: 0})
	e.tick()

	p = b.Stats.Player()
	if p.X != 11 || p.Y != 10 {
		t.Fatalf("player at (%d,%d), want (11,10)", p.X, p.Y)
	}
}

func TestTryMovePlayerPushesBoulder(t *testing.T) {
	e := newTestEngine()
	b := e.world.Current()
	p := b.Stats.Player()
	p.X, p.Y = 10, 10
	b.Map.Set(11, 10, tile.Tile{Element: tile.Boulder})

	e.SetInput(&fakeInput{dx: 1, dy: 0})
	e.tick()

	p = b.Stats.Player()
	if p.X != 11 || p.Y != 10 {
		t.Fatalf("player did not move onto the pushed boulder's old cell, at (%d,%d)", p.X, p.Y)
	}
	if b.Map.Get(12, 10).Element != tile.Boulder {
		t.Fatalf("boulder was not pushed forward")
	}
}

func TestTryMovePlayerBlockedByWall(t *testing.T) {
	e := newTestEngine()
	b := e.world.Current()
	p := b.Stats.Player()
	p.X, p.Y = 10, 10
	b.Map.Set(11, 10, tile.Tile{Element: tile.Normal})

	e.SetInput(&fakeInput{dx: 1, dy: 0})
	e.tick()

	p = b.Stats.Player()
	if p.X != 10 || p.Y != 10 {
		t.Fatalf("player should not have moved into a wall, at (%d,%d)", p.X, p.Y)
	}
}

func TestPlayerShootConsumesAmmoAndSpawnsBullet(t *testing.T) {
	e := newTestEngine()
	e.world.Info.Ammo = 5
	b := e.world.Current()
	p := b.Stats.Player()
	p.X, p.Y = 10, 10
	p.StepX, p.StepY = 1, 0

	e.SetInput(&fakeInput{action: true})
	e.tick()

	if e.world.Info.Ammo != 4 {
		t.Fatalf("Ammo = %d, want 4", e.world.Info.Ammo)
	}
	// The bullet (cycle 1) is ticked in the same pass that spawned it at
	// (11,10), so it has already advanced one cell.
	if b.Map.Get(12, 10).Element != tile.Bullet {
		t.Fatalf("expected the bullet spawned ahead of the player to have advanced to (12,10)")
	}

	sounds := e.DrainSounds()
	found := false
	for _, s := range sounds {
		if s == "shoot" {
			found = true
		}
	}
	if !found {
		t.Fatalf("DrainSounds() = %v, want a \"shoot\" entry", sounds)
	}
}

func TestPlayerShootNoopWithoutAmmo(t *testing.T) {
	e := newTestEngine()
	e.world.Info.Ammo = 0
	b := e.world.Current()
	p := b.Stats.Player()
	p.StepX, p.StepY = 1, 0

	e.SetInput(&fakeInput{action: true})
	e.tick()

	if b.Map.Get(p.X+1, p.Y).Element == tile.Bullet {
		t.Fatalf("should not have spawned a bullet with zero ammo")
	}
}

func TestTorchCommandActivatesOnDarkBoard(t *testing.T) {
	e := newTestEngine()
	b := e.world.Current()
	b.Info.IsDark = true
	e.world.Info.Torches = 2

	e.SetInput(&fakeInput{cmd: "torch"})
	e.tick()

	if e.world.Info.Torches != 1 {
		t.Fatalf("Torches = %d, want 1", e.world.Info.Torches)
	}
	if e.world.Info.TorchTicks != 500 {
		t.Fatalf("TorchTicks = %d, want 500", e.world.Info.TorchTicks)
	}
}

func TestTorchCommandNoopOnLitBoard(t *testing.T) {
	e := newTestEngine()
	b := e.world.Current()
	b.Info.IsDark = false
	e.world.Info.Torches = 2

	e.SetInput(&fakeInput{cmd: "torch"})
	e.tick()

	if e.world.Info.Torches != 2 {
		t.Fatalf("Torches = %d, want unchanged 2", e.world.Info.Torches)
	}
}

func TestMenuCommandQueuedForDriver(t *testing.T) {
	e := newTestEngine()
	e.SetInput(&fakeInput{cmd: "quit"})
	e.tick()

	got := e.DrainCommands()
	if len(got) != 1 || got[0] != "quit" {
		t.Fatalf("DrainCommands() = %v, want [\"quit\"]", got)
	}
	if again := e.DrainCommands(); len(again) != 0 {
		t.Fatalf("second DrainCommands() = %v, want empty", again)
	}
}

func TestDrainSoundsClearsQueue(t *testing.T) {
	e := newTestEngine()
	e.pendingSounds = []string{"door", "gem"}

	got := e.DrainSounds()
	if len(got) != 2 {
		t.Fatalf("DrainSounds() = %v, want 2 entries", got)
	}
	if again := e.DrainSounds(); len(again) != 0 {
		t.Fatalf("second DrainSounds() = %v, want empty", again)
	}
}
