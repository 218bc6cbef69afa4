package elements

import (
	"testing"

	"github.com/openzzt/zztcore/internal/tile"
)

func TestTickBombDetonatesAfterFuse(t *testing.T) {
	ctx, b := newCtx()
	s := tile.NewStat(10, 10)
	s.P1 = 1 // armed
	id := b.Stats.Add(s)
	b.Map.Set(9, 10, tile.Tile{Element: tile.Breakable})

	for i := 0; i < 5; i++ {
		tickBomb(ctx, id)
	}

	if got := b.Map.Get(9, 10).Element; got != tile.Empty {
		t.Fatalf("breakable tile adjacent to the blast = %v, want cleared", got)
	}
}

func TestTickBombDoesNothingWhileUnarmed(t *testing.T) {
	ctx, b := newCtx()
	s := tile.NewStat(10, 10)
	id := b.Stats.Add(s)
	b.Map.Set(9, 10, tile.Tile{Element: tile.Breakable})

	for i := 0; i < 10; i++ {
		tickBomb(ctx, id)
	}

	if got := b.Map.Get(9, 10).Element; got != tile.Breakable {
		t.Fatalf("unarmed bomb should not detonate, breakable tile = %v", got)
	}
}

func TestTouchTransporterSendsPlayerToPair(t *testing.T) {
	ctx, b := newCtx()
	b.Map.Set(5, 5, tile.Tile{Element: tile.Transporter})
	b.Map.Set(20, 5, tile.Tile{Element: tile.Transporter})
	entry := tile.NewStat(5, 5)
	entry.StepX = 1
	b.Stats.Add(entry)
	exit := tile.NewStat(20, 5)
	exit.StepX = -1
	b.Stats.Add(exit)
	p := b.Stats.Player()
	p.X, p.Y = 4, 5

	touchTransporter(ctx, 5, 5)

	p = b.Stats.Player()
	if p.X != 21 || p.Y != 5 {
		t.Fatalf("player at (%d,%d), want (21,5) one cell past the paired transporter", p.X, p.Y)
	}
}

func TestTickBlinkWallExtendsThenRetracts(t *testing.T) {
	ctx, b := newCtx()
	s := tile.NewStat(10, 10)
	s.StepX = 1
	id := b.Stats.Add(s)
	b.Map.Set(10, 10, tile.Tile{Element: tile.BlinkWall})
	b.Map.Set(15, 10, tile.Tile{Element: tile.Normal})

	tickBlinkWall(ctx, id)
	for x := 11; x < 15; x++ {
		if got := b.Map.Get(x, 10).Element; got != tile.BlinkRayEw {
			t.Fatalf("after extending, (%d,10) = %v, want BlinkRayEw", x, got)
		}
	}
	if got := b.Map.Get(15, 10).Element; got != tile.Normal {
		t.Fatalf("ray should have stopped short of the obstacle, (15,10) = %v", got)
	}

	tickBlinkWall(ctx, id)
	for x := 11; x < 15; x++ {
		if got := b.Map.Get(x, 10).Element; got != tile.Empty {
			t.Fatalf("after retracting, (%d,10) = %v, want Empty", x, got)
		}
	}
}
