package elements

import (
	"math/rand"
	"testing"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/tile"
)

func newCtx() (*TickContext, *board.Board) {
	b := board.New("Test")
	return &TickContext{Board: b, RNG: rand.New(rand.NewSource(1))}, b
}

func TestElementMoveSwapsUnderTile(t *testing.T) {
	ctx, b := newCtx()
	b.Map.Set(5, 5, tile.Tile{Element: tile.Gem, Color: 0x0B})
	s := tile.NewStat(2, 2)
	id := b.Stats.Add(s)

	ElementMove(ctx, id, 5, 5)

	moved := b.Stats.Get(id)
	if moved.X != 5 || moved.Y != 5 {
		t.Fatalf("stat did not move, at (%d,%d)", moved.X, moved.Y)
	}
	if got := b.Map.Get(5, 5).Element; got != tile.Empty {
		t.Fatalf("new cell element = %v, want the tile moved from the old cell (Empty)", got)
	}
	if moved.Under.Element != tile.Gem {
		t.Fatalf("Under = %v, want Gem (the tile that was there before the move)", moved.Under.Element)
	}
}

func TestElementPushablePushChain(t *testing.T) {
	ctx, b := newCtx()
	b.Map.Set(3, 3, tile.Tile{Element: tile.Boulder})
	b.Map.Set(4, 3, tile.Tile{Element: tile.Boulder})

	ok := ElementPushablePush(ctx, 3, 3, 1, 0)
	if !ok {
		t.Fatalf("push chain should have succeeded into empty space")
	}
	if b.Map.Get(3, 3).Element != tile.Empty {
		t.Fatalf("source cell should be empty after push")
	}
	if b.Map.Get(5, 3).Element != tile.Boulder {
		t.Fatalf("far boulder should have advanced to (5,3)")
	}
}

func TestElementPushablePushBlockedByWall(t *testing.T) {
	ctx, b := newCtx()
	b.Map.Set(3, 3, tile.Tile{Element: tile.Boulder})
	b.Map.Set(4, 3, tile.Tile{Element: tile.Normal})

	if ElementPushablePush(ctx, 3, 3, 1, 0) {
		t.Fatalf("push into a wall should fail")
	}
	if b.Map.Get(3, 3).Element != tile.Boulder {
		t.Fatalf("boulder should not have moved")
	}
}

func TestCentipedeTieBreakOrder(t *testing.T) {
	order := centipedeTieBreak(North)
	want := []Dir{East, West, South}
	for i, d := range want {
		if order[i] != d {
			t.Fatalf("tie-break[%d] = %v, want %v", i, order[i], d)
		}
	}
}

func TestBoardAttackEnergizedPlayerScores(t *testing.T) {
	ctx, b := newCtx()
	ctx.Energized = true
	lion := tile.NewStat(6, 6)
	id := b.Stats.Add(lion)
	b.Map.Set(6, 6, tile.Tile{Element: tile.Lion})

	BoardAttack(ctx, 1, id)

	if ctx.Events.ScoreDelta != Catalog[tile.Lion].ScoreValue {
		t.Fatalf("ScoreDelta = %d, want %d", ctx.Events.ScoreDelta, Catalog[tile.Lion].ScoreValue)
	}
	if ctx.Events.PlayerHit != 0 {
		t.Fatalf("player should take no damage from an energized attack")
	}
	if b.Map.Get(6, 6).Element != tile.Empty {
		t.Fatalf("lion tile should be cleared after the attack")
	}
}

func TestBoardAttackNotEnergizedDamagesPlayer(t *testing.T) {
	ctx, b := newCtx()
	lion := tile.NewStat(6, 6)
	id := b.Stats.Add(lion)
	b.Map.Set(6, 6, tile.Tile{Element: tile.Lion})

	BoardAttack(ctx, id, 1)

	if ctx.Events.PlayerHit != 10 {
		t.Fatalf("PlayerHit = %d, want 10", ctx.Events.PlayerHit)
	}
	if ctx.Events.ScoreDelta != 0 {
		t.Fatalf("a non-energized hit should not award score")
	}
}

func TestTouchAmmoGemTorchGrantDeltas(t *testing.T) {
	ctx, b := newCtx()
	b.Map.Set(2, 2, tile.Tile{Element: tile.Ammo})
	touchAmmo(ctx, 2, 2)
	if ctx.Events.AmmoDelta != 5 {
		t.Fatalf("AmmoDelta = %d, want 5", ctx.Events.AmmoDelta)
	}

	ctx2, b2 := newCtx()
	b2.Map.Set(2, 2, tile.Tile{Element: tile.Gem})
	touchGem(ctx2, 2, 2)
	if ctx2.Events.GemsDelta != 1 || ctx2.Events.HealthDelta != 1 {
		t.Fatalf("gem should grant 1 gem and 1 health, got gems=%d health=%d", ctx2.Events.GemsDelta, ctx2.Events.HealthDelta)
	}

	ctx3, b3 := newCtx()
	b3.Map.Set(2, 2, tile.Tile{Element: tile.Torch})
	touchTorch(ctx3, 2, 2)
	if ctx3.Events.TorchesDelta != 1 {
		t.Fatalf("TorchesDelta = %d, want 1", ctx3.Events.TorchesDelta)
	}
}

func TestTouchKeyGrantsMatchingColor(t *testing.T) {
	ctx, b := newCtx()
	b.Map.Set(2, 2, tile.Tile{Element: tile.Key, Color: 3})

	touchKey(ctx, 2, 2)

	if !ctx.Events.HasKeyGrant || ctx.Events.KeyColor != 3 {
		t.Fatalf("expected a key grant for color 3, got HasKeyGrant=%v KeyColor=%d", ctx.Events.HasKeyGrant, ctx.Events.KeyColor)
	}
}

func TestTouchDoorRequiresMatchingKey(t *testing.T) {
	ctx, b := newCtx()
	b.Map.Set(2, 2, tile.Tile{Element: tile.Door, Color: 2})

	if touchDoor(ctx, 2, 2) {
		t.Fatalf("door should reject the player without a matching key")
	}

	ctx.Keys[2] = true
	if !touchDoor(ctx, 2, 2) {
		t.Fatalf("door should open once the player holds the matching key")
	}
	if b.Map.Get(2, 2).Element != tile.Empty {
		t.Fatalf("door tile should clear once opened")
	}
}
