package elements

import "github.com/openzzt/zztcore/internal/tile"

// tickPlayer exists only so Player has a Cycle/Tick slot like every
// other stat; actual player movement, shooting, torch activation, and
// menu-key handling come from engine input, not from the per-tick scan
// (spec §4.6 "the player is ticked like any other stat, but its
// movement is driven by input, not AI"; see engine.handleInputLocked).
func tickPlayer(ctx *TickContext, id int) {}

// tickObject runs an Object's bound OOP script, if any. The actual
// interpreter call lives in internal/engine (it needs the board, the
// world, and the OOP package together); this hook is registered so the
// scheduler's dispatch table is uniform across every element, and the
// engine's tickStats sends Object and Scroll stats to its runScript
// instead of calling it.
func tickObject(ctx *TickContext, id int) {}

// touchForest clears the forest tile the player steps onto — a single
// free pass through foliage (spec §4.2 "Forest").
func touchForest(ctx *TickContext, x, y int) bool {
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

// touchDoor requires a matching key to pass; the key color is the tile's
// foreground color mod 7 (spec §4.2 "Door"). A door is a one-time pass:
// it does not consume the key, but does not reopen either.
func touchDoor(ctx *TickContext, x, y int) bool {
	color := int(ctx.Board.Map.Get(x, y).Foreground()) % 7
	if !ctx.Keys[color] {
		return false
	}
	ctx.Events.Sound("door")
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

// touchKey picks up a key of the tile's color.
func touchKey(ctx *TickContext, x, y int) bool {
	color := int(ctx.Board.Map.Get(x, y).Foreground()) % 7
	ctx.Events.Sound("key")
	ctx.Events.HasKeyGrant = true
	ctx.Events.KeyColor = color
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

// touchAmmo grants five shots and clears the tile.
func touchAmmo(ctx *TickContext, x, y int) bool {
	ctx.Events.Sound("ammo")
	ctx.Events.AmmoDelta += 5
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

// touchGem grants score and one health, and clears the tile.
func touchGem(ctx *TickContext, x, y int) bool {
	ctx.Events.Sound("gem")
	ctx.Events.GemsDelta++
	ctx.Events.HealthDelta++
	ctx.Events.ScoreDelta += 10
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

// touchTorch grants torch light and clears the tile.
func touchTorch(ctx *TickContext, x, y int) bool {
	ctx.Events.Sound("torch")
	ctx.Events.TorchesDelta++
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

// touchScroll opens the scroll's bound text as a timed message and
// self-destructs: the tile is cleared and the scroll's own stat removed,
// so neither the tile nor a dangling stat survives the touch (spec §4.2
// "Scroll… self-destructs").
func touchScroll(ctx *TickContext, x, y int) bool {
	if id := ctx.Board.Stats.At(x, y); id != tile.NoStat {
		if s := ctx.Board.Stats.Get(id); s != nil && s.Data != nil {
			ctx.Events.Message(string(s.Data.Bytes))
		}
		ctx.Board.Stats.Remove(id)
	}
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

func tickScroll(ctx *TickContext, id int) {}

// touchPassage moves the player to the same-colored Passage on board p3
// (spec §4.2 "Passage"). The destination board and color are reported
// through Events rather than switched here, since a Passage only knows
// the player's stats, not the owning World; the engine performs the
// actual board swap after the tick.
func touchPassage(ctx *TickContext, x, y int) bool {
	t := ctx.Board.Map.Get(x, y)
	dest := 0
	if id := ctx.Board.Stats.At(x, y); id != tile.NoStat {
		dest = int(ctx.Board.Stats.Get(id).P3)
	}
	ctx.Events.Sound("passage")
	ctx.Events.PassageTriggered = true
	ctx.Events.PassageBoard = dest
	ctx.Events.PassageColor = int(t.Color) & 7
	return true
}

// touchEnergizer grants the energizer power-up window: while active the
// player destroys enemies by touch instead of bouncing off them (spec
// §4.2 "Energizer").
func touchEnergizer(ctx *TickContext, x, y int) bool {
	ctx.Events.Sound("energizer")
	ctx.Events.EnergizerSet = 75
	ctx.Board.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	return true
}

// touchBomb ignites a bomb the player steps next to/onto, arming its
// 9-tick countdown (spec §4.2 "Bomb": "touched, which sets p1=9").
func touchBomb(ctx *TickContext, x, y int) bool {
	id := ctx.Board.Stats.At(x, y)
	if id == tile.NoStat {
		return true
	}
	s := ctx.Board.Stats.Get(id)
	if s.P1 == 0 {
		s.P1 = 9
		s.Cycle = 1
	}
	return true
}
