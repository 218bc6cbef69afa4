package elements

import "github.com/openzzt/zztcore/internal/tile"

// ElementMove relocates the stat at id from its current cell to (nx, ny),
// restoring whatever tile it uncovers and pushing its "under" tile into
// the new cell's old occupant. This is the one place board state changes
// out from under a stat, so every behavior routes movement through it
// instead of touching the TileMap directly (spec §4.3 "ElementMove").
func ElementMove(ctx *TickContext, id int, nx, ny int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil {
		return
	}

	oldTile := b.Map.Get(s.X, s.Y)
	b.Map.Set(s.X, s.Y, s.Under)

	s.Under = b.Map.Get(nx, ny)
	b.Map.Set(nx, ny, oldTile)

	s.X, s.Y = nx, ny
}

// CanMove reports whether the tile at (x, y) would accept the element at
// id moving onto it: empty or walkable scenery. The player's tile reports
// false; callers handle a move onto the player as an attack instead.
func CanMove(ctx *TickContext, x, y int) bool {
	t := ctx.Board.Map.Get(x, y)
	def := Catalog[t.Element]
	return t.Element == tile.Empty || def.Walkable
}

// sliderPushable reports whether the tile at elem can be pushed in
// direction (dx, dy): ordinary pushables accept any direction, but a
// SliderNS only slides along its own north-south axis and a SliderEW
// only along east-west (spec §4.3 "ElementPushablePush" rule 1).
func sliderPushable(elem tile.ElementID, dx, dy int) bool {
	switch elem {
	case tile.SliderNS:
		return dx == 0 && dy != 0
	case tile.SliderEW:
		return dy == 0 && dx != 0
	default:
		return Catalog[elem].Pushable
	}
}

// ElementPushablePush attempts to push whatever occupies (x, y) one more
// step in the same direction (dx, dy), recursing through chains of
// pushable tiles, redirecting through a facing Transporter, and damaging
// a blocked destructible obstacle instead of merely failing (spec §4.3
// "ElementPushablePush"). It returns true if the destination ended up
// clear for the pusher to move into.
func ElementPushablePush(ctx *TickContext, x, y, dx, dy int) bool {
	b := ctx.Board
	if dx == 0 && dy == 0 {
		return true
	}

	t := b.Map.Get(x, y)
	if t.Element == tile.Empty {
		return true
	}
	if !sliderPushable(t.Element, dx, dy) {
		return false
	}

	nx, ny := x+dx, y+dy
	dest := b.Map.Get(nx, ny)

	if dest.Element == tile.Transporter {
		if tid := b.Stats.At(nx, ny); tid != tile.NoStat {
			if ts := b.Stats.Get(tid); ts.StepX == dx && ts.StepY == dy {
				return ElementTransporterMove(ctx, x, y, nx, ny, dx, dy)
			}
		}
		return false
	}

	if dest.Element != tile.Empty {
		destDef := Catalog[dest.Element]
		if !ElementPushablePush(ctx, nx, ny, dx, dy) {
			if destDef.Destructible && !destDef.Walkable && dest.Element != tile.Player {
				BoardDamageTile(ctx, nx, ny)
			} else {
				return false
			}
		}
	}

	dest = b.Map.Get(nx, ny)
	if dest.Element != tile.Empty && !Catalog[dest.Element].Walkable {
		return false
	}

	if id := b.Stats.At(x, y); id != tile.NoStat {
		ElementMove(ctx, id, nx, ny)
	} else {
		b.Map.Set(nx, ny, t)
		b.Map.Set(x, y, tile.Tile{Element: tile.Empty})
	}
	return true
}

// ElementTransporterMove pushes whatever occupies (x, y) through the
// Transporter stat at (tx, ty) and out its paired exit, mirroring
// touchTransporter's scan-for-a-facing-back-pair logic for a pushed tile
// rather than the player (spec §4.3 "ElementPushablePush" rule 2).
func ElementTransporterMove(ctx *TickContext, x, y, tx, ty, dx, dy int) bool {
	b := ctx.Board
	id := b.Stats.At(tx, ty)
	if id == tile.NoStat {
		return false
	}
	s := b.Stats.Get(id)
	if s.StepX != dx || s.StepY != dy {
		return false
	}
	back := Dir{X: -dx, Y: -dy}

	bound := b.Map.Width() + b.Map.Height()
	cx, cy := tx, ty
	for i := 0; i < bound; i++ {
		cx, cy = cx+dx, cy+dy
		t := b.Map.Get(cx, cy)
		if t.Element == tile.BoardEdge {
			return false
		}
		if t.Element != tile.Transporter {
			continue
		}
		pairID := b.Stats.At(cx, cy)
		if pairID == tile.NoStat {
			continue
		}
		pair := b.Stats.Get(pairID)
		if pair.StepX != back.X || pair.StepY != back.Y {
			continue
		}
		lx, ly := cx+dx, cy+dy
		if b.Map.Get(lx, ly).Element != tile.Empty {
			return false
		}

		src := b.Map.Get(x, y)
		if srcID := b.Stats.At(x, y); srcID != tile.NoStat {
			ElementMove(ctx, srcID, lx, ly)
		} else {
			b.Map.Set(lx, ly, src)
			b.Map.Set(x, y, tile.Tile{Element: tile.Empty})
		}
		ctx.Events.Sound("transport")
		return true
	}
	return false
}

// BoardDamageTile clears whatever occupies (x, y) back to empty,
// removing its stat if it has one. Used by explosions, Breakable tiles,
// and anything else that destroys a cell outright rather than attacking
// whatever's standing on it.
func BoardDamageTile(ctx *TickContext, x, y int) {
	b := ctx.Board
	if id := b.Stats.At(x, y); id != tile.NoStat && id != 1 {
		b.Stats.Remove(id)
	}
	b.Map.Set(x, y, tile.Tile{Element: tile.Empty})
}

// DamageStat applies damage to the player if id is the player stat (id
// 1); any other stat is simply destroyed, matching the original engine's
// "only the player has health" model (spec §4.3 "combat").
func DamageStat(ctx *TickContext, id int, amount int) {
	if id == 1 {
		ctx.Events.PlayerHit += amount
		return
	}
	BoardDamageTile(ctx, ctx.Board.Stats.Get(id).X, ctx.Board.Stats.Get(id).Y)
}

// BoardAttack resolves a creature or the player moving into (x, y) where
// another stat stands. Without the energizer, a creature attacking the
// player deals it 10 damage and is itself unharmed, and the player (or a
// player-fired shot, which passes the player's id as attacker) destroys
// the target and takes no damage itself. Under the energizer's
// invulnerability window the roles reverse into scoring: the player
// destroying an enemy banks its ScoreValue instead of nothing, and an
// enemy "attacking" the player banks the player's own nominal value
// instead of hurting them (spec §4.3 "BoardAttack").
func BoardAttack(ctx *TickContext, attackerID, targetID int) {
	if attackerID == 1 && ctx.Energized {
		target := ctx.Board.Stats.Get(targetID)
		ctx.Events.ScoreDelta += Catalog[ctx.Board.Map.Get(target.X, target.Y).Element].ScoreValue
		BoardDamageTile(ctx, target.X, target.Y)
		return
	}
	if targetID == 1 {
		if ctx.Energized {
			ctx.Events.ScoreDelta += Catalog[tile.Player].ScoreValue
			return
		}
		DamageStat(ctx, 1, 10)
		return
	}
	BoardDamageTile(ctx, ctx.Board.Stats.Get(targetID).X, ctx.Board.Stats.Get(targetID).Y)
}

// Shot source tags stamped into a bullet/star's P1 (spec §4.3 "Bullet":
// "p1=source"), distinguishing who it can hurt: a player-sourced shot
// damages enemies, an enemy-sourced shot damages the player.
const (
	ShotSourceEnemy  = 0
	ShotSourcePlayer = 1
)

// notPlayerAttacker is any BoardAttack attacker id other than the
// player's (1); BoardAttack only ever compares for equality to 1, so any
// such value stands in for "an enemy did this" when the real actor (a
// bullet, a touch) isn't itself a stat id worth threading through.
const notPlayerAttacker = 0

// scoreAndDamageTile destroys whatever occupies (x, y), banking its
// ScoreValue first if the shot that hit it was player-sourced (spec §4.3
// "Bullet": hitting a destructible "calls BoardAttack"; a Breakable has
// no stat of its own to route through BoardAttack's attacker/target
// pair, so this is the tile-only equivalent scenario S1 exercises).
func scoreAndDamageTile(ctx *TickContext, x, y, source int) {
	if source == ShotSourcePlayer {
		ctx.Events.ScoreDelta += Catalog[ctx.Board.Map.Get(x, y).Element].ScoreValue
	}
	BoardDamageTile(ctx, x, y)
}

// BoardShoot spawns a Bullet (or Star) stat at (x, y) moving (dx, dy),
// provided the destination tile allows it (the board's MaxShots budget is
// not consulted); otherwise, if the muzzle cell holds a Breakable or the player, it
// damages that instead of firing (spec §4.3 "BoardShoot": "if target is
// walkable or Water, spawn a bullet/star stat (cycle=1, p1=source,
// p2=100); else if target is Breakable or a destructible player …
// damage it; otherwise return false").
func BoardShoot(ctx *TickContext, x, y, dx, dy int, star bool, source int) bool {
	b := ctx.Board
	t := b.Map.Get(x, y)
	def := Catalog[t.Element]

	if t.Element == tile.Empty || def.Walkable {
		elem := tile.Bullet
		if star {
			elem = tile.Star
		}
		s := tile.NewStat(x, y)
		s.StepX, s.StepY = dx, dy
		s.Cycle = 1
		s.P1 = uint8(source)
		s.P2 = 100
		s.Under = t
		b.Map.Set(x, y, tile.Tile{Element: elem, Color: 0x0F})
		b.Stats.Add(s)
		return true
	}

	if targetID := b.Stats.At(x, y); targetID != tile.NoStat {
		attacker := notPlayerAttacker
		if source == ShotSourcePlayer {
			attacker = 1
		}
		BoardAttack(ctx, attacker, targetID)
		return false
	}
	if def.Destructible {
		scoreAndDamageTile(ctx, x, y, source)
	}
	return false
}

// Torch halo constants from spec §4.3 "DrawPlayerSurroundings": the
// ellipse dx²+2dy² < TORCH_DIST_SQR governs both dark-room visibility
// and the bomb blast radius (spec glossary "Torch halo").
const (
	TorchDX      = 8
	TorchDY      = 5
	TorchDistSqr = TorchDX * TorchDX

	// TorchDuration is how many ticks an ignited torch lights a dark
	// room for before it must be reignited (spec §4.2 "Player": "torch
	// activation requires is_dark and consumes one torch for
	// TORCH_DURATION ticks").
	TorchDuration = 500
)

// ActivateTorch consumes one of the player's torches to light a dark
// board for TorchDuration ticks (spec §4.2 "Player"). It is a no-op
// outside a dark board, with no torches in inventory, or while a torch
// is already burning — igniting a second one does not stack or refresh
// the countdown.
func ActivateTorch(ctx *TickContext, torches int, torchTicksNow int) (consumed bool, newTicks int) {
	if !ctx.Board.Info.IsDark || torches <= 0 || torchTicksNow > 0 {
		return false, torchTicksNow
	}
	ctx.Events.Sound("torch_on")
	return true, TorchDuration
}

// InTorchHalo reports whether (dx, dy) relative to the player falls
// inside the torch ellipse.
func InTorchHalo(dx, dy int) bool {
	return dx*dx+2*dy*dy < TorchDistSqr
}

// DrawPlayerSurroundings walks the torch halo around (px, py) for one of
// three phases (spec §4.3 "DrawPlayerSurroundings"; glossary "Torch
// halo" — the same ellipse governs dark-room visibility and bomb
// radius; tickBomb passes the bomb's own position as (px, py)):
//
//   - phase 0: redraw the halo itself (a rendering concern; the driver
//     reads IsDark/TorchTicks directly, so this is a no-op here).
//   - phase 1: bomb arming preview — damage destructibles and stars in
//     the halo except the centre cell, which holds the bomb, and paint
//     any Empty cell as a random-colored Breakable.
//   - phase 2: bomb detonation — convert Breakable back to Empty in the
//     halo.
//
// Sending `BOMBED` to stats in the halo (spec §4.3) needs the OOP
// machine's SEND routing, which this package does not have access to;
// left as a documented gap.
func DrawPlayerSurroundings(ctx *TickContext, px, py, phase int) {
	if phase == 0 {
		return
	}
	b := ctx.Board
	for dy := -TorchDY; dy <= TorchDY; dy++ {
		for dx := -TorchDX; dx <= TorchDX; dx++ {
			if !InTorchHalo(dx, dy) {
				continue
			}
			if phase == 1 && dx == 0 && dy == 0 {
				continue
			}
			x, y := px+dx, py+dy
			t := b.Map.Get(x, y)
			switch phase {
			case 1:
				switch {
				case t.Element == tile.Star || Catalog[t.Element].Destructible:
					BoardDamageTile(ctx, x, y)
				case t.Element == tile.Empty:
					b.Map.Set(x, y, tile.Tile{Element: tile.Breakable, Color: uint8(1 + ctx.RNG.Intn(7))})
				}
			case 2:
				if t.Element == tile.Breakable {
					b.Map.Set(x, y, tile.Tile{Element: tile.Empty})
				}
			}
		}
	}
}
