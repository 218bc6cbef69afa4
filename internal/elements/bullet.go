package elements

import "github.com/openzzt/zztcore/internal/tile"

var starColors = [4]uint8{0x0F, 0x0B, 0x0E, 0x0D}

// tickBullet advances a bullet one cell, destroying whatever destructible
// tile it hits, attacking whichever side its p1 source doesn't belong to,
// and reflecting off Ricochet only when it was enemy-fired (spec §4.3
// "Bullet", "Ricochet").
func tickBullet(ctx *TickContext, id int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil {
		return
	}
	source := int(s.P1)
	nx, ny := s.X+s.StepX, s.Y+s.StepY
	selfX, selfY, under := s.X, s.Y, s.Under

	vanish := func() {
		b.Map.Set(selfX, selfY, under)
		b.Stats.Remove(id)
	}

	if targetID := b.Stats.At(nx, ny); targetID != tile.NoStat {
		switch b.Map.Get(nx, ny).Element {
		case tile.Object, tile.Scroll:
			// spec §4.2 "Bullet": hitting Object or Scroll sends SHOT to
			// the target stat, then removes the bullet, instead of
			// destroying the target outright.
			ctx.Events.ShotStats = append(ctx.Events.ShotStats, targetID)
		default:
			if (source == ShotSourcePlayer) != (targetID == 1) {
				attacker := notPlayerAttacker
				if source == ShotSourcePlayer {
					attacker = 1
				}
				BoardAttack(ctx, attacker, targetID)
			}
		}
		vanish()
		return
	}

	t := b.Map.Get(nx, ny)
	switch t.Element {
	case tile.Empty:
		ElementMove(ctx, id, nx, ny)
	case tile.Ricochet:
		if source == ShotSourceEnemy {
			s.StepX, s.StepY = -s.StepX, -s.StepY
			ctx.Events.Sound("ricochet")
			return
		}
		fallthrough
	case tile.Breakable:
		scoreAndDamageTile(ctx, nx, ny, source)
		vanish()
	default:
		if Catalog[t.Element].Walkable {
			ElementMove(ctx, id, nx, ny)
			return
		}
		vanish()
	}
}

// tickStar counts its p2 lifetime down to zero and vanishes there; while
// alive it cycles through four sparkle colors every tick, but only seeks
// the player and moves/attacks on even p2 ticks, pushing any pushable
// tile ahead of it and walking straight onto Water (spec §4.3 "Star").
func tickStar(ctx *TickContext, id int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil {
		return
	}

	if s.P2 > 0 {
		s.P2--
	}
	if s.P2 == 0 {
		b.Map.Set(s.X, s.Y, s.Under)
		b.Stats.Remove(id)
		return
	}

	t := b.Map.Get(s.X, s.Y)
	t.Color = starColors[int(s.P2)%len(starColors)]
	b.Map.Set(s.X, s.Y, t)

	if s.P2%2 != 0 {
		return
	}

	d := CalcDirectionSeek(b, s.X, s.Y)
	if d == Idle {
		return
	}
	nx, ny := s.X+d.X, s.Y+d.Y

	if targetID := b.Stats.At(nx, ny); targetID != tile.NoStat {
		attacker := notPlayerAttacker
		if int(s.P1) == ShotSourcePlayer {
			attacker = 1
		}
		BoardAttack(ctx, attacker, targetID)
		return
	}

	nt := b.Map.Get(nx, ny)
	def := Catalog[nt.Element]
	switch {
	case nt.Element == tile.Empty || def.Walkable:
		s.StepX, s.StepY = d.X, d.Y
		ElementMove(ctx, id, nx, ny)
	case def.Pushable:
		if ElementPushablePush(ctx, nx, ny, d.X, d.Y) {
			s.StepX, s.StepY = d.X, d.Y
			ElementMove(ctx, id, nx, ny)
		}
	}
}
