package elements

import "github.com/openzzt/zztcore/internal/tile"

// tickLion moves toward the player with the "intelligence" percentage
// stored in p1 (0-100; a p1 of 0 means three times out of four) and
// randomly otherwise (spec §4.3 "Lion").
func tickLion(ctx *TickContext, id int) { tickSeekerP1(ctx, id, 75) }

// tickTiger behaves like Lion but also fires at the player when aligned
// on an axis (spec §4.3 "Tiger").
func tickTiger(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	p := ctx.Board.Stats.Player()
	if s.X == p.X || s.Y == p.Y {
		if s.P2 != 0 {
			dirShootAtPlayer(ctx, id)
		}
	}
	tickSeekerP1(ctx, id, 75)
}

// tickRuffian wanders randomly, occasionally pausing (spec §4.3
// "Ruffian").
func tickRuffian(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	if ctx.RNG.Intn(10) == 0 {
		return
	}
	d := CalcDirectionRnd(ctx.RNG)
	tryStep(ctx, id, d)
}

// tickBear charges straight at the player along whichever axis has the
// larger offset, ignoring the other axis entirely (spec §4.3 "Bear").
func tickBear(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	p := ctx.Board.Stats.Player()
	dx, dy := p.X-s.X, p.Y-s.Y
	var d Dir
	if abs(dx) > abs(dy) {
		if dx > 0 {
			d = East
		} else {
			d = West
		}
	} else if dy != 0 {
		if dy > 0 {
			d = South
		} else {
			d = North
		}
	}
	tryStep(ctx, id, d)
}

// tickSeekerP1 moves toward the player with probability p1Percent, and
// randomly otherwise.
func tickSeekerP1(ctx *TickContext, id int, p1Percent int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	chance := int(s.P1)
	if chance == 0 {
		chance = p1Percent
	}
	var d Dir
	if ctx.RNG.Intn(100) < chance {
		d = CalcDirectionSeek(ctx.Board, s.X, s.Y)
	} else {
		d = CalcDirectionRnd(ctx.RNG)
	}
	tryStep(ctx, id, d)
}

// tryStep moves the stat one cell in d, attacking the player if d leads
// onto the player's tile, pushing pushables, and doing nothing against
// solid scenery.
func tryStep(ctx *TickContext, id int, d Dir) {
	if d == Idle {
		return
	}
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	nx, ny := s.X+d.X, s.Y+d.Y
	b := ctx.Board

	if targetID := b.Stats.At(nx, ny); targetID == 1 {
		BoardAttack(ctx, id, targetID)
		return
	}
	t := b.Map.Get(nx, ny)
	def := Catalog[t.Element]
	switch {
	case t.Element == tile.Empty || def.Walkable:
		ElementMove(ctx, id, nx, ny)
	case def.Pushable:
		if ElementPushablePush(ctx, nx, ny, d.X, d.Y) {
			ElementMove(ctx, id, nx, ny)
		}
	}
}

// dirShootAtPlayer fires a bullet from id toward wherever the player
// currently is, provided they share a row or column.
func dirShootAtPlayer(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	p := ctx.Board.Stats.Player()
	var d Dir
	switch {
	case s.X == p.X && p.Y < s.Y:
		d = North
	case s.X == p.X && p.Y > s.Y:
		d = South
	case s.Y == p.Y && p.X < s.X:
		d = West
	case s.Y == p.Y && p.X > s.X:
		d = East
	default:
		return
	}
	BoardShoot(ctx, s.X+d.X, s.Y+d.Y, d.X, d.Y, false, ShotSourceEnemy)
}
