package elements

import "github.com/openzzt/zztcore/internal/tile"

// tickSpinningGun fires with probability (p2&0x7F)/9; bit 7 of p2 picks
// star over bullet, and the direction is toward the player when aligned
// with it within 2 tiles on a row or column, random otherwise (spec §4.3
// "Spinning Gun").
func tickSpinningGun(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	if ctx.RNG.Intn(9) >= int(s.P2&0x7F) {
		return
	}
	p := ctx.Board.Stats.Player()
	dx, dy := p.X-s.X, p.Y-s.Y
	var d Dir
	switch {
	case s.X == p.X && dy < 0 && -dy <= 2:
		d = North
	case s.X == p.X && dy > 0 && dy <= 2:
		d = South
	case s.Y == p.Y && dx < 0 && -dx <= 2:
		d = West
	case s.Y == p.Y && dx > 0 && dx <= 2:
		d = East
	default:
		d = CalcDirectionRnd(ctx.RNG)
	}
	if d == Idle {
		return
	}
	star := s.P2&0x80 != 0
	BoardShoot(ctx, s.X+d.X, s.Y+d.Y, d.X, d.Y, star, ShotSourceEnemy)
}

// tickConveyor drags any pushable tile on an orthogonally adjacent cell
// one step around its fixed rotation (spec §4.3 "Conveyor"); the player
// is not pushable and is not carried. Direction of rotation is baked into the element id
// (ConveyorCW vs ConveyorCCW); the stat itself only needs to know where
// it sits.
func tickConveyor(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	b := ctx.Board
	self := b.Map.Get(s.X, s.Y)
	cw := self.Element == tile.ConveyorCW

	order := []Dir{North, East, South, West}
	if !cw {
		order = []Dir{North, West, South, East}
	}
	var arrived [4]bool
	for i, d := range order {
		if arrived[i] {
			continue
		}
		x, y := s.X+d.X, s.Y+d.Y
		t := b.Map.Get(x, y)
		if !Catalog[t.Element].Pushable {
			continue
		}
		next := order[(i+1)%len(order)]
		nx, ny := s.X+next.X, s.Y+next.Y
		if b.Map.Get(nx, ny).Element == tile.Empty {
			if ElementPushablePush(ctx, x, y, next.X-d.X, next.Y-d.Y) {
				arrived[(i+1)%len(order)] = true
			}
		}
	}
}

// tickBomb counts p1 down from its armed value of 9 once touched;
// at 1 it previews the blast (phase 1), and at 0 it detonates (phase 2),
// both centered on the bomb's own position and sized by the torch-halo
// formula (spec §4.3 "Bomb", "DrawPlayerSurroundings").
func tickBomb(ctx *TickContext, id int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil || s.P1 == 0 {
		return
	}
	s.P1--
	switch s.P1 {
	case 1:
		DrawPlayerSurroundings(ctx, s.X, s.Y, 1)
		ctx.Events.Sound("bomb_tick")
	case 0:
		DrawPlayerSurroundings(ctx, s.X, s.Y, 2)
		BoardDamageTile(ctx, s.X, s.Y)
		ctx.Events.Sound("bomb_blast")
	default:
		ctx.Events.Sound("bomb_tick")
	}
}

// touchTransporter sends the player through the chain: it scans forward
// from (x, y) along *this* transporter's own facing (StepX/StepY), looks
// for a paired Transporter stat facing back the other way, and lands the
// player one cell past that pair — but only if that landing cell is
// walkable; otherwise the transport is cancelled and the player stays
// where it was (spec §4.2 "Transporter", scenario S5). Scanning is
// bounded by the board's width plus height, preserved from
// original_source's TransporterMove bound (spec §9 Open Questions).
func touchTransporter(ctx *TickContext, x, y int) bool {
	b := ctx.Board
	id := b.Stats.At(x, y)
	if id == tile.NoStat {
		return true
	}
	s := b.Stats.Get(id)
	d := Dir{X: s.StepX, Y: s.StepY}
	if d == Idle {
		return true
	}
	back := d.Opp()

	bound := b.Map.Width() + b.Map.Height()
	cx, cy := x, y
	for i := 0; i < bound; i++ {
		cx, cy = cx+d.X, cy+d.Y
		t := b.Map.Get(cx, cy)
		if t.Element == tile.BoardEdge {
			return true
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
		lx, ly := cx+d.X, cy+d.Y
		landing := b.Map.Get(lx, ly)
		if landing.Element != tile.Empty && !Catalog[landing.Element].Walkable {
			return true
		}
		ElementMove(ctx, 1, lx, ly)
		ctx.Events.Sound("transport")
		return true
	}
	return true
}

// tickBlinkWall toggles a ray of BlinkRay tiles the full distance to the
// first obstacle in its fixed direction (StepX/StepY), on each due cycle
// (spec §4.3 "Blink Wall"): the beam snaps its whole length out, holds,
// then snaps back, rather than growing one cell per tick.
func tickBlinkWall(ctx *TickContext, id int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil {
		return
	}
	rayElem := tile.BlinkRayEw
	if s.StepY != 0 {
		rayElem = tile.BlinkRayNs
	}

	x, y := s.X+s.StepX, s.Y+s.StepY
	if s.P1 == 0 {
		color := b.Map.Get(s.X, s.Y).Color
		for b.Map.Get(x, y).Element == tile.Empty {
			b.Map.Set(x, y, tile.Tile{Element: rayElem, Color: color})
			x, y = x+s.StepX, y+s.StepY
		}
		s.P1 = 1
	} else {
		for b.Map.Get(x, y).Element == rayElem {
			b.Map.Set(x, y, tile.Tile{Element: tile.Empty})
			x, y = x+s.StepX, y+s.StepY
		}
		s.P1 = 0
	}
}

// tickDuplicator animates p1 from 0 to 5 on every due tick; at p1==5 it
// copies the tile standing in its facing direction (step) onto the
// opposite side, pushing whatever occupies that cell out of the way
// first, then resets p1 to 0. Its own cycle tracks p2's speed setting
// (spec §4.3 "Duplicator": "p1=0..5 animation", "cycle=(9-p2)*3").
func tickDuplicator(ctx *TickContext, id int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil {
		return
	}
	s.Cycle = (9 - int(s.P2)) * 3

	s.P1++
	if s.P1 < 5 {
		return
	}
	s.P1 = 0

	d := Dir{X: s.StepX, Y: s.StepY}
	srcX, srcY := s.X+d.X, s.Y+d.Y
	dstX, dstY := s.X-d.X, s.Y-d.Y

	src := b.Map.Get(srcX, srcY)
	if b.Map.Get(dstX, dstY).Element == tile.Player {
		if touch := Catalog[src.Element].Touch; touch != nil {
			touch(ctx, srcX, srcY)
		}
		return
	}
	if b.Map.Get(dstX, dstY).Element != tile.Empty {
		if !ElementPushablePush(ctx, dstX, dstY, -d.X, -d.Y) {
			return
		}
	}
	b.Map.Set(dstX, dstY, src)
	ctx.Events.Sound("duplicate")
}
