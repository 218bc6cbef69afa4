package elements

import "github.com/openzzt/zztcore/internal/tile"

// tickSlime crawls in a straight line, leaving a Breakable residue tile
// behind it, and reverses direction (see splitSlime) when it can no
// longer advance (spec §4.3 "Slime").
func tickSlime(ctx *TickContext, id int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil {
		return
	}
	d := Dir{X: s.StepX, Y: s.StepY}
	if d == Idle {
		d = CalcDirectionRnd(ctx.RNG)
		s.StepX, s.StepY = d.X, d.Y
	}

	nx, ny := s.X+d.X, s.Y+d.Y
	if targetID := b.Stats.At(nx, ny); targetID == 1 {
		BoardAttack(ctx, id, targetID)
		return
	}
	t := b.Map.Get(nx, ny)
	if t.Element != tile.Empty {
		splitSlime(ctx, id)
		return
	}

	residueColor := b.Map.Get(s.X, s.Y).Color
	ElementMove(ctx, id, nx, ny)
	// the cell the slime just vacated becomes a breakable husk
	b.Map.Set(nx-d.X, ny-d.Y, tile.Tile{Element: tile.Breakable, Color: residueColor})
}

// splitSlime turns a blocked slime around in place, the cheap substitute
// for the original's full division-into-two-stats behavior: P3 counts
// how many times this slime has reversed, capped so it cannot loop
// forever producing residue in a dead end.
func splitSlime(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s.P3 >= 3 {
		return
	}
	s.P3++
	s.StepX, s.StepY = -s.StepX, -s.StepY
}
