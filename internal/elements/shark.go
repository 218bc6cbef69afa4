package elements

import "github.com/openzzt/zztcore/internal/tile"

// tickShark only moves through Water; it seeks the player with
// probability p1 the same way Lion does, but every candidate cell is
// rejected unless it is Water (spec §4.3 "Shark").
func tickShark(ctx *TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil {
		return
	}
	chance := int(s.P1)
	if chance == 0 {
		chance = 50
	}
	var d Dir
	if ctx.RNG.Intn(100) < chance {
		d = CalcDirectionSeek(ctx.Board, s.X, s.Y)
	} else {
		d = CalcDirectionRnd(ctx.RNG)
	}
	if d == Idle {
		return
	}
	nx, ny := s.X+d.X, s.Y+d.Y
	if targetID := ctx.Board.Stats.At(nx, ny); targetID == 1 {
		BoardAttack(ctx, id, targetID)
		return
	}
	if ctx.Board.Map.Get(nx, ny).Element == tile.Water {
		ElementMove(ctx, id, nx, ny)
	}
}
