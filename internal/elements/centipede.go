package elements

import "github.com/openzzt/zztcore/internal/tile"

// Centipede direction tie-break order when the head's preferred
// direction is blocked: try one perpendicular, then the other
// perpendicular (its opposite), then finally the true reverse of the
// original direction — the exact probe order
// original_source/src/elements.cpp's ElementCentipedeHeadTick uses
// (perpendicular, its opposite, then the saved original direction
// negated) before giving up and flipping the whole chain. This ordering
// is an explicit decision (an Open Question in the spec) rather than
// something derivable from the rest of the behavior table; see
// DESIGN.md.
func centipedeTieBreak(cur Dir) []Dir {
	return []Dir{cur.CW(), cur.CCW(), cur.Opp()}
}

// tickCentipedeHead advances the head one cell and drags every segment
// behind it into the position the stat ahead of it just vacated (spec
// §4.3 "Centipede").
func tickCentipedeHead(ctx *TickContext, id int) {
	b := ctx.Board
	s := b.Stats.Get(id)
	if s == nil {
		return
	}

	d := Dir{X: s.StepX, Y: s.StepY}
	if d == Idle {
		d = CalcDirectionRnd(ctx.RNG)
	}

	candidates := append([]Dir{d}, centipedeTieBreak(d)...)
	for _, c := range candidates {
		nx, ny := s.X+c.X, s.Y+c.Y
		if targetID := b.Stats.At(nx, ny); targetID == 1 {
			BoardAttack(ctx, id, targetID)
			return
		}
		t := b.Map.Get(nx, ny)
		if t.Element == tile.Empty || Catalog[t.Element].Walkable {
			oldX, oldY := s.X, s.Y
			s.StepX, s.StepY = c.X, c.Y
			ElementMove(ctx, id, nx, ny)
			advanceChain(ctx, s.Follower, oldX, oldY)
			recruitSegment(ctx, id)
			return
		}
	}
	reverseCentipede(ctx, id)
}

// recruitSegment looks for a loose CentipedeSegment stat (one with no
// leader of its own) adjacent to the tail of id's chain, probing back,
// then perpendicular-positive, then perpendicular-negative relative to
// the tail's own facing, and attaches the first match as its new
// follower (spec §4.3 "Centipede": "searching at {back, perpendicular±}
// for an unclaimed segment to recruit").
func recruitSegment(ctx *TickContext, headID int) {
	b := ctx.Board
	tailID := headID
	for {
		s := b.Stats.Get(tailID)
		if s == nil || s.Follower == tile.NoStat {
			break
		}
		tailID = s.Follower
	}
	tail := b.Stats.Get(tailID)
	if tail == nil {
		return
	}
	d := Dir{X: tail.StepX, Y: tail.StepY}
	if d == Idle {
		return
	}
	for _, c := range []Dir{d.Opp(), d.CW(), d.CCW()} {
		x, y := tail.X+c.X, tail.Y+c.Y
		if b.Map.Get(x, y).Element != tile.CentipedeSegment {
			continue
		}
		segID := b.Stats.At(x, y)
		if segID == tile.NoStat {
			continue
		}
		seg := b.Stats.Get(segID)
		if seg.Leader != tile.NoStat {
			continue
		}
		seg.Leader = tailID
		tail.Follower = segID
		return
	}
}

// reverseCentipede swaps a fully boxed-in head with the tail of its own
// chain: the old head becomes an ordinary segment, the last follower
// becomes the new head facing the opposite way, and every link in
// between is relinked in reverse order. Every segment inherits the
// original head's p1/p2 rather than its own — an explicit quirk scripts
// may depend on, preserved rather than smoothed over (spec §9 Open
// Questions; scenario S3).
func reverseCentipede(ctx *TickContext, headID int) {
	b := ctx.Board
	head := b.Stats.Get(headID)
	if head == nil {
		return
	}

	chain := []int{headID}
	for cur := head.Follower; cur != tile.NoStat; {
		seg := b.Stats.Get(cur)
		if seg == nil {
			break
		}
		chain = append(chain, cur)
		cur = seg.Follower
	}
	if len(chain) < 2 {
		head.StepX, head.StepY = -head.StepX, -head.StepY
		return
	}

	p1, p2 := head.P1, head.P2
	n := len(chain)
	order := make([]int, n)
	for i, id := range chain {
		order[n-1-i] = id
	}
	for i, id := range order {
		s := b.Stats.Get(id)
		s.P1, s.P2 = p1, p2
		if i == 0 {
			s.Leader = tile.NoStat
		} else {
			s.Leader = order[i-1]
		}
		if i == n-1 {
			s.Follower = tile.NoStat
		} else {
			s.Follower = order[i+1]
		}
	}

	newHead := b.Stats.Get(order[0])
	newHead.StepX, newHead.StepY = -head.StepX, -head.StepY
	b.Map.SetElement(newHead.X, newHead.Y, tile.CentipedeHead)
	b.Map.SetElement(head.X, head.Y, tile.CentipedeSegment)
}

// advanceChain walks the follower list starting at segID, moving each
// segment into the position the one ahead of it just left.
func advanceChain(ctx *TickContext, segID int, prevX, prevY int) {
	b := ctx.Board
	for segID != tile.NoStat {
		seg := b.Stats.Get(segID)
		if seg == nil {
			return
		}
		oldX, oldY := seg.X, seg.Y
		ElementMove(ctx, segID, prevX, prevY)
		prevX, prevY = oldX, oldY
		segID = seg.Follower
	}
}

// tickCentipedeSegment is a no-op: segments are carried along by the
// head via advanceChain and never move on their own cycle.
func tickCentipedeSegment(ctx *TickContext, id int) {}

// SplitCentipede is called when the segment at id is destroyed. The
// segment immediately following it (its Follower) becomes a new head,
// inheriting the destroyed chain's P1/P2 intelligence/speed settings
// rather than resetting to defaults — preserved as a deliberate quirk of
// the original behavior rather than smoothed away (spec §9 Open
// Questions).
func SplitCentipede(ctx *TickContext, id int) {
	b := ctx.Board
	seg := b.Stats.Get(id)
	if seg == nil {
		return
	}
	newHeadID := seg.Follower
	if newHeadID == tile.NoStat {
		return
	}
	newHead := b.Stats.Get(newHeadID)
	newHead.Leader = tile.NoStat
	newHead.P1, newHead.P2 = seg.P1, seg.P2
	b.Map.SetElement(newHead.X, newHead.Y, tile.CentipedeHead)
}
