package oop

import (
	"math/rand"
	"testing"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/tile"
)

// fakeWorld is a minimal oop.World for exercising SET/CLEAR/GIVE/TAKE
// without pulling in internal/world's board-transition machinery.
type fakeWorld struct {
	flags    map[string]bool
	counters map[string]int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{flags: map[string]bool{}, counters: map[string]int{}}
}

func (w *fakeWorld) Flag(name string) bool       { return w.flags[name] }
func (w *fakeWorld) SetFlag(name string, v bool) { w.flags[name] = v }
func (w *fakeWorld) Counter(name string) int      { return w.counters[name] }
func (w *fakeWorld) AddCounter(name string, d int) {
	w.counters[name] += d
}

func newMachine(t *testing.T, script string) (*Machine, *tile.Stat) {
	t.Helper()
	b := board.New("Test")
	s := tile.NewStat(5, 5)
	s.Data = tile.NewScriptData([]byte(script))
	s.DataPos = 0
	id := b.Stats.Add(s)
	m := &Machine{
		Board:  b,
		StatID: id,
		World:  newFakeWorld(),
		RNG:    rand.New(rand.NewSource(1)),
	}
	return m, m.stat()
}

func TestOopSetAndIf(t *testing.T) {
	m, _ := newMachine(t, "#SET OPEN\n#IF OPEN FOUND\n#GIVE MARK 1\n#END\n:FOUND\n#GIVE MARK 2\n#END\n")
	OopExecute(m)
	fw := m.World.(*fakeWorld)
	if got := fw.counters["MARK"]; got != 2 {
		t.Fatalf("MARK = %d, want 2 (IF OPEN should have jumped to :FOUND)", got)
	}
}

func TestOopGiveTakeCounters(t *testing.T) {
	m, _ := newMachine(t, "#GIVE AMMO 5\n#TAKE AMMO 2\n#END\n")
	OopExecute(m)
	fw := m.World.(*fakeWorld)
	if got := fw.counters["AMMO"]; got != 3 {
		t.Fatalf("AMMO counter = %d, want 3", got)
	}
}

func TestOopCycleSetsStatCycle(t *testing.T) {
	m, _ := newMachine(t, "#CYCLE 3\n#END\n")
	OopExecute(m)
	if s := m.stat(); s.Cycle != 3 {
		t.Fatalf("Cycle = %d, want 3", s.Cycle)
	}
}

func TestOopEndHaltsScript(t *testing.T) {
	m, _ := newMachine(t, "#END\n")
	OopExecute(m)
	if s := m.stat(); s.DataPos != -1 {
		t.Fatalf("DataPos = %d, want -1 (halted)", s.DataPos)
	}
}

func TestOopUnknownDirectiveCountsAsError(t *testing.T) {
	m, _ := newMachine(t, "#NOTAREALCOMMAND\n#END\n")
	OopExecute(m)
	if m.Events.OopErrors != 1 {
		t.Fatalf("OopErrors = %d, want 1", m.Events.OopErrors)
	}
}

func TestOopDieRemovesStat(t *testing.T) {
	m, _ := newMachine(t, "#DIE\n")
	count := m.Board.Stats.Count()
	OopExecute(m)
	if got := m.Board.Stats.Count(); got != count-1 {
		t.Fatalf("stat count after #DIE = %d, want %d", got, count-1)
	}
}

func TestStatNameReadsAtHeader(t *testing.T) {
	b := board.New("Test")
	s := tile.NewStat(5, 5)
	s.Data = tile.NewScriptData([]byte("@Guard\n:TOUCH\n#END\n"))
	id := b.Stats.Add(s)

	if got := statName(b, id); got != "Guard" {
		t.Fatalf("statName() = %q, want %q", got, "Guard")
	}
}

func TestStatNameEmptyWithoutHeader(t *testing.T) {
	b := board.New("Test")
	s := tile.NewStat(5, 5)
	s.Data = tile.NewScriptData([]byte(":TOUCH\n#END\n"))
	id := b.Stats.Add(s)

	if got := statName(b, id); got != "" {
		t.Fatalf("statName() = %q, want empty", got)
	}
}

func TestOopBindSharesScriptBuffer(t *testing.T) {
	b := board.New("Test")
	target := tile.NewStat(2, 2)
	target.Data = tile.NewScriptData([]byte("@Lever\n:TOUCH\n#END\n"))
	targetID := b.Stats.Add(target)

	binder := tile.NewStat(5, 5)
	binder.Data = tile.NewScriptData([]byte("#BIND Lever\n#END\n"))
	binder.DataPos = 0
	binderID := b.Stats.Add(binder)

	m := &Machine{Board: b, StatID: binderID, World: newFakeWorld(), RNG: rand.New(rand.NewSource(1))}
	OopExecute(m)

	bound := b.Stats.Get(binderID)
	want := b.Stats.Get(targetID)
	if bound.Data != want.Data {
		t.Fatalf("binder should share the target's *ScriptData after #BIND")
	}
}
