package tile

import "testing"

func TestStatListRemoveShiftsIdsDown(t *testing.T) {
	l := NewStatList()
	idA := l.Add(NewStat(1, 1))
	idB := l.Add(NewStat(2, 2))
	idC := l.Add(NewStat(3, 3))

	l.Remove(idA)

	if got := l.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
	if s := l.Get(idA); s.X != 2 || s.Y != 2 {
		t.Fatalf("id %d after removal = (%d,%d), want (2,2)", idA, s.X, s.Y)
	}
	if s := l.Get(idB); s.X != 3 || s.Y != 3 {
		t.Fatalf("stat C did not shift down correctly")
	}
	_ = idC
}

func TestStatListRemoveFixesFollowerLeader(t *testing.T) {
	l := NewStatList()
	idA := l.Add(NewStat(1, 1))
	idB := l.Add(NewStat(2, 2))
	idC := l.Add(NewStat(3, 3))

	l.Get(idA).Follower = idB
	l.Get(idB).Leader = idA
	l.Get(idB).Follower = idC
	l.Get(idC).Leader = idB

	l.Remove(idB)

	a := l.Get(idA)
	if a.Follower != NoStat {
		t.Fatalf("A.Follower after removing B = %d, want NoStat", a.Follower)
	}
	c := l.Get(idB) // C shifted into B's old slot
	if c.Leader != NoStat {
		t.Fatalf("C.Leader after removing B = %d, want NoStat", c.Leader)
	}
}

func TestStatListCurrentTickedAdjustsOnRemoval(t *testing.T) {
	l := NewStatList()
	l.Add(NewStat(1, 1))
	l.Add(NewStat(2, 2))
	idC := l.Add(NewStat(3, 3))

	l.SetCurrentTicked(idC)
	l.Remove(2)

	if got := l.CurrentTicked(); got != idC-1 {
		t.Fatalf("CurrentTicked() after removing a lower id = %d, want %d", got, idC-1)
	}
}

func TestTileMapBorderIsBoardEdge(t *testing.T) {
	m := NewTileMap(10, 10)
	cases := []Coord{{0, 0}, {0, 5}, {11, 5}, {5, 0}, {5, 11}, {-1, -1}}
	for _, c := range cases {
		if got := m.Get(c.X, c.Y); got.Element != BoardEdge {
			t.Fatalf("Get(%d,%d) = %v, want BoardEdge", c.X, c.Y, got)
		}
	}
}

func TestTileMapSetGetRoundTrip(t *testing.T) {
	m := NewTileMap(10, 10)
	m.Set(5, 5, Tile{Element: Boulder, Color: 0x0E})
	got := m.Get(5, 5)
	if got.Element != Boulder || got.Color != 0x0E {
		t.Fatalf("Get(5,5) = %+v, want Boulder/0x0E", got)
	}
}
