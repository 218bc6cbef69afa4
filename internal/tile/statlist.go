package tile

// StatList is the compact, index-addressed arena of active stats for one
// board. Index 0 and the slot one past the last live stat are reserved
// sentinels (spec §3 "sentinel slots at both ends") so code that scans a
// neighborhood of an index — the OOP interpreter's SEND, the transporter
// pairing search — never needs a separate bounds check. Stat 1 is always
// the player (the original engine's board.Stats[0]; slot 0 here is the
// sentinel).
//
// Live stats occupy ids 1..Count(). Removal preserves relative order
// (later code, like follower/leader chains, depends on ids only ever
// shifting down, never being reused out of order) and keeps
// CurrentTicked in sync so the scheduler never skips or double-ticks the
// stat that slides into the removed slot (spec §4.6, §8 property 2).
type StatList struct {
	stats        []Stat
	count        int
	currentTicked int // id of the stat the scheduler is mid-tick on, or NoStat
}

// NewStatList returns an empty list: just the player placeholder at id 1
// plus the two sentinel slots.
func NewStatList() *StatList {
	l := &StatList{
		stats:         make([]Stat, 3),
		count:         1,
		currentTicked: NoStat,
	}
	l.stats[1] = NewStat(0, 0)
	return l
}

// Count returns the number of live stats (including the player at id 1).
func (l *StatList) Count() int { return l.count }

// Get returns the stat at id, or nil if id is out of range. The returned
// pointer is valid only until the next Add/Remove.
func (l *StatList) Get(id int) *Stat {
	if id < 1 || id > l.count {
		return nil
	}
	return &l.stats[id]
}

// Player returns the player stat (always id 1).
func (l *StatList) Player() *Stat { return &l.stats[1] }

// At returns the id of the stat occupying (x, y), or NoStat.
func (l *StatList) At(x, y int) int {
	for id := 1; id <= l.count; id++ {
		if l.stats[id].At(x, y) {
			return id
		}
	}
	return NoStat
}

// CurrentTicked returns the id the scheduler is currently ticking, or
// NoStat between ticks.
func (l *StatList) CurrentTicked() int { return l.currentTicked }

// SetCurrentTicked records which stat the scheduler is about to tick.
func (l *StatList) SetCurrentTicked(id int) { l.currentTicked = id }

// Add appends a new stat and returns its id.
func (l *StatList) Add(s Stat) int {
	l.count++
	if l.count+1 >= len(l.stats) {
		grown := make([]Stat, len(l.stats)*2)
		copy(grown, l.stats)
		l.stats = grown
	}
	l.stats[l.count] = s
	return l.count
}

// Remove deletes the stat at id, shifting every later stat down by one
// slot. Follower/Leader references and the currently-ticking id are
// fixed up so no id that pointed past the removed slot goes stale, and
// so the scheduler's walk over stat ids does not skip the stat that
// slides into the freed slot (spec §8 property 2).
func (l *StatList) Remove(id int) {
	if id < 1 || id > l.count {
		return
	}
	for i := id; i < l.count; i++ {
		l.stats[i] = l.stats[i+1]
	}
	l.count--

	fix := func(ref int) int {
		switch {
		case ref == NoStat:
			return NoStat
		case ref == id:
			return NoStat
		case ref > id:
			return ref - 1
		default:
			return ref
		}
	}
	for i := 1; i <= l.count; i++ {
		l.stats[i].Follower = fix(l.stats[i].Follower)
		l.stats[i].Leader = fix(l.stats[i].Leader)
	}

	switch {
	case l.currentTicked == NoStat:
	case l.currentTicked == id:
		l.currentTicked--
	case l.currentTicked > id:
		l.currentTicked--
	}
}
