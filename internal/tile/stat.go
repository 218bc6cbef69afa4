package tile

// NoStat is the "not found" sentinel returned by coordinate lookups.
const NoStat = -1

// ScriptData is a stat's OOP script buffer. Multiple stats may share the
// same *ScriptData (spec §3 "data may be shared by multiple stats"); the
// OOP interpreter's ZAP/RESTORE/#BIND edit it in place, so sharing must be
// by pointer identity, never by copying bytes.
type ScriptData struct {
	Bytes []byte
}

// NewScriptData copies src into a fresh, independently owned buffer.
func NewScriptData(src []byte) *ScriptData {
	buf := make([]byte, len(src))
	copy(buf, src)
	return &ScriptData{Bytes: buf}
}

// Stat is an active entity pinned to a tile. See spec §3.
type Stat struct {
	X, Y           int
	StepX, StepY   int
	Cycle          int // ticks between updates; 0 means never
	P1, P2, P3     uint8
	Follower       int // index of the next stat in a chain, or NoStat
	Leader         int // index of the previous stat in a chain, or NoStat
	Under          Tile
	DataPos        int // script cursor; -1 means halted permanently
	Data           *ScriptData
}

// NewStat returns a stat with the follower/leader sentinels spec §3
// requires and a halted script cursor.
func NewStat(x, y int) Stat {
	return Stat{
		X: x, Y: y,
		Follower: NoStat,
		Leader:   NoStat,
		DataPos:  NoStat,
	}
}

// At reports whether the stat currently occupies (x, y).
func (s *Stat) At(x, y int) bool { return s.X == x && s.Y == y }

// Coord returns the stat's position as a Coord.
func (s *Stat) Coord() Coord { return Coord{X: s.X, Y: s.Y} }

// HasScript reports whether the stat has a non-empty, non-halted script.
func (s *Stat) HasScript() bool {
	return s.Data != nil && len(s.Data.Bytes) > 0 && s.DataPos >= 0
}
