package oop

import (
	"math/rand"
	"strings"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/elements"
	"github.com/openzzt/zztcore/internal/tile"
)

// maxInstructionsPerCall caps how many OOP lines a single OopExecute call
// processes before yielding back to the scheduler, so a script that
// spins (e.g. a tight GO/label loop with no move) cannot stall a tick
// (spec §4.5 "instruction budget").
const maxInstructionsPerCall = 32

// World is the narrow slice of world state OOP scripts can read and
// mutate: named flags (spec's 16 flag slots) and named counters (ammo,
// gems, health, score, torches, time — anything GIVE/TAKE can target).
type World interface {
	Flag(name string) bool
	SetFlag(name string, set bool)
	Counter(name string) int
	AddCounter(name string, delta int)
}

// Machine is one running instance of the interpreter, bound to a single
// stat's script.
type Machine struct {
	Board     *board.Board
	StatID    int
	World     World
	RNG       *rand.Rand
	Events    elements.Events
	Energized bool

	// Dialog accumulates plain text lines since the last directive,
	// for the engine to show in a window once the script yields.
	Dialog []string
}

// stat returns the machine's stat, or nil if it has been removed.
func (m *Machine) stat() *tile.Stat { return m.Board.Stats.Get(m.StatID) }

// OopExecute runs the stat's script from its current DataPos until it
// moves, blocks waiting for a message window, halts (#END / DataPos =
// -1), or the instruction budget is exhausted — then leaves DataPos
// where execution should resume next cycle (spec §4.5 "OopExecute").
func OopExecute(m *Machine) {
	s := m.stat()
	if s == nil || s.Data == nil || s.DataPos < 0 {
		return
	}
	data := s.Data.Bytes

	for i := 0; i < maxInstructionsPerCall; i++ {
		if s.DataPos >= len(data) {
			s.DataPos = 0
			continue
		}

		c := data[s.DataPos]
		switch {
		case c == '\r' || c == '\n':
			s.DataPos++
		case c == ':' || c == '@':
			s.DataPos = lineEnd(data, s.DataPos)
		case c == '\'':
			s.DataPos = lineEnd(data, s.DataPos)
		case c == '/' || c == '?':
			forced := c == '/'
			d, next, ok := OopReadDirection(data, s.DataPos+1, m.RNG, playerX(m), playerY(m), s.X, s.Y)
			if !ok {
				s.DataPos = lineEnd(data, s.DataPos)
				continue
			}
			if tryMove(m, d) {
				s.DataPos = next
				return
			}
			if forced {
				return
			}
			s.DataPos = next
		case c == '#':
			halt := runCommand(m, data, s.DataPos)
			if halt {
				return
			}
		default:
			m.Dialog = append(m.Dialog, readLine(data, s.DataPos))
			s.DataPos = lineEnd(data, s.DataPos)
			return
		}

		s = m.stat()
		if s == nil || s.DataPos < 0 {
			return
		}
	}
}

func readLine(data []byte, pos int) string {
	end := pos
	for end < len(data) && data[end] != '\r' && data[end] != '\n' {
		end++
	}
	return string(data[pos:end])
}

func playerX(m *Machine) int { return m.Board.Stats.Player().X }
func playerY(m *Machine) int { return m.Board.Stats.Player().Y }

func tryMove(m *Machine, d elements.Dir) bool {
	s := m.stat()
	if d == elements.Idle {
		return true
	}
	nx, ny := s.X+d.X, s.Y+d.Y
	b := m.Board
	t := b.Map.Get(nx, ny)
	if t.Element == tile.Empty || elements.Catalog[t.Element].Walkable {
		elements.ElementMove(&elements.TickContext{Board: b, RNG: m.RNG, Events: m.Events}, m.StatID, nx, ny)
		return true
	}
	return false
}

// runCommand dispatches one "#CMD ..." line. It returns true if
// execution should yield back to the scheduler this cycle (most
// commands fall through to the next line instead).
func runCommand(m *Machine, data []byte, pos int) bool {
	word, next := OopReadWord(data, pos+1)
	s := m.stat()

	switch word {
	case "GO", "TRY":
		d, after, ok := OopReadDirection(data, next, m.RNG, playerX(m), playerY(m), s.X, s.Y)
		if !ok {
			s.DataPos = lineEnd(data, pos)
			return false
		}
		if tryMove(m, d) {
			s.DataPos = after
			return true
		} else if word == "TRY" {
			s.DataPos = lineEnd(data, pos)
		} else {
			s.DataPos = lineEnd(data, pos)
		}
		return false

	case "WALK":
		d, _, ok := OopReadDirection(data, next, m.RNG, playerX(m), playerY(m), s.X, s.Y)
		if ok {
			s.StepX, s.StepY = d.X, d.Y
		}
		s.DataPos = lineEnd(data, pos)
		return false

	case "IDLE":
		s.DataPos = lineEnd(data, pos)
		return true

	case "END":
		s.DataPos = -1
		return true

	case "DIE":
		m.Board.Stats.Remove(m.StatID)
		return true

	case "RESTART":
		s.DataPos = 0
		return false

	case "ENDGAME":
		m.Events.GameOver = true
		s.DataPos = lineEnd(data, pos)
		return true

	case "SET":
		name, after := OopReadWord(data, next)
		m.World.SetFlag(name, true)
		s.DataPos = after
		return false

	case "CLEAR":
		name, after := OopReadWord(data, next)
		m.World.SetFlag(name, false)
		s.DataPos = after
		return false

	case "IF":
		name, after := OopReadWord(data, next)
		if !evalCondition(m, name) {
			s.DataPos = lineEnd(data, pos)
			return false
		}
		if label, _ := OopReadWord(data, after); label != "" {
			if target := FindLabel(data, label); target >= 0 {
				s.DataPos = target
				return false
			}
		}
		s.DataPos = after
		return false

	case "SEND":
		token, after := OopReadWord(data, next)
		s.DataPos = after
		target, label := "SELF", token
		if i := strings.IndexByte(token, ':'); i >= 0 {
			target, label = token[:i], token[i+1:]
		}
		for id := 1; id <= m.Board.Stats.Count(); id++ {
			other := m.Board.Stats.Get(id)
			self := id == m.StatID
			if !(target == "ALL" || (target == "SELF" && self) || (target == "OTHERS" && !self) || strings.EqualFold(statName(m.Board, id), target)) {
				continue
			}
			if other.Data != nil && (self || other.P3 == 0) {
				if p := FindLabel(other.Data.Bytes, label); p >= 0 {
					other.DataPos = p
				}
			}
		}
		return false

	case "GIVE":
		applyCounter(m, data, next, +1)
		s.DataPos = lineEnd(data, pos)
		return false

	case "TAKE":
		name, afterName := OopReadWord(data, next)
		n, afterVal := OopReadValue(data, afterName, m.World.Counter)
		if m.World.Counter(name) >= n {
			m.World.AddCounter(name, -n)
			s.DataPos = lineEnd(data, pos)
		} else {
			s.DataPos = afterVal
		}
		return false

	case "ZAP":
		name, after := OopReadWord(data, next)
		ZapLabel(data, name)
		s.DataPos = after
		return false

	case "RESTORE":
		name, after := OopReadWord(data, next)
		RestoreLabel(data, name)
		s.DataPos = after
		return false

	case "LOCK":
		s.P3 = 1
		s.DataPos = lineEnd(data, pos)
		return false

	case "UNLOCK":
		s.P3 = 0
		s.DataPos = lineEnd(data, pos)
		return false

	case "SHOOT":
		d, after, ok := OopReadDirection(data, next, m.RNG, playerX(m), playerY(m), s.X, s.Y)
		if ok {
			ctx := &elements.TickContext{Board: m.Board, RNG: m.RNG, Events: m.Events}
			elements.BoardShoot(ctx, s.X+d.X, s.Y+d.Y, d.X, d.Y, false, elements.ShotSourceEnemy)
		}
		s.DataPos = after
		return false

	case "THROWSTAR":
		d, after, ok := OopReadDirection(data, next, m.RNG, playerX(m), playerY(m), s.X, s.Y)
		if ok {
			ctx := &elements.TickContext{Board: m.Board, RNG: m.RNG, Events: m.Events}
			elements.BoardShoot(ctx, s.X+d.X, s.Y+d.Y, d.X, d.Y, true, elements.ShotSourceEnemy)
		}
		s.DataPos = after
		return false

	case "BECOME":
		name, after := OopReadWord(data, next)
		if id, ok := elementByName[name]; ok {
			m.Board.Map.SetElement(s.X, s.Y, id)
		}
		s.DataPos = after
		return false

	case "PUT":
		d, after, ok := OopReadDirection(data, next, m.RNG, playerX(m), playerY(m), s.X, s.Y)
		if ok {
			name, after2 := OopReadWord(data, after)
			if id, ok := elementByName[name]; ok {
				m.Board.Map.Set(s.X+d.X, s.Y+d.Y, tile.Tile{Element: id})
			}
			s.DataPos = after2
		} else {
			s.DataPos = lineEnd(data, pos)
		}
		return false

	case "CHANGE":
		from, after := OopReadWord(data, next)
		to, after2 := OopReadWord(data, after)
		fromID, ok1 := elementByName[from]
		toID, ok2 := elementByName[to]
		if ok1 && ok2 {
			for y := 1; y <= m.Board.Map.Height(); y++ {
				for x := 1; x <= m.Board.Map.Width(); x++ {
					if m.Board.Map.Get(x, y).Element == fromID {
						m.Board.Map.SetElement(x, y, toID)
					}
				}
			}
		}
		s.DataPos = after2
		return false

	case "PLAY":
		tune := readLine(data, next)
		m.Events.Sound("play:" + tune)
		s.DataPos = lineEnd(data, pos)
		return false

	case "CYCLE":
		n, after := OopReadValue(data, next, nil)
		s.Cycle = n
		s.DataPos = after
		return false

	case "CHAR":
		_, after := OopReadValue(data, next, nil)
		s.DataPos = after
		return false

	case "BIND":
		name, after := OopReadWord(data, next)
		bindTo(m, name)
		s.DataPos = after
		return false

	default:
		m.Events.OopErrors++
		s.DataPos = lineEnd(data, pos)
		return false
	}
}

func evalCondition(m *Machine, name string) bool {
	switch name {
	case "ANY":
		// O(W*H) per call, no caching — matches the original's
		// brute-force board scan rather than an incrementally
		// maintained count (spec §9 Open Questions).
		return anyElementOnBoard(m.Board)
	default:
		return m.World.Flag(name)
	}
}

func anyElementOnBoard(b *board.Board) bool {
	for y := 1; y <= b.Map.Height(); y++ {
		for x := 1; x <= b.Map.Width(); x++ {
			if b.Map.Get(x, y).Element != tile.Empty {
				return true
			}
		}
	}
	return false
}

func applyCounter(m *Machine, data []byte, pos int, sign int) {
	name, after := OopReadWord(data, pos)
	n, after2 := OopReadValue(data, after, m.World.Counter)
	m.World.AddCounter(name, sign*n)
	_ = after2
}

// bindTo implements #BIND's interning edge case: binding to a stat with
// no script buffer yet creates an empty one first, rather than failing,
// so the two stats end up sharing a fresh buffer (spec §9 Open
// Questions, preserved from original_source's ParseBind).
func bindTo(m *Machine, targetName string) {
	s := m.stat()
	for id := 1; id <= m.Board.Stats.Count(); id++ {
		other := m.Board.Stats.Get(id)
		if other == s {
			continue
		}
		if !strings.EqualFold(statName(m.Board, id), targetName) {
			continue
		}
		if other.Data == nil {
			other.Data = &tile.ScriptData{}
		}
		s.Data = other.Data
		return
	}
}

// statName reads a stat's "@Name" header, the first line of its script
// buffer, the same convention the serializer writes for Object/Scroll
// stats (spec §4.5 "#BIND", §6 "@Name header"). A stat with no script or
// no header line has no name and never matches a #BIND/#SEND target.
func statName(b *board.Board, id int) string {
	s := b.Stats.Get(id)
	if s == nil || s.Data == nil || len(s.Data.Bytes) == 0 || s.Data.Bytes[0] != '@' {
		return ""
	}
	return readLine(s.Data.Bytes, 1)
}

var elementByName = map[string]tile.ElementID{
	"EMPTY": tile.Empty, "WALL": tile.Normal, "PLAYER": tile.Player,
	"BOULDER": tile.Boulder, "BREAKABLE": tile.Breakable, "WATER": tile.Water,
	"FOREST": tile.Forest, "DOOR": tile.Door, "KEY": tile.Key, "AMMO": tile.Ammo,
	"GEM": tile.Gem, "TORCH": tile.Torch, "LION": tile.Lion, "TIGER": tile.Tiger,
	"RUFFIAN": tile.Ruffian, "BEAR": tile.Bear, "SHARK": tile.Shark, "SLIME": tile.Slime,
	"BULLET": tile.Bullet, "STAR": tile.Star, "BOMB": tile.Bomb,
	"ENERGIZER": tile.Energizer, "OBJECT": tile.Object, "SCROLL": tile.Scroll,
	"PASSAGE": tile.Passage, "DUPLICATOR": tile.Duplicator,
}
