// Package oop implements the object-oriented-program scripting language
// bound to Object and Scroll stats: a line-oriented, label-addressed
// mini-language with movement directives, conditionals, and a handful of
// board-affecting commands (spec §4.5 "OOP scripting interpreter").
package oop

import (
	"strconv"
	"strings"

	"github.com/openzzt/zztcore/internal/elements"
)

// OopReadChar returns the byte at pos, or 0 past the end of the buffer —
// callers never need a separate bounds check before inspecting "the next
// character".
func OopReadChar(data []byte, pos int) byte {
	if pos < 0 || pos >= len(data) {
		return 0
	}
	return data[pos]
}

// OopSkipSpaces advances pos past any run of plain space characters.
func OopSkipSpaces(data []byte, pos int) int {
	for pos < len(data) && data[pos] == ' ' {
		pos++
	}
	return pos
}

// OopReadWord reads a run of non-space, non-newline characters starting
// at pos (after skipping leading spaces) and returns it uppercased along
// with the position just past it.
func OopReadWord(data []byte, pos int) (string, int) {
	pos = OopSkipSpaces(data, pos)
	start := pos
	for pos < len(data) && data[pos] != ' ' && data[pos] != '\r' && data[pos] != '\n' {
		pos++
	}
	return strings.ToUpper(string(data[start:pos])), pos
}

// OopReadValue reads a word and parses it as a decimal integer, falling
// back to a named world counter when it is not numeric (spec §4.5
// "#directive arguments" — a value can be a literal or a flag/counter
// name resolved by the interpreter's caller).
func OopReadValue(data []byte, pos int, lookup func(name string) int) (int, int) {
	word, next := OopReadWord(data, pos)
	if word == "" {
		return 0, next
	}
	if n, err := strconv.Atoi(word); err == nil {
		return n, next
	}
	if lookup != nil {
		return lookup(word), next
	}
	return 0, next
}

// OopReadDirection parses a direction expression: zero or more prefix
// operators (CW, CCW, OPP, RNDP) applied left-to-right to a base
// direction word (N, S, E, W, I for idle, SEEK, FLOW, RNDNE, RNDNS, RND).
// This mirrors the original grammar's direction-operator chaining (spec
// §4.5 "movement operators").
func OopReadDirection(data []byte, pos int, rng RNG, seekX, seekY, fromX, fromY int) (elements.Dir, int, bool) {
	var ops []string
	for {
		word, next := OopReadWord(data, pos)
		switch word {
		case "CW", "CCW", "OPP", "RNDP":
			ops = append(ops, word)
			pos = next
			continue
		}
		base, afterBase := baseDirection(word, rng, seekX, seekY, fromX, fromY)
		if afterBase == -1 {
			return elements.Idle, pos, false
		}
		pos = next
		d := base
		for i := len(ops) - 1; i >= 0; i-- {
			switch ops[i] {
			case "CW":
				d = d.CW()
			case "CCW":
				d = d.CCW()
			case "OPP":
				d = d.Opp()
			case "RNDP":
				if rng.Intn(2) == 0 {
					d = d.CW()
				} else {
					d = d.CCW()
				}
			}
		}
		return d, pos, true
	}
}

// RNG is the narrow randomness surface the tokenizer needs; satisfied by
// *math/rand.Rand.
type RNG interface {
	Intn(n int) int
}

func baseDirection(word string, rng RNG, seekX, seekY, fromX, fromY int) (elements.Dir, int) {
	switch word {
	case "N", "NORTH":
		return elements.North, 1
	case "S", "SOUTH":
		return elements.South, 1
	case "E", "EAST":
		return elements.East, 1
	case "W", "WEST":
		return elements.West, 1
	case "I", "IDLE":
		return elements.Idle, 1
	case "RND":
		dirs := [4]elements.Dir{elements.North, elements.South, elements.East, elements.West}
		return dirs[rng.Intn(4)], 1
	case "RNDNS":
		if rng.Intn(2) == 0 {
			return elements.North, 1
		}
		return elements.South, 1
	case "RNDNE":
		dirs := [4]elements.Dir{elements.North, elements.South, elements.East, elements.West}
		return dirs[rng.Intn(4)], 1
	case "SEEK":
		dx, dy := seekX-fromX, seekY-fromY
		return seekDir(dx, dy), 1
	case "FLOW":
		return elements.Idle, 1
	case "":
		return elements.Idle, -1
	default:
		return elements.Idle, -1
	}
}

func seekDir(dx, dy int) elements.Dir {
	if dx == 0 && dy == 0 {
		return elements.Idle
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return elements.East
		}
		return elements.West
	}
	if dy > 0 {
		return elements.South
	}
	return elements.North
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
