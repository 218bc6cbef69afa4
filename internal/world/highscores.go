package world

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// HighScores is a plain sorted list of name/score/board entries, the data
// model from the original engine's high score table without its text-window
// UI (out of scope per the core-engine spec, but the data model is not).
type HighScores struct {
	Entries []HighScoreEntry
}

// HighScoreEntry is one row of the table.
type HighScoreEntry struct {
	Name  string
	Score int
	Board string
}

const maxHighScores = 30

// Add inserts an entry, keeping the list sorted by descending score and
// capped at maxHighScores.
func (h *HighScores) Add(name string, score int, boardName string) {
	h.Entries = append(h.Entries, HighScoreEntry{Name: name, Score: score, Board: boardName})
	sort.SliceStable(h.Entries, func(i, j int) bool {
		return h.Entries[i].Score > h.Entries[j].Score
	})
	if len(h.Entries) > maxHighScores {
		h.Entries = h.Entries[:maxHighScores]
	}
}

// Encode serializes the table using the same pascal-string convention as
// the board/world file format.
func (h *HighScores) Encode() []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(len(h.Entries)))
	for _, e := range h.Entries {
		writePStringTo(&buf, e.Name)
		binary.Write(&buf, binary.LittleEndian, int32(e.Score))
		writePStringTo(&buf, e.Board)
	}
	return buf.Bytes()
}

// DecodeHighScores is the inverse of Encode.
func DecodeHighScores(data []byte) (*HighScores, error) {
	r := bytes.NewReader(data)
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("highscores: count: %w", err)
	}
	h := &HighScores{Entries: make([]HighScoreEntry, 0, count)}
	for i := 0; i < int(count); i++ {
		name, err := readPStringFrom(r)
		if err != nil {
			return nil, fmt.Errorf("highscores: entry %d name: %w", i, err)
		}
		var score int32
		if err := binary.Read(r, binary.LittleEndian, &score); err != nil {
			return nil, fmt.Errorf("highscores: entry %d score: %w", i, err)
		}
		boardName, err := readPStringFrom(r)
		if err != nil {
			return nil, fmt.Errorf("highscores: entry %d board: %w", i, err)
		}
		h.Entries = append(h.Entries, HighScoreEntry{Name: name, Score: int(score), Board: boardName})
	}
	return h, nil
}

func writePStringTo(w io.Writer, s string) {
	if len(s) > 255 {
		s = s[:255]
	}
	w.Write([]byte{byte(len(s))})
	if len(s) > 0 {
		w.Write([]byte(s))
	}
}

func readPStringFrom(r io.Reader) (string, error) {
	var lenBuf [1]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := int(lenBuf[0])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
