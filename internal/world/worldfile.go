package world

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// worldHeaderSize is the fixed size of the world file header: a constant
// length so a reader can always seek straight to the first board block
// (spec §6 "World file format").
const worldHeaderSize = 512

// worldVersion is written at offset 0 in place of a magic number — the
// original format uses -1 there to mean "this is a ZZT world" (spec §6:
// "version, -1 for ZZT").
const worldVersion int16 = -1

// namePStringWidth and flagPStringWidth are the fixed field widths
// (1 length byte + padded body) spec §6 reserves for the world name and
// each of the 16 flag strings, distinct from the variable-length
// pascal strings internal/serializer and the high-score table use —
// this header is a fixed-offset table, so every field has to land on
// its documented byte exactly.
const (
	namePStringWidth = 21
	flagPStringWidth = 21
)

// EncodeFile writes the whole world — a 512-byte header laid out to
// spec §6's exact byte-offset table, then one length-prefixed block per
// board — to a byte slice suitable for writing to a .ZZT/.SAV file. It
// calls BoardClose itself first, so the current board's slot holds its
// latest state.
func (w *World) EncodeFile() []byte {
	w.BoardClose()

	var buf bytes.Buffer

	hw := new(bytes.Buffer)
	binary.Write(hw, binary.LittleEndian, worldVersion)              // 0: version
	binary.Write(hw, binary.LittleEndian, int16(len(w.boards)))      // 2: board_count
	binary.Write(hw, binary.LittleEndian, int16(w.Info.Ammo))        // 4: ammo
	binary.Write(hw, binary.LittleEndian, int16(w.Info.Gems))        // 6: gems
	for _, k := range w.Info.Keys {                                 // 8: keys[7]
		hw.WriteByte(boolByte(k))
	}
	binary.Write(hw, binary.LittleEndian, int16(w.Info.Health))         // 15: health
	binary.Write(hw, binary.LittleEndian, int16(w.Info.CurrentBoard))   // 17: current_board
	binary.Write(hw, binary.LittleEndian, int16(w.Info.Torches))        // 19: torches
	binary.Write(hw, binary.LittleEndian, int16(w.Info.TorchTicks))     // 21: torch_ticks
	binary.Write(hw, binary.LittleEndian, int16(w.Info.EnergizerTicks)) // 23: energizer_ticks
	binary.Write(hw, binary.LittleEndian, int16(0))                    // 25: reserved
	binary.Write(hw, binary.LittleEndian, int16(w.Info.Score))         // 27: score
	writePStringPadded(hw, w.Info.Name, namePStringWidth)              // 29: name
	for _, f := range w.Info.Flags {                                  // 50: flags[16]
		writePStringPadded(hw, f, flagPStringWidth)
	}
	binary.Write(hw, binary.LittleEndian, int16(w.Info.BoardTimeSec))  // 386: board_time_sec
	binary.Write(hw, binary.LittleEndian, int16(w.Info.BoardTimeHsec)) // 388: board_time_hsec
	hw.WriteByte(boolByte(w.Info.IsSave))                              // 390: is_save

	if hw.Len() > worldHeaderSize {
		panic("world: header exceeds fixed size")
	}
	header := make([]byte, worldHeaderSize) // 391: reserved, zero-padded to 512
	copy(header, hw.Bytes())
	buf.Write(header)

	for _, blk := range w.boards {
		binary.Write(&buf, binary.LittleEndian, uint16(len(blk)))
		buf.Write(blk)
	}

	return buf.Bytes()
}

// DecodeFile reads a world file written by EncodeFile and opens its
// current board.
func DecodeFile(data []byte) (*World, error) {
	if len(data) < worldHeaderSize {
		return nil, fmt.Errorf("world: file shorter than header (%d bytes)", len(data))
	}
	hr := bytes.NewReader(data[:worldHeaderSize])

	var version int16
	binary.Read(hr, binary.LittleEndian, &version)
	if version != worldVersion {
		return nil, fmt.Errorf("world: unsupported version %d (need a newer version of ZZT!)", version)
	}

	var boardCount, ammo, gems int16
	binary.Read(hr, binary.LittleEndian, &boardCount)
	binary.Read(hr, binary.LittleEndian, &ammo)
	binary.Read(hr, binary.LittleEndian, &gems)

	info := WorldInfo{}
	for i := range info.Keys {
		var k uint8
		binary.Read(hr, binary.LittleEndian, &k)
		info.Keys[i] = k != 0
	}

	var health, currentBoard, torches, torchTicks, energizerTicks, reserved, score int16
	binary.Read(hr, binary.LittleEndian, &health)
	binary.Read(hr, binary.LittleEndian, &currentBoard)
	binary.Read(hr, binary.LittleEndian, &torches)
	binary.Read(hr, binary.LittleEndian, &torchTicks)
	binary.Read(hr, binary.LittleEndian, &energizerTicks)
	binary.Read(hr, binary.LittleEndian, &reserved)
	binary.Read(hr, binary.LittleEndian, &score)

	name, err := readPStringPadded(hr, namePStringWidth)
	if err != nil {
		return nil, fmt.Errorf("world: name: %w", err)
	}
	for i := range info.Flags {
		f, err := readPStringPadded(hr, flagPStringWidth)
		if err != nil {
			return nil, fmt.Errorf("world: flag %d: %w", i, err)
		}
		info.Flags[i] = f
	}

	var boardTimeSec, boardTimeHsec int16
	var isSave uint8
	binary.Read(hr, binary.LittleEndian, &boardTimeSec)
	binary.Read(hr, binary.LittleEndian, &boardTimeHsec)
	binary.Read(hr, binary.LittleEndian, &isSave)

	info.Ammo = int(ammo)
	info.Gems = int(gems)
	info.Health = int(health)
	info.Torches = int(torches)
	info.TorchTicks = int(torchTicks)
	info.EnergizerTicks = int(energizerTicks)
	info.Score = int(score)
	info.BoardTimeSec = int(boardTimeSec)
	info.BoardTimeHsec = int(boardTimeHsec)
	info.CurrentBoard = int(currentBoard)
	info.IsSave = isSave != 0
	info.Name = name

	r := bytes.NewReader(data[worldHeaderSize:])
	blocks := make([][]byte, 0, boardCount)
	for i := 0; i < int(boardCount); i++ {
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("world: board %d length: %w", i, err)
		}
		blk := make([]byte, n)
		if _, err := io.ReadFull(r, blk); err != nil {
			return nil, fmt.Errorf("world: board %d body: %w", i, err)
		}
		blocks = append(blocks, blk)
	}

	w := &World{Info: info, boards: blocks}
	if err := w.BoardOpen(info.CurrentBoard); err != nil {
		return nil, fmt.Errorf("world: open current board: %w", err)
	}
	return w, nil
}

// writePStringPadded writes a fixed-width pascal string: one length byte
// followed by width-1 bytes of string data, zero-padded — spec §6's
// header fields (name, each flag) are fixed offsets, so the field always
// occupies width bytes regardless of the string's actual length.
func writePStringPadded(w io.Writer, s string, width int) {
	body := width - 1
	if len(s) > body {
		s = s[:body]
	}
	field := make([]byte, width)
	field[0] = byte(len(s))
	copy(field[1:], s)
	w.Write(field)
}

// readPStringPadded is the inverse of writePStringPadded.
func readPStringPadded(r io.Reader, width int) (string, error) {
	field := make([]byte, width)
	if _, err := io.ReadFull(r, field); err != nil {
		return "", err
	}
	n := int(field[0])
	if n > width-1 {
		n = width - 1
	}
	return string(field[1 : 1+n]), nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
