package serializer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/tile"
)

// EncodeBoard serializes a board to its on-disk byte form: name, RLE tile
// data, BoardInfo, then the stat table. Stats whose script buffer is
// shared by pointer identity (spec §3 "data may be shared by multiple
// stats") are written once and referenced by a negative length pointing
// back at the first stat that carried it, mirroring the original
// format's shared-data convention.
func EncodeBoard(b *board.Board) []byte {
	var buf bytes.Buffer

	writePString(&buf, b.Name)

	w, h := b.Map.Width(), b.Map.Height()
	binary.Write(&buf, binary.LittleEndian, uint16(w))
	binary.Write(&buf, binary.LittleEndian, uint16(h))

	tiles := make([]tile.Tile, 0, w*h)
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			tiles = append(tiles, b.Map.Get(x, y))
		}
	}
	rle := EncodeRLE(tiles)
	binary.Write(&buf, binary.LittleEndian, uint32(len(rle)))
	buf.Write(rle)

	encodeBoardInfo(&buf, b.Info)

	count := b.Stats.Count()
	binary.Write(&buf, binary.LittleEndian, int16(count))

	seen := make(map[*tile.ScriptData]int)
	for id := 1; id <= count; id++ {
		s := b.Stats.Get(id)
		encodeStat(&buf, s, id, seen)
	}

	return buf.Bytes()
}

// DecodeBoard is the inverse of EncodeBoard.
func DecodeBoard(data []byte) (*board.Board, error) {
	r := bytes.NewReader(data)

	name, err := readPString(r)
	if err != nil {
		return nil, errors.Wrap(err, "serializer: board name")
	}

	var w, h uint16
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return nil, errors.Wrap(err, "serializer: board width")
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "serializer: board height")
	}

	var rleLen uint32
	if err := binary.Read(r, binary.LittleEndian, &rleLen); err != nil {
		return nil, errors.Wrap(err, "serializer: rle length")
	}
	rle := make([]byte, rleLen)
	if _, err := io.ReadFull(r, rle); err != nil {
		return nil, errors.Wrap(err, "serializer: rle body")
	}
	tiles, err := DecodeRLE(rle, int(w)*int(h))
	if err != nil {
		return nil, errors.Wrap(err, "serializer: rle decode")
	}

	b := &board.Board{
		Name: name,
		Map:  tile.NewTileMap(int(w), int(h)),
	}
	i := 0
	for y := 1; y <= int(h); y++ {
		for x := 1; x <= int(w); x++ {
			b.Map.Set(x, y, tiles[i])
			i++
		}
	}

	info, err := decodeBoardInfo(r)
	if err != nil {
		return nil, errors.Wrap(err, "serializer: board info")
	}
	b.Info = info

	var count int16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "serializer: stat count")
	}

	stats := tile.NewStatList()
	decoded := make([]*tile.ScriptData, 0, count)
	for id := 1; id <= int(count); id++ {
		s, err := decodeStat(r, decoded)
		if err != nil {
			return nil, errors.Wrapf(err, "serializer: stat %d", id)
		}
		decoded = append(decoded, s.Data)
		if id == 1 {
			*stats.Get(1) = s
		} else {
			stats.Add(s)
		}
	}
	b.Stats = stats

	return b, nil
}

func encodeBoardInfo(buf *bytes.Buffer, info board.BoardInfo) {
	binary.Write(buf, binary.LittleEndian, uint8(info.MaxShots))
	binary.Write(buf, binary.LittleEndian, boolByte(info.IsDark))
	for _, n := range info.NeighborBoards {
		binary.Write(buf, binary.LittleEndian, int16(n))
	}
	binary.Write(buf, binary.LittleEndian, boolByte(info.ReenterWhenZapped))
	writePString(buf, info.Message)
	binary.Write(buf, binary.LittleEndian, uint8(info.StartX))
	binary.Write(buf, binary.LittleEndian, uint8(info.StartY))
	binary.Write(buf, binary.LittleEndian, int16(info.TimeLimitSec))
}

func decodeBoardInfo(r io.Reader) (board.BoardInfo, error) {
	var info board.BoardInfo
	var maxShots, isDark, reenter uint8
	if err := binary.Read(r, binary.LittleEndian, &maxShots); err != nil {
		return info, err
	}
	if err := binary.Read(r, binary.LittleEndian, &isDark); err != nil {
		return info, err
	}
	for i := range info.NeighborBoards {
		var n int16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return info, err
		}
		info.NeighborBoards[i] = int(n)
	}
	if err := binary.Read(r, binary.LittleEndian, &reenter); err != nil {
		return info, err
	}
	msg, err := readPString(r)
	if err != nil {
		return info, err
	}
	var sx, sy uint8
	if err := binary.Read(r, binary.LittleEndian, &sx); err != nil {
		return info, err
	}
	if err := binary.Read(r, binary.LittleEndian, &sy); err != nil {
		return info, err
	}
	var tl int16
	if err := binary.Read(r, binary.LittleEndian, &tl); err != nil {
		return info, err
	}

	info.MaxShots = int(maxShots)
	info.IsDark = isDark != 0
	info.ReenterWhenZapped = reenter != 0
	info.Message = msg
	info.StartX = int(sx)
	info.StartY = int(sy)
	info.TimeLimitSec = int(tl)
	return info, nil
}

func encodeStat(buf *bytes.Buffer, s *tile.Stat, id int, seen map[*tile.ScriptData]int) {
	binary.Write(buf, binary.LittleEndian, int16(s.X))
	binary.Write(buf, binary.LittleEndian, int16(s.Y))
	binary.Write(buf, binary.LittleEndian, int16(s.StepX))
	binary.Write(buf, binary.LittleEndian, int16(s.StepY))
	binary.Write(buf, binary.LittleEndian, int16(s.Cycle))
	buf.WriteByte(s.P1)
	buf.WriteByte(s.P2)
	buf.WriteByte(s.P3)
	binary.Write(buf, binary.LittleEndian, int16(s.Follower))
	binary.Write(buf, binary.LittleEndian, int16(s.Leader))
	buf.WriteByte(byte(s.Under.Element))
	buf.WriteByte(s.Under.Color)
	binary.Write(buf, binary.LittleEndian, int16(s.DataPos))

	switch {
	case s.Data == nil:
		binary.Write(buf, binary.LittleEndian, int16(0))
	default:
		if firstID, ok := seen[s.Data]; ok {
			binary.Write(buf, binary.LittleEndian, int16(-firstID))
			return
		}
		seen[s.Data] = id
		binary.Write(buf, binary.LittleEndian, int16(len(s.Data.Bytes)))
		buf.Write(s.Data.Bytes)
	}
}

func decodeStat(r io.Reader, decoded []*tile.ScriptData) (tile.Stat, error) {
	var s tile.Stat
	var x, y, stepX, stepY, cycle, follower, leader, dataLen int16
	var p1, p2, p3, underEl, underColor uint8

	for _, f := range []interface{}{&x, &y, &stepX, &stepY, &cycle} {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return s, err
		}
	}
	for _, f := range []*uint8{&p1, &p2, &p3} {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return s, err
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &follower); err != nil {
		return s, err
	}
	if err := binary.Read(r, binary.LittleEndian, &leader); err != nil {
		return s, err
	}
	if err := binary.Read(r, binary.LittleEndian, &underEl); err != nil {
		return s, err
	}
	if err := binary.Read(r, binary.LittleEndian, &underColor); err != nil {
		return s, err
	}
	var dataPos int16
	if err := binary.Read(r, binary.LittleEndian, &dataPos); err != nil {
		return s, err
	}
	if err := binary.Read(r, binary.LittleEndian, &dataLen); err != nil {
		return s, err
	}

	s = tile.Stat{
		X: int(x), Y: int(y),
		StepX: int(stepX), StepY: int(stepY),
		Cycle:    int(cycle),
		P1:       p1,
		P2:       p2,
		P3:       p3,
		Follower: int(follower),
		Leader:   int(leader),
		Under:    tile.Tile{Element: tile.ElementID(underEl), Color: underColor},
		DataPos:  int(dataPos),
	}

	switch {
	case dataLen < 0:
		sharedID := int(-dataLen)
		if sharedID < 1 || sharedID > len(decoded) {
			return s, fmt.Errorf("shared script data reference %d out of range", sharedID)
		}
		s.Data = decoded[sharedID-1]
	case dataLen > 0:
		buf := make([]byte, dataLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return s, err
		}
		s.Data = &tile.ScriptData{Bytes: buf}
	}

	return s, nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
