package world

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorldFileRoundTrip(t *testing.T) {
	w := New("Town")
	w.Info.Ammo = 12
	w.Info.Gems = 3
	w.Info.Health = 80
	w.Info.Torches = 2
	w.Info.TorchTicks = 50
	w.Info.EnergizerTicks = 0
	w.Info.Score = 1234
	w.Info.Keys[2] = true
	w.Info.Keys[6] = true
	w.Info.Flags[0] = "MET_WIZARD"
	w.Info.Flags[1] = "OPENED_VAULT"
	w.Info.BoardTimeSec = 10
	w.Info.BoardTimeHsec = 5
	w.Info.IsSave = true

	data := w.EncodeFile()

	decoded, err := DecodeFile(data)
	require.NoError(t, err)

	require.Equal(t, w.Info.Ammo, decoded.Info.Ammo)
	require.Equal(t, w.Info.Gems, decoded.Info.Gems)
	require.Equal(t, w.Info.Health, decoded.Info.Health)
	require.Equal(t, w.Info.Torches, decoded.Info.Torches)
	require.Equal(t, w.Info.TorchTicks, decoded.Info.TorchTicks)
	require.Equal(t, w.Info.Score, decoded.Info.Score)
	require.Equal(t, w.Info.Keys, decoded.Info.Keys)
	require.Equal(t, w.Info.Flags, decoded.Info.Flags)
	require.Equal(t, w.Info.BoardTimeSec, decoded.Info.BoardTimeSec)
	require.Equal(t, w.Info.BoardTimeHsec, decoded.Info.BoardTimeHsec)
	require.Equal(t, w.Info.IsSave, decoded.Info.IsSave)
	require.Equal(t, w.Info.Name, decoded.Info.Name)
}

// TestWorldFileHeaderOffsets pins the header to the exact byte-offset
// table a .ZZT/.SAV reader expects, not just a value that happens to
// round-trip through this package's own encoder/decoder.
func TestWorldFileHeaderOffsets(t *testing.T) {
	w := New("X")
	w.Info.Ammo = 7
	w.Info.Gems = 9
	w.Info.Keys[3] = true
	w.Info.Health = 100
	w.Info.CurrentBoard = 0
	w.Info.Torches = 4
	w.Info.TorchTicks = 11
	w.Info.EnergizerTicks = 22
	w.Info.Score = 555
	w.Info.Name = "X"
	w.Info.BoardTimeSec = 3
	w.Info.BoardTimeHsec = 8
	w.Info.IsSave = true

	data := w.EncodeFile()
	header := data[:worldHeaderSize]

	require.Equal(t, int16(-1), int16(binary.LittleEndian.Uint16(header[0:2])), "offset 0: version")
	require.Equal(t, int16(1), int16(binary.LittleEndian.Uint16(header[2:4])), "offset 2: board_count")
	require.Equal(t, int16(7), int16(binary.LittleEndian.Uint16(header[4:6])), "offset 4: ammo")
	require.Equal(t, int16(9), int16(binary.LittleEndian.Uint16(header[6:8])), "offset 6: gems")
	require.Equal(t, uint8(1), header[8+3], "offset 8: keys[3]")
	require.Equal(t, int16(100), int16(binary.LittleEndian.Uint16(header[15:17])), "offset 15: health")
	require.Equal(t, int16(4), int16(binary.LittleEndian.Uint16(header[19:21])), "offset 19: torches")
	require.Equal(t, int16(11), int16(binary.LittleEndian.Uint16(header[21:23])), "offset 21: torch_ticks")
	require.Equal(t, int16(22), int16(binary.LittleEndian.Uint16(header[23:25])), "offset 23: energizer_ticks")
	require.Equal(t, int16(555), int16(binary.LittleEndian.Uint16(header[27:29])), "offset 27: score")
	require.Equal(t, uint8(1), header[29], "offset 29: name length byte")
	require.Equal(t, byte('X'), header[30], "offset 30: name body")
	require.Equal(t, int16(3), int16(binary.LittleEndian.Uint16(header[386:388])), "offset 386: board_time_sec")
	require.Equal(t, int16(8), int16(binary.LittleEndian.Uint16(header[388:390])), "offset 388: board_time_hsec")
	require.Equal(t, uint8(1), header[390], "offset 390: is_save")
	require.Len(t, header, 512)

	// the first board block follows immediately, prefixed by a u16 length.
	blockLen := binary.LittleEndian.Uint16(data[512:514])
	require.Equal(t, int(blockLen), len(data)-514)
}

func TestPStringPaddedTruncatesAndPads(t *testing.T) {
	var buf []byte
	w := sliceWriter{&buf}
	writePStringPadded(w, "this name is far too long for the field", namePStringWidth)
	require.Len(t, buf, namePStringWidth)
	require.Equal(t, byte(namePStringWidth-1), buf[0])

	got, err := readPStringPadded(sliceReader{buf}, namePStringWidth)
	require.NoError(t, err)
	require.Len(t, got, namePStringWidth-1)
}

type sliceWriter struct{ buf *[]byte }

func (s sliceWriter) Write(p []byte) (int, error) {
	*s.buf = append(*s.buf, p...)
	return len(p), nil
}

type sliceReader struct{ buf []byte }

func (s sliceReader) Read(p []byte) (int, error) {
	n := copy(p, s.buf)
	return n, nil
}
