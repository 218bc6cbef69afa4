// Package serializer turns boards and worlds into the on-disk byte format
// and back. Framing follows the same length-prefixed, little-endian style
// as internal/ipc/protocol.go: fixed-size headers read with encoding/binary,
// variable-length data counted explicitly rather than delimited.
package serializer

import (
	"bytes"
	"fmt"

	"github.com/openzzt/zztcore/internal/tile"
)

// maxRun is the largest count a single RLE chunk can carry. The original
// format uses a single byte for the count, so a run longer than this must
// split into multiple chunks.
const maxRun = 255

// EncodeRLE run-length encodes a sequence of tiles as (count, element,
// color) triples. A run never has count 0, and a run never spans a
// maxRun boundary without splitting (spec §6 "RLE tile codec").
func EncodeRLE(tiles []tile.Tile) []byte {
	var buf bytes.Buffer
	i := 0
	for i < len(tiles) {
		run := 1
		for i+run < len(tiles) && run < maxRun && tiles[i+run] == tiles[i] {
			run++
		}
		buf.WriteByte(byte(run))
		buf.WriteByte(byte(tiles[i].Element))
		buf.WriteByte(tiles[i].Color)
		i += run
	}
	return buf.Bytes()
}

// DecodeRLE expands an RLE-encoded byte stream back into `want` tiles. It
// returns an error if the stream is truncated or decodes to the wrong
// count, so a corrupt board file fails loudly instead of producing a
// short or overlong tile grid.
func DecodeRLE(data []byte, want int) ([]tile.Tile, error) {
	tiles := make([]tile.Tile, 0, want)
	i := 0
	for i < len(data) {
		if i+3 > len(data) {
			return nil, fmt.Errorf("serializer: truncated RLE chunk at byte %d", i)
		}
		count := int(data[i])
		if count == 0 {
			return nil, fmt.Errorf("serializer: zero-length RLE run at byte %d", i)
		}
		t := tile.Tile{Element: tile.ElementID(data[i+1]), Color: data[i+2]}
		for n := 0; n < count; n++ {
			tiles = append(tiles, t)
		}
		i += 3
	}
	if len(tiles) != want {
		return nil, fmt.Errorf("serializer: RLE decoded %d tiles, want %d", len(tiles), want)
	}
	return tiles, nil
}
