package serializer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openzzt/zztcore/internal/tile"
)

func TestRLERoundTrip(t *testing.T) {
	tiles := []tile.Tile{
		{Element: tile.Empty, Color: 0x00},
		{Element: tile.Empty, Color: 0x00},
		{Element: tile.Empty, Color: 0x00},
		{Element: tile.Normal, Color: 0x1E},
		{Element: tile.Boulder, Color: 0x0E},
		{Element: tile.Boulder, Color: 0x0E},
	}
	encoded := EncodeRLE(tiles)
	decoded, err := DecodeRLE(encoded, len(tiles))
	require.NoError(t, err)
	require.Equal(t, tiles, decoded)
}

func TestRLESplitsLongRuns(t *testing.T) {
	tiles := make([]tile.Tile, 300)
	for i := range tiles {
		tiles[i] = tile.Tile{Element: tile.Empty, Color: 0}
	}
	encoded := EncodeRLE(tiles)
	if len(encoded) != 6 {
		t.Fatalf("expected two 255-byte-boundary chunks (6 bytes), got %d", len(encoded))
	}
	decoded, err := DecodeRLE(encoded, len(tiles))
	require.NoError(t, err)
	require.Equal(t, tiles, decoded)
}

func TestDecodeRLERejectsWrongCount(t *testing.T) {
	tiles := []tile.Tile{{Element: tile.Empty}, {Element: tile.Empty}}
	encoded := EncodeRLE(tiles)
	_, err := DecodeRLE(encoded, 5)
	require.Error(t, err)
}
