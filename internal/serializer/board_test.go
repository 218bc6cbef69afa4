package serializer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/tile"
)

func TestBoardRoundTrip(t *testing.T) {
	b := board.New("Caverns")
	b.Info.IsDark = true
	b.Info.MaxShots = 3
	b.Info.Message = "You feel a cold breeze."
	b.Map.Set(10, 10, tile.Tile{Element: tile.Boulder, Color: 0x0E})
	b.Map.Set(11, 10, tile.Tile{Element: tile.Gem, Color: 0x0B})

	data := b.Stats.Get(1)
	data.Data = tile.NewScriptData([]byte("@Player\n:TOUCH\n#END\n"))

	sharedData := tile.NewScriptData([]byte(":TOUCH\n#END\n"))
	s1 := tile.NewStat(5, 5)
	s1.Data = sharedData
	s2 := tile.NewStat(6, 6)
	s2.Data = sharedData
	b.Stats.Add(s1)
	b.Stats.Add(s2)

	encoded := EncodeBoard(b)
	decoded, err := DecodeBoard(encoded)
	require.NoError(t, err)

	require.Equal(t, b.Name, decoded.Name)
	require.Equal(t, b.Info, decoded.Info)
	require.Equal(t, b.Map.Get(10, 10), decoded.Map.Get(10, 10))
	require.Equal(t, b.Map.Get(11, 10), decoded.Map.Get(11, 10))
	require.Equal(t, b.Stats.Count(), decoded.Stats.Count())

	ds1 := decoded.Stats.Get(2)
	ds2 := decoded.Stats.Get(3)
	require.Equal(t, string(sharedData.Bytes), string(ds1.Data.Bytes))
	if ds1.Data != ds2.Data {
		t.Fatalf("shared script data did not round-trip as a single shared pointer")
	}
}
