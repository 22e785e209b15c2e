package aprsdec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodePHGDigits tests the power/height/gain/directivity digit tables.
func TestDecodePHGDigits(t *testing.T) {
	phg, ok := decodePHGDigits([]byte("5132"))
	require.True(t, ok)
	assert.Equal(t, 36, phg.PowerWatts, "power")
	assert.Equal(t, 20, phg.HeightFeet, "height")
	assert.Equal(t, 3, phg.GainDB, "gain")
	assert.Equal(t, "E", phg.Directivity)
	require.NotNil(t, phg.DirectivityDeg)
	assert.Equal(t, 90, *phg.DirectivityDeg)

	phg, ok = decodePHGDigits([]byte("0000"))
	require.True(t, ok)
	assert.Equal(t, 1, phg.PowerWatts)
	assert.Equal(t, 10, phg.HeightFeet)
	assert.Equal(t, "omni", phg.Directivity)
	assert.Nil(t, phg.DirectivityDeg, "omni has no heading")

	phg, ok = decodePHGDigits([]byte("9999"))
	require.True(t, ok)
	assert.Equal(t, 81, phg.PowerWatts)
	assert.Equal(t, 5120, phg.HeightFeet)
	assert.Equal(t, "", phg.Directivity, "digit 9 is undefined")

	_, ok = decodePHGDigits([]byte("5A32"))
	assert.False(t, ok, "non digit")
}

// TestDecodeDFSDigits tests the signal strength variant.
func TestDecodeDFSDigits(t *testing.T) {
	dfs, ok := decodeDFSDigits([]byte("2360"))
	require.True(t, ok)
	assert.Equal(t, 6, dfs.StrengthDB, "2 s-points of 3 dB")
	assert.Equal(t, 80, dfs.HeightFeet)
	assert.Equal(t, 6, dfs.GainDB)
	assert.Equal(t, "omni", dfs.Directivity)
}

// TestDecodeHashReport tests standalone #PHG / #DFS information fields.
func TestDecodeHashReport(t *testing.T) {
	p := DecodeInfo("APRS", []byte("#PHG5132"))
	phg, ok := p.(*PHG)
	require.True(t, ok, "expected a PHG payload, got %T", p)
	assert.Equal(t, 36, phg.PowerWatts)

	p = DecodeInfo("APRS", []byte("#DFS2360"))
	dfs, ok := p.(*DFS)
	require.True(t, ok, "expected a DFS payload, got %T", p)
	assert.Equal(t, 6, dfs.StrengthDB)

	// Bad digits lose the PHG routing and fall to the telemetry decoder.
	p = DecodeInfo("APRS", []byte("#PHGabcd"))
	tel, ok := p.(*Telemetry)
	require.True(t, ok, "expected a telemetry payload, got %T", p)
	assert.Equal(t, "#PHGabcd", tel.Raw)
}
