package aprsdec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeTelemetry tests the T# data report.
func TestDecodeTelemetry(t *testing.T) {
	p := DecodeInfo("APRS", []byte("T#005,199,000,255,073,123,01101001"))
	tel, ok := p.(*Telemetry)
	require.True(t, ok, "expected a telemetry payload, got %T", p)

	assert.Equal(t, 5, tel.Seq)
	require.Len(t, tel.Analog, 5)
	want := []float64{199, 0, 255, 73, 123}
	for i, v := range want {
		require.NotNil(t, tel.Analog[i], "analog %d", i)
		assert.InDelta(t, v, *tel.Analog[i], 0.0001)
	}

	wantBits := []int{0, 1, 1, 0, 1, 0, 0, 1}
	require.Len(t, tel.Digital, 8)
	for i, b := range wantBits {
		require.NotNil(t, tel.Digital[i], "bit %d", i)
		assert.Equal(t, b, *tel.Digital[i])
	}
	assert.Empty(t, tel.Raw)
}

// TestDecodeTelemetryNoT tests old trackers that drop the leading 'T'.
func TestDecodeTelemetryNoT(t *testing.T) {
	p := DecodeInfo("APRS", []byte("#005,199,000,255,073,123,01101001"))
	tel, ok := p.(*Telemetry)
	require.True(t, ok, "expected a telemetry payload, got %T", p)

	assert.Equal(t, 5, tel.Seq)
	require.Len(t, tel.Analog, 5)
	require.NotNil(t, tel.Analog[0])
	assert.InDelta(t, 199, *tel.Analog[0], 0.0001)
	require.Len(t, tel.Digital, 8)
	require.NotNil(t, tel.Digital[1])
	assert.Equal(t, 1, *tel.Digital[1])
}

// TestDecodeTelemetryLegacyBits tests eight comma separated digital values.
func TestDecodeTelemetryLegacyBits(t *testing.T) {
	p := DecodeInfo("APRS", []byte("T#005,199,000,255,073,123,0,1,1,0,1,0,0,1"))
	tel, ok := p.(*Telemetry)
	require.True(t, ok, "expected a telemetry payload, got %T", p)

	wantBits := []int{0, 1, 1, 0, 1, 0, 0, 1}
	require.Len(t, tel.Digital, 8)
	for i, b := range wantBits {
		require.NotNil(t, tel.Digital[i], "bit %d", i)
		assert.Equal(t, b, *tel.Digital[i])
	}
}

// TestDecodeTelemetryFallback tests unparseable reports keeping the raw
// text instead of failing.
func TestDecodeTelemetryFallback(t *testing.T) {
	p := DecodeInfo("APRS", []byte("T#garbled"))
	tel, ok := p.(*Telemetry)
	require.True(t, ok, "expected a telemetry payload, got %T", p)
	assert.Equal(t, "T#garbled", tel.Raw)
	assert.Nil(t, tel.Analog)
}

// TestDecodeTelemetryMissingValues tests empty analog slots.
func TestDecodeTelemetryMissingValues(t *testing.T) {
	p := DecodeInfo("APRS", []byte("T#005,199,,255"))
	tel, ok := p.(*Telemetry)
	require.True(t, ok, "expected a telemetry payload, got %T", p)

	require.Len(t, tel.Analog, 5)
	require.NotNil(t, tel.Analog[0])
	assert.Nil(t, tel.Analog[1], "empty slot")
	require.NotNil(t, tel.Analog[2])
	assert.Nil(t, tel.Analog[3], "absent slot")
}

// TestTelemetryDefinitions tests the PARM/UNIT/EQNS/BITS messages.
func TestTelemetryDefinitions(t *testing.T) {
	t.Run("PARM", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(":N0QBF-11 :PARM.Battery,Btemp,ATemp,Pres,Alt,Camra,Chut,Sun,10m,ATV"))
		params, ok := p.(*TelemetryParams)
		require.True(t, ok, "expected telemetry names, got %T", p)
		assert.Equal(t, "N0QBF-11", params.Addressee)
		require.Len(t, params.Names, 10)
		assert.Equal(t, "Battery", params.Names[0])
		assert.Equal(t, "ATV", params.Names[9])
	})

	t.Run("UNIT", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(":N0QBF-11 :UNIT.v/100,deg.F,deg.F,Mbar,Kft"))
		units, ok := p.(*TelemetryUnits)
		require.True(t, ok, "expected telemetry units, got %T", p)
		assert.Equal(t, "v/100", units.Units[0])
	})

	t.Run("EQNS", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(":N0QBF-11 :EQNS.0,5.2,0,0,.53,-32,3,4.39,49,-32,3,18,1,2,3"))
		eqns, ok := p.(*TelemetryEqns)
		require.True(t, ok, "expected telemetry equations, got %T", p)
		require.Len(t, eqns.Coefficients, 5)
		assert.InDelta(t, 5.2, eqns.Coefficients[0][1], 0.0001)
		assert.InDelta(t, -32, eqns.Coefficients[1][2], 0.0001)
		assert.InDelta(t, 3, eqns.Coefficients[4][2], 0.0001)
	})

	t.Run("BITS", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(":N0QBF-11 :BITS.10110000,N0QBF's Big Balloon"))
		bits, ok := p.(*TelemetryBits)
		require.True(t, ok, "expected telemetry bits, got %T", p)
		assert.Equal(t, []bool{true, false, true, true, false, false, false, false}, bits.Sense)
		assert.Equal(t, "N0QBF's Big Balloon", bits.Project)
	})
}
