package aprsdec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeObject tests the ';' object report.
func TestDecodeObject(t *testing.T) {
	p := DecodeInfo("APRS", []byte(";LEADER   *092345z4903.50N/07201.75W>088/036"))
	obj, ok := p.(*Object)
	require.True(t, ok, "expected an object payload, got %T", p)

	assert.Equal(t, "LEADER", obj.Name)
	assert.Equal(t, "LEADER   ", obj.RawName)
	assert.True(t, obj.Alive)

	require.NotNil(t, obj.Timestamp)
	assert.Equal(t, 9, obj.Timestamp.Day)

	require.NotNil(t, obj.Position)
	require.NotNil(t, obj.Position.Latitude)
	assert.InDelta(t, 49.0583, obj.Position.Latitude.Degrees, 0.0001)
	require.NotNil(t, obj.Position.Course)
	assert.InDelta(t, 88, *obj.Position.Course, 0.0001)
}

// TestDecodeKilledObject tests the '_' kill flag.
func TestDecodeKilledObject(t *testing.T) {
	p := DecodeInfo("APRS", []byte(";LEADER   _092345z4903.50N/07201.75W>"))
	obj, ok := p.(*Object)
	require.True(t, ok, "expected an object payload, got %T", p)
	assert.False(t, obj.Alive)

	p = DecodeInfo("APRS", []byte(";LEADER   ?092345z4903.50N/07201.75W>"))
	assert.IsType(t, &Malformed{}, p, "flag byte must be * or _")
}

// TestDecodeWeatherObject tests an object whose symbol carries weather.
func TestDecodeWeatherObject(t *testing.T) {
	p := DecodeInfo("APRS", []byte(";WXSTATION*092345z4903.50N/07201.75W_180/005t072"))
	obj, ok := p.(*Object)
	require.True(t, ok, "expected an object payload, got %T", p)

	require.NotNil(t, obj.Weather)
	require.NotNil(t, obj.Weather.WindDirection)
	assert.Equal(t, 180, *obj.Weather.WindDirection)
	require.NotNil(t, obj.Weather.Temperature)
	assert.InDelta(t, 72, *obj.Weather.Temperature, 0.0001)
}

// TestDecodeItem tests the ')' item report.
func TestDecodeItem(t *testing.T) {
	p := DecodeInfo("APRS", []byte(")AID#2!4903.50N/07201.75W!first aid"))
	item, ok := p.(*Item)
	require.True(t, ok, "expected an item payload, got %T", p)

	assert.Equal(t, "AID#2", item.Name)
	assert.True(t, item.Alive)
	require.NotNil(t, item.Position)
	require.NotNil(t, item.Position.Latitude)
	assert.InDelta(t, 49.0583, item.Position.Latitude.Degrees, 0.0001)
	assert.Equal(t, "first aid", item.Position.Comment)
}

// TestDecodeKilledItem tests the '_' item terminator.
func TestDecodeKilledItem(t *testing.T) {
	p := DecodeInfo("APRS", []byte(")AID#2_4903.50N/07201.75W!"))
	item, ok := p.(*Item)
	require.True(t, ok, "expected an item payload, got %T", p)
	assert.False(t, item.Alive)
}

// TestDecodeItemBadName tests name length limits.
func TestDecodeItemBadName(t *testing.T) {
	p := DecodeInfo("APRS", []byte(")AB!4903.50N/07201.75W!"))
	assert.IsType(t, &Malformed{}, p, "name shorter than three bytes")

	p = DecodeInfo("APRS", []byte(")NAMETOOLONGHERE!4903.50N/07201.75W!"))
	assert.IsType(t, &Malformed{}, p, "no terminator within nine bytes")
}
