package aprsdec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeStatus tests the '>' status report forms.
func TestDecodeStatus(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(">Net Control Center"))
		st, ok := p.(*Status)
		require.True(t, ok, "expected a status payload, got %T", p)
		assert.Equal(t, "Net Control Center", st.Text)
		assert.Nil(t, st.Timestamp)
	})

	t.Run("with timestamp", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(">092345zNet Control Center"))
		st, ok := p.(*Status)
		require.True(t, ok)
		require.NotNil(t, st.Timestamp)
		assert.Equal(t, 9, st.Timestamp.Day)
		assert.Equal(t, "Net Control Center", st.Text)
	})

	t.Run("six char grid", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(">IO91SX/- Listening 145.500"))
		st, ok := p.(*Status)
		require.True(t, ok)
		assert.Equal(t, "IO91SX", st.Maidenhead)
		assert.Equal(t, byte('/'), st.SymbolTable)
		assert.Equal(t, byte('-'), st.SymbolCode)
		assert.Equal(t, "Listening 145.500", st.Text)
	})

	t.Run("four char grid no text", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(">IO91/-"))
		st, ok := p.(*Status)
		require.True(t, ok)
		assert.Equal(t, "IO91", st.Maidenhead)
		assert.Equal(t, "", st.Text)
	})

	t.Run("beam heading and power", func(t *testing.T) {
		p := DecodeInfo("APRS", []byte(">CQ worked 12 stations^B7"))
		st, ok := p.(*Status)
		require.True(t, ok)
		require.NotNil(t, st.BeamHeading)
		assert.Equal(t, 110, *st.BeamHeading, "B is 110 degrees")
		require.NotNil(t, st.ERPWatts)
		assert.Equal(t, 490, *st.ERPWatts, "7 squared times ten")
		assert.Equal(t, "CQ worked 12 stations", st.Text)
	})
}

// TestIsMaidenhead tests grid locator validation.
func TestIsMaidenhead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"four char square", "IO91", true},
		{"six char subsquare", "IO91SX", true},
		{"field out of range", "XZ91", false},
		{"letters for digits", "IOXX", false},
		{"lowercase subsquare", "IO91sx", false},
		{"wrong length", "IO9", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMaidenhead([]byte(tt.input)))
		})
	}
}
