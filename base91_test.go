package aprsdec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestBase91Pair tests two byte base 91 decoding.
func TestBase91Pair(t *testing.T) {
	tests := []struct {
		name   string
		first  byte
		second byte
		want   int
		ok     bool
	}{
		{"minimum digits", '!', '!', 0, true},
		{"maximum digits", '{', '{', 90*91 + 90, true},
		{"one of each", '"', '!', 91, true},
		{"out of range low", ' ', '!', 0, false},
		{"out of range high", '!', '|', 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := base91Pair(tt.first, tt.second)
			assert.Equal(t, tt.ok, ok, "validity")
			assert.Equal(t, tt.want, got, "value")
		})
	}
}

// TestBase91Quad tests four byte base 91 decoding.
func TestBase91Quad(t *testing.T) {
	got, ok := base91Quad([]byte("!!!!"))
	assert.True(t, ok)
	assert.Equal(t, 0, got, "all minimum digits")

	got, ok = base91Quad([]byte("{{{{"))
	assert.True(t, ok)
	assert.Equal(t, 90*91*91*91+90*91*91+90*91+90, got, "all maximum digits")

	_, ok = base91Quad([]byte("!!|!"))
	assert.False(t, ok, "byte past the digit range")
}

// TestBase91QuadFormula tests the quad decode against the positional
// formula for arbitrary digit strings.
func TestBase91QuadFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := make([]byte, 4)
		for i := range p {
			p[i] = byte(rapid.IntRange(33, 123).Draw(t, "digit"))
		}
		got, ok := base91Quad(p)
		assert.True(t, ok)
		want := (int(p[0])-33)*91*91*91 + (int(p[1])-33)*91*91 + (int(p[2])-33)*91 + int(p[3]) - 33
		assert.Equal(t, want, got)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 91*91*91*91)
	})
}
