package aprsdec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeviceID tests to-call prefix lookup.
func TestDeviceID(t *testing.T) {
	tests := []struct {
		name string
		dest string
		want string
		ok   bool
	}{
		{"exact wildcard form", "APDW17", "WB2OSZ Dire Wolf", true},
		{"longest prefix wins", "APK004", "Kenwood TH-D74", true},
		{"shorter prefix fallback", "APK099", "Kenwood TH-D7", true},
		{"experimental", "APZ123", "Other Experimental", true},
		{"no allocation", "N0CALL", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeviceID(tt.dest)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestMicETocall tests legacy Mic-E destination translation.
func TestMicETocall(t *testing.T) {
	tests := []struct {
		name string
		dest string
		want string
	}{
		{"kenwood exact", "T5TYR4", "APK004"},
		{"kenwood exact low", "T5TYR1", "APK001"},
		{"kantronics prefix", "T2T000", "APN000"},
		{"no translation", "ZZZ123", "ZZZ123"},
		{"too short for prefix form", "T2T00", "T2T00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MicETocall(tt.dest))
		})
	}
}
