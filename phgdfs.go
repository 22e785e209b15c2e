package aprsdec

// PHG (power-height-gain) and DFS (direction finding signal) pack four
// station parameters into single digits.

// phgPowerWatts maps the power digit to transmitter watts.
var phgPowerWatts = [10]int{1, 4, 9, 16, 25, 36, 49, 64, 81, 81}

// phgDirectivity names the antenna directivity digit; 45 degrees per step,
// with 0 omnidirectional.
var phgDirectivity = [9]string{"omni", "NE", "E", "SE", "S", "SW", "W", "NW", "N"}

func phgHeightGainDir(h, g, d byte) (height, gain int, dir string, deg *int) {
	height = 10 << (h - '0')
	gain = int(g - '0')
	if d <= '8' {
		dir = phgDirectivity[d-'0']
		if d > '0' {
			deg = intp(int(d-'0') * 45)
		}
	}
	return height, gain, dir, deg
}

// decodePHGDigits builds a PHG report from the four digits after "PHG".
func decodePHGDigits(digits []byte) (*PHG, bool) {
	if len(digits) < 4 {
		return nil, false
	}
	if _, ok := fixedDigits(digits[0:4]); !ok {
		return nil, false
	}
	phg := &PHG{PowerWatts: phgPowerWatts[digits[0]-'0']}
	phg.HeightFeet, phg.GainDB, phg.Directivity, phg.DirectivityDeg = phgHeightGainDir(digits[1], digits[2], digits[3])
	return phg, true
}

// decodeDFSDigits builds a DFS report from the four digits after "DFS".
// The first digit is received signal strength in 3 dB steps.
func decodeDFSDigits(digits []byte) (*DFS, bool) {
	if len(digits) < 4 {
		return nil, false
	}
	if _, ok := fixedDigits(digits[0:4]); !ok {
		return nil, false
	}
	dfs := &DFS{StrengthDB: int(digits[0]-'0') * 3}
	dfs.HeightFeet, dfs.GainDB, dfs.Directivity, dfs.DirectivityDeg = phgHeightGainDir(digits[1], digits[2], digits[3])
	return dfs, true
}

// decodeHashReport decodes '#' information fields, which some stations use
// for bare PHG or DFS reports.
func decodeHashReport(info []byte) Payload {
	if len(info) >= 8 {
		switch string(info[1:4]) {
		case "PHG":
			if phg, ok := decodePHGDigits(info[4:8]); ok {
				return phg
			}
		case "DFS":
			if dfs, ok := decodeDFSDigits(info[4:8]); ok {
				return dfs
			}
		}
	}
	return &Unknown{Raw: info}
}
