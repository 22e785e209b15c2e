package aprsdec

/* Range of digits for Base 91 representation. */

const b91Min = '!'
const b91Max = '{'

func isDigit91(c byte) bool {
	return c >= b91Min && c <= b91Max
}

// base91Pair decodes a two character base 91 token as used by
// comment-embedded telemetry.  Returns false if either byte is out of range.
func base91Pair(first, second byte) (int, bool) {
	if !isDigit91(first) || !isDigit91(second) {
		return 0, false
	}
	return int(first-b91Min)*91 + int(second-b91Min), true
}

// base91Quad decodes a four character base 91 token, big-endian, as used by
// compressed positions.  Returns false if any byte is out of range.
func base91Quad(p []byte) (int, bool) {
	if len(p) < 4 {
		return 0, false
	}
	var result int
	for i := 0; i < 4; i++ {
		if !isDigit91(p[i]) {
			return 0, false
		}
		result = result*91 + int(p[i]-b91Min)
	}
	return result, true
}
