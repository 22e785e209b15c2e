package aprsdec

// Shared comment scanners.  A handful of optional items can be buried
// anywhere in the free text after a position: base 91 telemetry between
// | markers, the !DAO! precision extension, and /A= altitude.  Each scanner
// walks the comment forward one byte at a time, so worst case cost stays
// linear, and consumes its matched span from the comment.

func cutBytes(b []byte, from int, to int) []byte {
	result := make([]byte, len(b)-(to-from))
	copy(result, b[:from])
	copy(result[from:], b[to:])
	return result
}

const knotsToMPH = 1.15077945

func float64p(v float64) *float64 { return &v }
func intp(v int) *int             { return &v }

// scanDAO finds the !DAO! extension: three bytes bracketed by '!', either
// an upper case datum with two decimal digits, a lower case datum with two
// base 91 digits, or the APRStt private 'T' form.  Digits may be blanked
// to spaces.  Returns the datum byte upper-cased; the coordinates are not
// adjusted, the datum is carried as metadata only.
func scanDAO(comment []byte) (datum byte, rest []byte, found bool) {
	for i := 0; i+4 < len(comment); i++ {
		if comment[i] != '!' || comment[i+4] != '!' {
			continue
		}
		d, a, o := comment[i+1], comment[i+2], comment[i+3]
		switch {
		case d >= 'A' && d <= 'Z' && daoDigit(a) && daoDigit(o):
		case d >= 'a' && d <= 'z' && daoBase91(a) && daoBase91(o):
			d = d - 'a' + 'A'
		case d == 'T' && (isASCIIDigit(a) || a == ' ' || a == 'B') && (isASCIIDigit(o) || o == ' '):
		default:
			continue
		}
		return d, cutBytes(comment, i, i+5), true
	}
	return 0, comment, false
}

func daoDigit(c byte) bool  { return isASCIIDigit(c) || c == ' ' }
func daoBase91(c byte) bool { return isDigit91(c) || c == ' ' }

// scanAltitude finds /A=123456 or /A=-12345 anywhere in the comment.
// The value is feet.  A leading space instead of '/' is also accepted.
func scanAltitude(comment []byte) (feet float64, rest []byte, found bool) {
	for i := 0; i+8 < len(comment); i++ {
		if (comment[i] != '/' && comment[i] != ' ') || comment[i+1] != 'A' || comment[i+2] != '=' {
			continue
		}
		v := comment[i+3 : i+9]
		if v[0] != '-' && !isASCIIDigit(v[0]) {
			continue
		}
		ok := true
		for _, c := range v[1:] {
			if !isASCIIDigit(c) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		n := 0
		neg := v[0] == '-'
		digits := v
		if neg {
			digits = v[1:]
		}
		for _, c := range digits {
			n = n*10 + int(c-'0')
		}
		if neg {
			n = -n
		}
		return float64(n), cutBytes(comment, i, i+9), true
	}
	return 0, comment, false
}

// scanCommentTelemetry finds base 91 compressed telemetry: 2 to 9 pairs of
// base 91 digits surrounded by '|'.  The first pair is the sequence number.
// A pair whose bytes fall outside the digit range yields a nil slot without
// aborting the rest.
func scanCommentTelemetry(comment []byte) (*CommentTelemetry, []byte) {
	for i := 0; i < len(comment); i++ {
		if comment[i] != '|' {
			continue
		}
		j := i + 1
		for j < len(comment) && isDigit91(comment[j]) {
			j++
		}
		n := j - i - 1
		if j >= len(comment) || comment[j] != '|' || n < 4 || n > 18 || n%2 != 0 {
			continue
		}
		tel := &CommentTelemetry{}
		for k := i + 1; k < j; k += 2 {
			v, ok := base91Pair(comment[k], comment[k+1])
			var slot *int
			if ok {
				slot = intp(v)
			}
			if k == i+1 {
				tel.Seq = slot
			} else {
				tel.Values = append(tel.Values, slot)
			}
		}
		return tel, cutBytes(comment, i, j+1)
	}
	return nil, comment
}

// scanComment pulls all three optional items out of a comment tail and
// returns what remains, trimmed of trailing CR/LF and NULs.
func scanComment(ext *Extension, tel **CommentTelemetry, comment []byte) string {
	if t, rest := scanCommentTelemetry(comment); t != nil {
		*tel = t
		comment = rest
	}
	if d, rest, ok := scanDAO(comment); ok {
		ext.DAODatum = d
		comment = rest
	}
	if ft, rest, ok := scanAltitude(comment); ok {
		ext.Altitude = float64p(ft)
		comment = rest
	}
	return trimComment(comment)
}

func trimComment(comment []byte) string {
	end := len(comment)
	for end > 0 && (comment[end-1] == '\r' || comment[end-1] == '\n' || comment[end-1] == 0) {
		end--
	}
	return string(comment[:end])
}

// decodeDataExtension handles the fixed 7 byte field that may follow an
// uncompressed position: CSE/SPD, PHG, RNG, or DFS.  It fills pos and
// returns the remaining comment bytes.
func decodeDataExtension(pos *Position, ext []byte) []byte {
	if len(ext) < 7 {
		return ext
	}

	// Tyy/Cxx area object descriptor.  Recognized but not decoded.
	if ext[0] == 'T' && ext[3] == '/' && ext[4] == 'C' {
		return ext[7:]
	}

	// CSE/SPD.  Course 001-360, speed in knots.
	if ext[3] == '/' {
		if c, ok := fixedDigits(ext[0:3]); ok {
			pos.Course = float64p(float64(c))
		}
		if s, ok := fixedDigits(ext[4:7]); ok {
			pos.SpeedMPH = float64p(float64(s) * knotsToMPH)
		}
		// Bearing and number/range/quality may follow a DF report.
		if len(ext) >= 15 && ext[7] == '/' && ext[11] == '/' {
			return ext[15:]
		}
		return ext[7:]
	}

	if hasPrefix(ext, "PHG") {
		if phg, ok := decodePHGDigits(ext[3:7]); ok {
			pos.PHG = phg
			return ext[7:]
		}
	}

	if hasPrefix(ext, "RNG") {
		if r, ok := fixedDigits(ext[3:7]); ok {
			pos.RangeMiles = float64p(float64(r))
			return ext[7:]
		}
	}

	if hasPrefix(ext, "DFS") {
		if dfs, ok := decodeDFSDigits(ext[3:7]); ok {
			pos.DFS = dfs
			return ext[7:]
		}
	}

	return ext
}

func fixedDigits(p []byte) (int, bool) {
	n := 0
	for _, c := range p {
		if !isASCIIDigit(c) {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func hasPrefix(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	return string(b[:len(s)]) == s
}
