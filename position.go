package aprsdec

// Uncompressed position: a fixed 8 byte latitude (ddmm.hhN), symbol table
// id, fixed 9 byte longitude (dddmm.hhW), symbol code, then free text.
// The fields are fixed-column, so they are sliced apart rather than parsed
// as general floating point.  Trailing digits may be blanked with spaces
// for position ambiguity.

// parseLatitude8 converts the 8 byte latitude field to degrees, negative
// for south.  It also returns how many digits were blanked with spaces.
func parseLatitude8(p []byte) (deg float64, spaces int, ok bool) {
	if len(p) < 8 || p[4] != '.' {
		return 0, 0, false
	}
	d, ok := twoDigits(p[0:])
	if !ok {
		return 0, 0, false
	}
	min, spaces, ok := ambiguousMinutes(p[2], p[3], p[5], p[6])
	if !ok {
		return 0, 0, false
	}
	deg = float64(d) + min/60.0
	switch p[7] {
	case 'N', 'n':
		return deg, spaces, true
	case 'S', 's':
		return -deg, spaces, true
	}
	return 0, 0, false
}

// parseLongitude9 converts the 9 byte longitude field to degrees, negative
// for west.
func parseLongitude9(p []byte) (deg float64, spaces int, ok bool) {
	if len(p) < 9 || p[5] != '.' {
		return 0, 0, false
	}
	if p[0] != '0' && p[0] != '1' {
		return 0, 0, false
	}
	if !isASCIIDigit(p[1]) || !isASCIIDigit(p[2]) {
		return 0, 0, false
	}
	d := int(p[0]-'0')*100 + int(p[1]-'0')*10 + int(p[2]-'0')
	min, spaces, ok := ambiguousMinutes(p[3], p[4], p[6], p[7])
	if !ok {
		return 0, 0, false
	}
	deg = float64(d) + min/60.0
	switch p[8] {
	case 'E', 'e':
		return deg, spaces, true
	case 'W', 'w':
		return -deg, spaces, true
	}
	return 0, 0, false
}

// ambiguousMinutes parses the mm.hh digits of a position field, treating
// blanked digits as zero and counting them.
func ambiguousMinutes(m1, m2, h1, h2 byte) (min float64, spaces int, ok bool) {
	digit := func(c byte, limit byte) (float64, bool) {
		if c == ' ' {
			spaces++
			return 0, true
		}
		if c >= '0' && c <= limit {
			return float64(c - '0'), true
		}
		return 0, false
	}
	tens, ok1 := digit(m1, '5')
	ones, ok2 := digit(m2, '9')
	tenths, ok3 := digit(h1, '9')
	hundredths, ok4 := digit(h2, '9')
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, 0, false
	}
	return tens*10 + ones + tenths*0.1 + hundredths*0.01, spaces, true
}

// decodeUncompressed decodes the 19 byte lat/symbol/lon/symbol block and
// the trailing data extension / comment.  The ambiguity space counts of the
// two coordinates must match; a mismatch falls back to 0 rather than
// failing the packet.
func decodeUncompressed(pos *Position, body []byte) Payload {
	if len(body) < 19 {
		return &Malformed{Reason: "position field too short", Raw: body}
	}
	lat, latSpaces, latOK := parseLatitude8(body[0:8])
	lon, lonSpaces, lonOK := parseLongitude9(body[9:18])
	if !latOK || !lonOK {
		return &Malformed{Reason: "malformed position coordinates", Raw: body}
	}

	ambiguity := 0
	if latSpaces == lonSpaces && latSpaces <= 4 {
		ambiguity = latSpaces
	}

	pos.Latitude = &Coordinate{Degrees: lat, Ambiguity: ambiguity}
	pos.Longitude = &Coordinate{Degrees: lon, Ambiguity: ambiguity}
	pos.SymbolTable = body[8]
	pos.SymbolCode = body[18]

	rest := body[19:]
	if pos.SymbolCode == '_' || wxLikely(rest) {
		// Weather station, by symbol or by the shape of the comment.
		// The 7 byte wind extension and everything after it belong to
		// the weather decoder.
		return decodeWeatherBody(pos, rest)
	}
	rest = decodeDataExtension(pos, rest)
	pos.Comment = scanComment(&pos.Extension, &pos.Telemetry, rest)
	return pos
}

// decodeCompressed decodes the 13 byte compressed block: symbol table,
// 4 byte base 91 latitude, 4 byte base 91 longitude, symbol code, 2 byte
// course/speed, compression type.  Latitude and longitude fail
// independently; an undecodable token nils that coordinate only.
func decodeCompressed(pos *Position, body []byte) Payload {
	if len(body) < 13 {
		return &Malformed{Reason: "compressed position field too short", Raw: body}
	}
	pos.Compressed = true

	table := body[0]
	switch {
	case table == '/' || table == '\\' || (table >= 'A' && table <= 'Z'):
		pos.SymbolTable = table
	case table >= 'a' && table <= 'j':
		// Lower case a-j stand in for overlay digits 0-9; a digit here
		// would look like an uncompressed position.
		pos.SymbolTable = table - 'a' + '0'
	default:
		pos.SymbolTable = '/'
	}

	if v, ok := base91Quad(body[1:5]); ok {
		pos.Latitude = &Coordinate{Degrees: clamp(90-float64(v)/380926.0, -90, 90)}
	}
	if v, ok := base91Quad(body[5:9]); ok {
		pos.Longitude = &Coordinate{Degrees: clamp(-180+float64(v)/190463.0, -180, 180)}
	}
	pos.SymbolCode = body[9]

	c, s, t := body[10], body[11], body[12]
	pos.Compression = decodeCompressionType(t)

	switch {
	case c == ' ':
		// No course/speed/range.
	case c == '&' && s == '!':
		// DAO marker, not course/speed.
	case c == 'Z':
		pos.RangeMiles = float64p(2 * pow108(int(s)-33))
	case c >= '!' && c <= '~':
		pos.Course = float64p(float64(c-33) * 4)
		mph := (pow108(int(s)-33) - 1) * knotsToMPH
		if mph < 0.01 {
			mph = 0.01
		}
		pos.SpeedMPH = float64p(mph)
	}

	rest := body[13:]
	if pos.SymbolCode == '_' || wxLikely(rest) {
		return decodeWeatherBody(pos, rest)
	}
	pos.Comment = scanComment(&pos.Extension, &pos.Telemetry, rest)
	return pos
}

func decodeCompressionType(t byte) *CompressionType {
	v := int(t) - 33
	if v < 0 {
		v = 0
	}
	ct := &CompressionType{
		GPSFix:    GPSFixType(v & 0x03),
		OldData:   v&0x20 != 0,
		Messaging: v&0x40 != 0,
	}
	if res := (v >> 2) & 0x07; res <= 4 {
		ct.Resolution = res
	}
	return ct
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pow108(n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= 1.08
	}
	return result
}

// decodePositionReport handles the '!' '=' '/' '@' data type indicators.
// The latter two carry a 7 byte timestamp before the position block.
func decodePositionReport(info []byte) Payload {
	pos := &Position{Messaging: info[0] == '=' || info[0] == '@'}
	body := info[1:]

	if info[0] == '/' || info[0] == '@' {
		if len(body) < 7 {
			return &Malformed{Reason: "position with time too short", Raw: info}
		}
		ts := parseTimestamp7(body[0:7])
		if ts == nil {
			return &Malformed{Reason: "malformed timestamp", Raw: info}
		}
		pos.Timestamp = ts
		body = body[7:]
	}

	if len(body) == 0 {
		return &Malformed{Reason: "empty position body", Raw: info}
	}
	if isASCIIDigit(body[0]) {
		return decodeUncompressed(pos, body)
	}
	return decodeCompressed(pos, body)
}
