package aprsdec

// Mic-E packs the latitude, message type and N/S/E/W flags into the six
// byte AX.25 destination field, and the longitude, speed and course into
// the first bytes of the information field.  See chapter 10 of the APRS
// 1.01 protocol reference.

// micEStdMessages indexes the standard message text by the 3 bit message
// code: all bits set (7) is Off Duty, all clear (0) is Emergency.
var micEStdMessages = [8]string{
	"Emergency",
	"Priority",
	"Special",
	"Committed",
	"Returning",
	"In Service",
	"En Route",
	"Off Duty",
}

// micECustomMessages indexes the custom message text the same way.
var micECustomMessages = [8]string{
	"Emergency",
	"Custom-6",
	"Custom-5",
	"Custom-4",
	"Custom-3",
	"Custom-2",
	"Custom-1",
	"Custom-0",
}

// micEDigit decodes one destination byte into a latitude digit, its
// message bit and whether the bit is standard or custom.
func micEDigit(c byte) (MicEDigit, bool) {
	switch {
	case c >= '0' && c <= '9':
		return MicEDigit{Value: int(c - '0'), MessageBit: 0, Kind: MicEDigitPlain}, true
	case c >= 'A' && c <= 'J':
		return MicEDigit{Value: int(c - 'A'), MessageBit: 1, Kind: MicEDigitCustom}, true
	case c == 'K':
		return MicEDigit{Value: 0, MessageBit: 1, Kind: MicEDigitSpace}, true
	case c == 'L':
		return MicEDigit{Value: 0, MessageBit: 0, Kind: MicEDigitSpace}, true
	case c >= 'P' && c <= 'Y':
		return MicEDigit{Value: int(c - 'P'), MessageBit: 1, Kind: MicEDigitStandard}, true
	case c == 'Z':
		return MicEDigit{Value: 0, MessageBit: 1, Kind: MicEDigitSpace}, true
	}
	return MicEDigit{}, false
}

// decodeMicE decodes a Mic-E information field ('`' or '\'' indicator)
// against the 6 byte destination callsign.
func decodeMicE(dest string, info []byte) Payload {
	if len(dest) < 6 {
		return &Malformed{Reason: "Mic-E destination too short", Raw: info}
	}
	if len(info) < 9 {
		return &Malformed{Reason: "Mic-E information field too short", Raw: info}
	}

	m := &MicE{}
	for i := 0; i < 6; i++ {
		d, ok := micEDigit(dest[i])
		if !ok {
			return &Malformed{Reason: "invalid Mic-E destination digit", Raw: info}
		}
		m.Digits[i] = d
	}

	// Trailing blanked digits give the position ambiguity; a blank in the
	// middle of the field decodes as zero without ambiguity.
	ambiguity := 0
	for i := 5; i >= 0; i-- {
		if m.Digits[i].Kind != MicEDigitSpace {
			break
		}
		ambiguity++
	}
	if ambiguity > 4 {
		ambiguity = 4
	}

	// The 3 bit message code comes from the first three destination
	// bytes.  Whether the message is standard or custom follows the
	// first byte that actually sets a bit.
	code := 0
	kind := MicEMessageNone
	for i := 0; i < 3; i++ {
		code = code<<1 | m.Digits[i].MessageBit
		if kind == MicEMessageNone && m.Digits[i].MessageBit == 1 {
			switch dest[i] {
			case 'K':
				kind = MicEMessageCustom
			case 'Z':
				kind = MicEMessageStandard
			default:
				if m.Digits[i].Kind == MicEDigitCustom {
					kind = MicEMessageCustom
				} else {
					kind = MicEMessageStandard
				}
			}
		}
	}
	m.MessageCode = code
	m.MessageKind = kind
	if kind == MicEMessageCustom {
		m.MessageType = micECustomMessages[code]
	} else {
		m.MessageType = micEStdMessages[code]
	}

	lat := float64(m.Digits[0].Value*10+m.Digits[1].Value) +
		(float64(m.Digits[2].Value*10+m.Digits[3].Value)+
			float64(m.Digits[4].Value*10+m.Digits[5].Value)/100.0)/60.0
	// Byte 4 doubles as the N/S flag: digit or space means south.
	north := dest[3] >= 'P' && dest[3] <= 'Z'
	if !north {
		lat = -lat
	}
	m.Latitude = &Coordinate{Degrees: lat, Ambiguity: ambiguity}

	lonOffset := dest[4] >= 'P' && dest[4] <= 'Z' // +100 degrees
	west := dest[5] >= 'P' && dest[5] <= 'Z'

	// Longitude degrees/minutes/hundredths from info bytes 1-3, each
	// offset by 28.
	d := int(info[1]) - 28
	if lonOffset {
		d += 100
	}
	switch {
	case d >= 180 && d <= 189:
		d -= 80
	case d >= 190 && d <= 199:
		d -= 190
	}
	mn := (int(info[2]) - 28) % 60
	if mn < 0 {
		mn += 60
	}
	hh := int(info[3]) - 28
	if d < 0 || d > 180 || hh < 0 || hh > 99 {
		return &Malformed{Reason: "Mic-E longitude out of range", Raw: info}
	}
	lon := float64(d) + (float64(mn)+float64(hh)/100.0)/60.0
	if west {
		lon = -lon
	}
	m.Longitude = &Coordinate{Degrees: lon, Ambiguity: ambiguity}

	// Speed and course from info bytes 4-6.
	sp := int(info[4]) - 28
	dc := int(info[5]) - 28
	se := int(info[6]) - 28
	if sp >= 0 && dc >= 0 && se >= 0 {
		speedKnots := float64(sp/10)*100 + float64(sp%10)*10 + float64(dc/10)
		if speedKnots >= 800 {
			speedKnots -= 800
		}
		course := float64((dc%10)*100 + se)
		if course >= 400 {
			course -= 400
		}
		m.SpeedMPH = float64p(speedKnots / 0.868976)
		m.Course = float64p(course)
	}

	m.SymbolCode = info[7]
	m.SymbolTable = info[8]

	comment := append([]byte(nil), info[9:]...)
	comment = micEDevicePrefix(m, comment)

	// Altitude: three base 91 bytes followed by '}', offset 10 km down,
	// reported in feet.  A leading ']' or '`' from the device id survives
	// in some firmware.
	if len(comment) >= 4 {
		start := 0
		if comment[0] == ']' || comment[0] == '`' {
			start = 1
		}
		if len(comment) >= start+4 && comment[start+3] == '}' &&
			isDigit91(comment[start]) && isDigit91(comment[start+1]) && isDigit91(comment[start+2]) {
			v := (int(comment[start])-33)*91*91 +
				(int(comment[start+1])-33)*91 +
				int(comment[start+2]) - 33
			m.Altitude = float64p(float64(v - 10000))
			comment = append(comment[:start], comment[start+4:]...)
		}
	}

	m.Comment = scanComment(&m.Extension, &m.Telemetry, micETidyComment(comment))
	if !micECommentPrintable(m.Comment) {
		m.Comment = ""
	}
	return m
}

// micETidyComment strips telemetry-ish junk some trackers append.
func micETidyComment(c []byte) []byte {
	// Leading "_%" and everything after it is binary telemetry.
	for i := 0; i+1 < len(c); i++ {
		if c[i] == '_' && c[i+1] == '%' {
			c = c[:i]
			break
		}
	}
	if n := len(c); n >= 4 && string(c[n-4:]) == "^ --" {
		c = c[:n-4]
	}
	if n := len(c); n > 0 && c[n-1] == '^' {
		c = c[:n-1]
	}
	for len(c) >= 3 && string(c[len(c)-3:]) == " --" {
		c = c[:len(c)-3]
	}
	return c
}

// micECommentPrintable reports whether the comment looks like text rather
// than encoded tracker data.
func micECommentPrintable(s string) bool {
	if len(s) <= 1 {
		return false
	}
	if s[0] == ']' || s[0] == '=' {
		return false
	}
	plain := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			plain++
		case c == ' ' || c == '.' || c == ',' || c == '!' || c == '?' || c == '-':
			plain++
		}
	}
	return plain*2 >= len(s)
}
