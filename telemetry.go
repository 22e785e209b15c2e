package aprsdec

import (
	"strconv"
	"strings"
)

const (
	telemetryAnalogChannels  = 5
	telemetryDigitalChannels = 8
)

// decodeTelemetry decodes the 'T' data type: "T#seq,a1,a2,a3,a4,a5,dddddddd"
// with five analog values and eight digital bits.  Old trackers send the
// digital field as eight comma separated digits instead of one bitstring,
// and some drop the leading 'T' entirely.
func decodeTelemetry(info []byte) Payload {
	body := string(info)
	switch {
	case strings.HasPrefix(body, "T#"):
		body = body[2:]
	case strings.HasPrefix(body, "#"):
		body = body[1:]
	default:
		return &Unknown{Raw: info}
	}

	seqStr, rest, found := strings.Cut(body, ",")
	if !found {
		return &Telemetry{Raw: string(info)}
	}
	// MIC sequence markers ("T#MIC") carry no counter.
	seq := 0
	if n, err := strconv.Atoi(strings.TrimSpace(seqStr)); err == nil {
		seq = n
	} else if !strings.EqualFold(strings.TrimSpace(seqStr), "MIC") {
		return &Telemetry{Raw: string(info)}
	}

	t := &Telemetry{
		Seq:    seq,
		Analog: make([]*float64, telemetryAnalogChannels),
	}

	parts := strings.SplitN(rest, ",", telemetryAnalogChannels+1)
	for i := 0; i < telemetryAnalogChannels && i < len(parts); i++ {
		s := strings.TrimSpace(parts[i])
		if s == "" {
			continue
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			t.Analog[i] = float64p(v)
		}
	}

	if len(parts) > telemetryAnalogChannels {
		tail := parts[telemetryAnalogChannels]
		bits, comment := splitTelemetryBits(tail)
		t.Digital = bits
		t.Comment = strings.TrimSpace(comment)
	}
	if t.Digital == nil {
		t.Digital = make([]*int, telemetryDigitalChannels)
	}
	return t
}

// splitTelemetryBits takes the sixth value field and extracts the eight
// digital bits, either as one 8 character bitstring or as the legacy eight
// comma separated digits.  Whatever follows is comment text.
func splitTelemetryBits(tail string) ([]*int, string) {
	bits := make([]*int, telemetryDigitalChannels)

	if len(tail) >= telemetryDigitalChannels && isBitstring(tail[:telemetryDigitalChannels]) {
		for i := 0; i < telemetryDigitalChannels; i++ {
			bits[i] = intp(int(tail[i] - '0'))
		}
		return bits, tail[telemetryDigitalChannels:]
	}

	parts := strings.SplitN(tail, ",", telemetryDigitalChannels+1)
	for i := 0; i < telemetryDigitalChannels && i < len(parts); i++ {
		s := strings.TrimSpace(parts[i])
		if s == "0" || s == "1" {
			bits[i] = intp(int(s[0] - '0'))
		}
	}
	if len(parts) > telemetryDigitalChannels {
		return bits, parts[telemetryDigitalChannels]
	}
	return bits, ""
}

func isBitstring(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return len(s) > 0
}

// parseTelemetryParams decodes a "PARM." definition message: channel names
// for the five analog and eight digital channels.
func parseTelemetryParams(addressee, text string) Payload {
	return &TelemetryParams{
		Addressee: addressee,
		Names:     splitDefinitionList(text, telemetryAnalogChannels+telemetryDigitalChannels),
	}
}

// parseTelemetryUnits decodes a "UNIT." definition message.
func parseTelemetryUnits(addressee, text string) Payload {
	return &TelemetryUnits{
		Addressee: addressee,
		Units:     splitDefinitionList(text, telemetryAnalogChannels+telemetryDigitalChannels),
	}
}

// parseTelemetryEqns decodes an "EQNS." message: fifteen coefficients,
// three (a, b, c) per analog channel, applied as a*v*v + b*v + c.
func parseTelemetryEqns(addressee, text string) Payload {
	eq := &TelemetryEqns{
		Addressee:    addressee,
		Coefficients: make([][3]float64, telemetryAnalogChannels),
	}
	parts := strings.Split(text, ",")
	for i := 0; i < len(parts) && i < telemetryAnalogChannels*3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			continue
		}
		eq.Coefficients[i/3][i%3] = v
	}
	return eq
}

// parseTelemetryBits decodes a "BITS." message: an 8 character bit sense
// string, then the project title.
func parseTelemetryBits(addressee, text string) Payload {
	b := &TelemetryBits{
		Addressee: addressee,
		Sense:     make([]bool, telemetryDigitalChannels),
	}
	bits, project, _ := strings.Cut(text, ",")
	bits = strings.TrimSpace(bits)
	for i := 0; i < telemetryDigitalChannels && i < len(bits); i++ {
		b.Sense[i] = bits[i] == '1'
	}
	b.Project = strings.TrimSpace(project)
	return b
}

// splitDefinitionList splits a comma separated definition message, keeping
// at most max entries and trimming whitespace.  Empty slots keep their
// position so channel indexes still line up.
func splitDefinitionList(text string, max int) []string {
	parts := strings.Split(text, ",")
	if len(parts) > max {
		parts = parts[:max]
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
