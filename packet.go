package aprsdec

import (
	"fmt"
	"strings"
)

// Packet is one APRS frame: the AX.25 addresses plus the raw information
// field.  Decode interprets the information field; the decoder never
// panics on hostile input, it returns Malformed or Unknown payloads
// instead.
type Packet struct {
	Src  string
	Dst  string
	Path []string
	Info []byte
}

// ParsePacket splits a TNC2 monitor line, "SRC>DST,PATH1,PATH2:info".
func ParsePacket(line string) (*Packet, error) {
	header, info, found := strings.Cut(line, ":")
	if !found {
		return nil, fmt.Errorf("no information field in %q", line)
	}
	src, route, found := strings.Cut(header, ">")
	if !found || src == "" {
		return nil, fmt.Errorf("no source callsign in %q", line)
	}
	hops := strings.Split(route, ",")
	if hops[0] == "" {
		return nil, fmt.Errorf("no destination callsign in %q", line)
	}
	return &Packet{
		Src:  src,
		Dst:  hops[0],
		Path: hops[1:],
		Info: []byte(info),
	}, nil
}

// Classify reports the data type of an information field from its first
// byte, without decoding it.
func Classify(info []byte) DataType {
	if len(info) == 0 {
		return TypeEmpty
	}
	switch info[0] {
	case '!', '=', '/', '@':
		return TypePosition
	case '`', '\'':
		return TypeMicE
	case '_':
		return TypeWeather
	case ';':
		return TypeObject
	case ')':
		return TypeItem
	case ':':
		return TypeMessage
	case '>':
		return TypeStatus
	case '<':
		return TypeCapabilities
	case '?':
		return TypeQuery
	case 'T':
		if len(info) >= 2 && info[1] == '#' {
			return TypeTelemetry
		}
		return TypeUnknown
	case '{':
		return TypeUserDefined
	case '}':
		return TypeThirdParty
	case '#':
		if len(info) >= 8 && fixedDigitsOK(info[4:8]) {
			switch string(info[1:4]) {
			case "PHG":
				return TypePHG
			case "DFS":
				return TypeDFS
			}
		}
		// Old trackers drop the leading 'T' from telemetry data.
		return TypeTelemetry
	}
	return TypeUnknown
}

// Decode interprets the packet's information field.
func (p *Packet) Decode() Payload {
	return decodeInfo(p.Dst, p.Info, true)
}

// DecodeInfo interprets a bare information field against the destination
// callsign (needed for Mic-E and device identification).
func DecodeInfo(dest string, info []byte) Payload {
	return decodeInfo(dest, info, true)
}

func decodeInfo(dest string, info []byte, recurse bool) Payload {
	switch Classify(info) {
	case TypeEmpty:
		return &Empty{}
	case TypePosition:
		return decodePositionReport(info)
	case TypeMicE:
		p := decodeMicE(dest, info)
		if m, ok := p.(*MicE); ok && m.Device == "" {
			// The destination digits double as a legacy to-call.
			base, _, _ := strings.Cut(dest, "-")
			if dev, ok := DeviceID(MicETocall(base)); ok {
				m.Device = dev
			}
		}
		return p
	case TypeWeather:
		return decodePositionlessWeather(info)
	case TypeObject:
		return decodeObject(info)
	case TypeItem:
		return decodeItem(info)
	case TypeMessage:
		return decodeMessage(info)
	case TypeStatus:
		return decodeStatus(info)
	case TypeCapabilities:
		return decodeCapabilities(info)
	case TypeQuery:
		return decodeGeneralQuery(info)
	case TypeTelemetry:
		return decodeTelemetry(info)
	case TypeUserDefined:
		return decodeUserDefined(info)
	case TypeThirdParty:
		if recurse {
			return decodeThirdParty(info)
		}
		return &Unknown{Raw: info}
	case TypePHG, TypeDFS:
		return decodeHashReport(info)
	}
	return &Unknown{Raw: info}
}

// decodeCapabilities decodes the '<' data type: a comma separated list of
// TOKEN or TOKEN=VALUE entries.
func decodeCapabilities(info []byte) Payload {
	caps := &Capabilities{}
	for _, field := range strings.Split(string(info[1:]), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		token, value, _ := strings.Cut(field, "=")
		caps.Entries = append(caps.Entries, Capability{Token: token, Value: value})
	}
	return caps
}

// decodeUserDefined decodes the '{' data type: a one byte user id, a one
// byte packet type, then opaque data.  "{{" marks experimental packets.
func decodeUserDefined(info []byte) Payload {
	if len(info) >= 2 && info[1] == '{' {
		return &UserDefined{Experimental: true, Data: string(info[2:])}
	}
	if len(info) < 3 {
		return &Malformed{Reason: "user-defined packet too short", Raw: info}
	}
	return &UserDefined{
		UserID:   info[1],
		DataType: info[2],
		Data:     string(info[3:]),
	}
}

// decodeThirdParty decodes the '}' data type: a complete TNC2 frame
// tunneled inside the information field.  Nesting stops after one level.
func decodeThirdParty(info []byte) Payload {
	inner, err := ParsePacket(string(info[1:]))
	if err != nil {
		return &Malformed{Reason: "invalid third-party header", Raw: info}
	}
	return &ThirdParty{
		Inner:   inner,
		Payload: decodeInfo(inner.Dst, inner.Info, false),
	}
}
