package aprsdec

import "strings"

// decodeObject decodes the ';' data type: a 9 byte padded object name, a
// live/killed flag, a 7 byte timestamp, then a normal position block.
func decodeObject(info []byte) Payload {
	body := info[1:]
	if len(body) < 17 {
		return &Malformed{Reason: "object report too short", Raw: info}
	}
	obj := &Object{RawName: string(body[0:9])}
	obj.Name = strings.TrimRight(strings.TrimLeft(obj.RawName, " "), " ")

	switch body[9] {
	case '*':
		obj.Alive = true
	case '_':
		obj.Alive = false
	default:
		return &Malformed{Reason: "invalid object live/killed flag", Raw: info}
	}

	obj.Timestamp = parseTimestamp7(body[10:17])
	rest := body[17:]
	if len(rest) == 0 {
		return &Malformed{Reason: "object without position", Raw: info}
	}

	pos := &Position{Timestamp: obj.Timestamp}
	var p Payload
	if isASCIIDigit(rest[0]) {
		p = decodeUncompressed(pos, rest)
	} else {
		p = decodeCompressed(pos, rest)
	}
	switch v := p.(type) {
	case *Position:
		obj.Position = v
	case *Weather:
		obj.Position = v.Position
		obj.Weather = v
	default:
		return p
	}
	return obj
}

// decodeItem decodes the ')' data type: a 3 to 9 byte name terminated by
// '!' (live) or '_' (killed), then a position block with no timestamp.
func decodeItem(info []byte) Payload {
	body := info[1:]
	end := -1
	for i := 1; i < len(body) && i <= 9; i++ {
		if body[i] == '!' || body[i] == '_' {
			end = i
			break
		}
	}
	if end < 3 {
		return &Malformed{Reason: "invalid item name", Raw: info}
	}
	item := &Item{
		Name:  strings.TrimRight(string(body[:end]), " "),
		Alive: body[end] == '!',
	}

	rest := body[end+1:]
	if len(rest) == 0 {
		return &Malformed{Reason: "item without position", Raw: info}
	}
	pos := &Position{}
	var p Payload
	if isASCIIDigit(rest[0]) {
		p = decodeUncompressed(pos, rest)
	} else {
		p = decodeCompressed(pos, rest)
	}
	switch v := p.(type) {
	case *Position:
		item.Position = v
	case *Weather:
		item.Position = v.Position
	default:
		return p
	}
	return item
}
