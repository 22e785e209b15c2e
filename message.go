package aprsdec

import (
	"strconv"
	"strings"
)

// decodeMessage decodes the ':' data type: a 9 byte padded addressee, a
// ':' separator, then the message text.  Several other services ride on
// the message format: bulletins, NWS products, telemetry channel
// definitions, directed queries and ack/rej.
func decodeMessage(info []byte) Payload {
	if len(info) < 11 || info[10] != ':' {
		return &Malformed{Reason: "malformed message addressee", Raw: info}
	}
	addressee := strings.TrimRight(string(info[1:10]), " ")
	text := string(info[11:])

	switch {
	case strings.HasPrefix(text, "PARM."):
		return parseTelemetryParams(addressee, text[5:])
	case strings.HasPrefix(text, "UNIT."):
		return parseTelemetryUnits(addressee, text[5:])
	case strings.HasPrefix(text, "EQNS."):
		return parseTelemetryEqns(addressee, text[5:])
	case strings.HasPrefix(text, "BITS."):
		return parseTelemetryBits(addressee, text[5:])
	}

	if strings.HasPrefix(text, "?") {
		return decodeDirectedQuery(addressee, text)
	}

	msg := &Message{Kind: MessagePlain, Addressee: addressee}

	switch {
	case strings.HasPrefix(addressee, "BLN"):
		classifyBulletin(msg, addressee)
	case strings.HasPrefix(addressee, "NWS") ||
		strings.HasPrefix(addressee, "SKY") ||
		strings.HasPrefix(addressee, "CWA") ||
		strings.HasPrefix(addressee, "BOM"):
		msg.Kind = MessageNWS
	}

	if msg.Kind == MessagePlain {
		if n, ok := ackRejNumber(text, "ack"); ok {
			msg.Kind = MessageAck
			msg.Number = n
			return msg
		}
		if n, ok := ackRejNumber(text, "rej"); ok {
			msg.Kind = MessageRej
			msg.Number = n
			return msg
		}
	}

	msg.Text = text
	// A trailing "{nn" is the message number; the reply-ack extension
	// tucks an ack number behind a '}'.
	if i := strings.LastIndexByte(msg.Text, '{'); i >= 0 {
		tail := msg.Text[i+1:]
		if len(tail) >= 1 && len(tail) <= 7 {
			num, reply, found := strings.Cut(tail, "}")
			if len(num) >= 1 && len(num) <= 5 {
				msg.Number = num
				if found {
					msg.ReplyAck = reply
				}
				msg.Text = msg.Text[:i]
			}
		}
	}
	return msg
}

// classifyBulletin sorts a BLN* addressee into bulletin, announcement or
// group bulletin.
func classifyBulletin(msg *Message, addressee string) {
	rest := addressee[3:]
	switch {
	case rest == "":
		msg.Kind = MessageBulletin
	case isASCIIDigit(rest[0]) && len(rest) == 1:
		msg.Kind = MessageBulletin
		msg.Number = rest
	case isASCIIDigit(rest[0]):
		msg.Kind = MessageGroupBulletin
		msg.Number = rest[:1]
		msg.GroupName = rest[1:]
	default:
		msg.Kind = MessageAnnouncement
		msg.Number = rest
	}
}

// ackRejNumber matches "ackNNNNN" / "rejNNNNN" with a 1-5 character
// message number and nothing after it.
func ackRejNumber(text, verb string) (string, bool) {
	if !strings.HasPrefix(text, verb) {
		return "", false
	}
	n := text[len(verb):]
	if len(n) < 1 || len(n) > 5 || strings.ContainsAny(n, " ") {
		return "", false
	}
	return n, true
}

// decodeDirectedQuery decodes a query sent inside a message to a specific
// station, e.g. ":N0CALL   :?APRSD".
func decodeDirectedQuery(addressee, text string) Payload {
	q := &Query{Addressee: addressee}
	body := strings.TrimPrefix(text, "?")
	if end := strings.IndexByte(body, '?'); end >= 0 {
		body = body[:end]
	}
	q.Type = body
	return q
}

// decodeGeneralQuery decodes the '?' data type: "?type?" optionally
// followed by a target footprint "lat,lon,radius".
func decodeGeneralQuery(info []byte) Payload {
	body := string(info[1:])
	q := &Query{}
	qtype, rest, found := strings.Cut(body, "?")
	q.Type = qtype
	if !found {
		return q
	}
	parts := strings.Split(strings.TrimSpace(rest), ",")
	if len(parts) == 3 {
		lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		rad, err3 := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err1 == nil && err2 == nil && err3 == nil {
			q.Latitude = float64p(lat)
			q.Longitude = float64p(lon)
			q.Radius = float64p(rad)
		}
	}
	return q
}
