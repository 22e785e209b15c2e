package aprsdec

import "time"

// TimestampKind tells which of the APRS timestamp forms was sent.
type TimestampKind int

const (
	TimestampDHMZulu  TimestampKind = iota // ddhhmm followed by z
	TimestampDHMLocal                      // ddhhmm followed by /
	TimestampHMS                           // hhmmss followed by h
	TimestampMDHM                          // mmddhhmm, positionless weather only
)

// PartialTimestamp is a decoded APRS timestamp.  The formats never carry a
// year (and usually no month or day), so this cannot be resolved to an
// absolute time without calendar context from the caller.
type PartialTimestamp struct {
	Kind   TimestampKind
	Month  int // MDHM only
	Day    int // DHM and MDHM
	Hour   int
	Minute int
	Second int // HMS only
}

// ResolveIn fills the missing calendar fields from ref and returns an
// absolute UTC time.  Local-time DHM stamps are treated as UTC; the
// protocol provides no way to learn the sender's zone.
func (t PartialTimestamp) ResolveIn(ref time.Time) time.Time {
	ref = ref.UTC()
	switch t.Kind {
	case TimestampHMS:
		return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, t.Second, 0, time.UTC)
	case TimestampMDHM:
		return time.Date(ref.Year(), time.Month(t.Month), t.Day, t.Hour, t.Minute, 0, 0, time.UTC)
	default:
		return time.Date(ref.Year(), ref.Month(), t.Day, t.Hour, t.Minute, 0, 0, time.UTC)
	}
}

func twoDigits(p []byte) (int, bool) {
	if len(p) < 2 || !isASCIIDigit(p[0]) || !isASCIIDigit(p[1]) {
		return 0, false
	}
	return int(p[0]-'0')*10 + int(p[1]-'0'), true
}

// parseTimestamp7 decodes the fixed 7 byte DHM / HMS timestamp field that
// follows the '/' '@' data type indicators and the object header.
//
//	092345z is 23:45 zulu on the 9th.
//	092345/ is local time, which we note but cannot translate.
//	234517h is 23:45:17 zulu.
func parseTimestamp7(p []byte) *PartialTimestamp {
	if len(p) < 7 {
		return nil
	}
	for i := 0; i < 6; i++ {
		if !isASCIIDigit(p[i]) {
			return nil
		}
	}
	a, _ := twoDigits(p[0:])
	b, _ := twoDigits(p[2:])
	c, _ := twoDigits(p[4:])

	switch p[6] {
	case 'z':
		return &PartialTimestamp{Kind: TimestampDHMZulu, Day: a, Hour: b, Minute: c}
	case '/':
		return &PartialTimestamp{Kind: TimestampDHMLocal, Day: a, Hour: b, Minute: c}
	case 'h':
		return &PartialTimestamp{Kind: TimestampHMS, Hour: a, Minute: b, Second: c}
	}
	return nil
}

// parseTimestampMDHM decodes the 8 digit month/day/hour/minute form used by
// positionless weather reports.
func parseTimestampMDHM(p []byte) *PartialTimestamp {
	if len(p) < 8 {
		return nil
	}
	for i := 0; i < 8; i++ {
		if !isASCIIDigit(p[i]) {
			return nil
		}
	}
	month, _ := twoDigits(p[0:])
	day, _ := twoDigits(p[2:])
	hour, _ := twoDigits(p[4:])
	minute, _ := twoDigits(p[6:])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	return &PartialTimestamp{Kind: TimestampMDHM, Month: month, Day: day, Hour: hour, Minute: minute}
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
