package aprsdec

// Weather reports pack single-letter fields with fixed digit counts into
// the text after the position (or after the MDHM timestamp in the
// positionless '_' form).  Stations disagree about field order, so each
// field is located by its own scan instead of consuming the text left to
// right.  A field letter only counts when the right number of digits
// follows it; dots or spaces in the digit positions mean the sensor exists
// but has no reading.

type wxField struct {
	value *int
	end   int // index just past the field, 0 if not found
}

// findWXField scans for prefix followed by width digit positions.  Dots or
// spaces filling the positions report the field as present with no value.
func findWXField(data []byte, prefix byte, width int) wxField {
	for i := 0; i+width < len(data); i++ {
		if data[i] != prefix {
			continue
		}
		v, filled := 0, true
		blank := true
		for j := 1; j <= width; j++ {
			c := data[i+j]
			switch {
			case c >= '0' && c <= '9':
				v = v*10 + int(c-'0')
				blank = false
			case c == '.' || c == ' ':
				filled = false
			default:
				filled = false
				blank = false
			}
			if !filled && !blank {
				break
			}
		}
		if filled {
			return wxField{value: intp(v), end: i + width + 1}
		}
		if blank {
			return wxField{end: i + width + 1}
		}
	}
	return wxField{}
}

// findWind locates the wind direction/speed group: "DDD/SSS" (direction may
// shrink to two or one digits) or the positionless "cDDD...sSSS" form.
func findWind(data []byte, w *Weather) int {
	for k := 1; k+3 < len(data); k++ {
		if data[k] != '/' {
			continue
		}
		start := k
		for start > 0 && k-start < 3 && isASCIIDigit(data[start-1]) {
			start--
		}
		var d *int
		var dok bool
		if start < k {
			d, dok = wxDigits(data[start:k], false)
		} else if k >= 3 {
			// "..." or "   " for an unknown direction.
			d, dok = wxDigits(data[k-3:k], true)
		}
		s, sok := wxDigits(data[k+1:k+4], true)
		if !dok && !sok {
			continue
		}
		if dok && d != nil && *d <= 360 {
			w.WindDirection = d
		}
		if sok {
			w.WindSpeed = floatField(s, 1)
		}
		return k + 4
	}
	end := 0
	if f := findWXField(data, 'c', 3); f.end > 0 {
		if f.value != nil && *f.value <= 360 {
			w.WindDirection = f.value
		}
		end = f.end
	}
	if f := findWXField(data, 's', 3); f.end > 0 && end > 0 {
		w.WindSpeed = floatField(f.value, 1)
		if f.end > end {
			end = f.end
		}
	}
	return end
}

// wxDigits parses a fixed run of digits; allowBlank accepts an all dots or
// all spaces run as present-but-unknown.
func wxDigits(p []byte, allowBlank bool) (*int, bool) {
	v, blank := 0, true
	for _, c := range p {
		switch {
		case c >= '0' && c <= '9':
			v = v*10 + int(c-'0')
			blank = false
		case allowBlank && (c == '.' || c == ' '):
		default:
			return nil, false
		}
	}
	if blank {
		return nil, allowBlank
	}
	return intp(v), true
}

func floatField(v *int, scale float64) *float64 {
	if v == nil {
		return nil
	}
	return float64p(float64(*v) / scale)
}

// findTemperature locates tNNN, allowing a minus sign and one to three
// digits.  Some firmware emits a stray digit before the sign; the digit is
// dropped.
func findTemperature(data []byte) (*float64, int) {
	for i := 0; i+1 < len(data); i++ {
		if data[i] != 't' {
			continue
		}
		j := i + 1
		if j+1 < len(data) && isASCIIDigit(data[j]) && data[j+1] == '-' {
			j++
		}
		neg := false
		if data[j] == '-' {
			neg = true
			j++
		}
		start := j
		for j < len(data) && j-start < 3 && isASCIIDigit(data[j]) {
			j++
		}
		if j == start {
			if data[i+1] == '.' || data[i+1] == ' ' {
				// Unknown temperature, sensor present.
				return nil, i + 2
			}
			continue
		}
		v := 0
		for _, c := range data[start:j] {
			v = v*10 + int(c-'0')
		}
		if neg {
			v = -v
		}
		return float64p(float64(v)), j
	}
	return nil, 0
}

// wxLikely reports whether text carries weather fields.  A bare
// course/speed "ddd/ddd" token is not enough; a letter prefix with its full
// digit count must be present, so ordinary position comments stay comments.
func wxLikely(data []byte) bool {
	fields := []struct {
		prefix byte
		width  int
	}{
		{'c', 3}, {'s', 3}, {'g', 3}, {'r', 3}, {'p', 3},
		{'P', 3}, {'h', 2}, {'b', 5}, {'L', 3}, {'l', 3},
	}
	for _, f := range fields {
		if found := findWXField(data, f.prefix, f.width); found.end > 0 && found.value != nil {
			return true
		}
	}
	if t, end := findTemperature(data); end > 0 && t != nil {
		return true
	}
	return false
}

// decodeWeatherBody decodes weather data following a position whose symbol
// is '_'.  pos keeps the coordinates; the returned payload is the Weather.
func decodeWeatherBody(pos *Position, body []byte) Payload {
	w := &Weather{Position: pos, Timestamp: pos.Timestamp}
	decodeWeatherFields(w, body)
	return w
}

func decodeWeatherFields(w *Weather, data []byte) {
	last := findWind(data, w)
	mark := func(end int) {
		if end > last {
			last = end
		}
	}

	if t, end := findTemperature(data); end > 0 {
		w.Temperature = t
		mark(end)
	}
	if f := findWXField(data, 'g', 3); f.end > 0 {
		w.Gust = floatField(f.value, 1)
		mark(f.end)
	}
	if f := findWXField(data, 'r', 3); f.end > 0 {
		w.Rain1h = floatField(f.value, 100)
		mark(f.end)
	}
	if f := findWXField(data, 'p', 3); f.end > 0 {
		w.Rain24h = floatField(f.value, 100)
		mark(f.end)
	}
	if f := findWXField(data, 'P', 3); f.end > 0 {
		w.RainMidnight = floatField(f.value, 100)
		mark(f.end)
	}
	if f := findWXField(data, 'h', 2); f.end > 0 {
		if f.value != nil {
			h := *f.value
			if h == 0 {
				h = 100
			}
			w.Humidity = intp(h)
		}
		mark(f.end)
	}
	if f := findWXField(data, 'b', 5); f.end > 0 {
		w.Pressure = floatField(f.value, 10)
		mark(f.end)
	}
	if f := findWXField(data, 'L', 3); f.end > 0 {
		w.Luminosity = f.value
		mark(f.end)
	}
	if f := findWXField(data, 'l', 3); f.end > 0 {
		if f.value != nil {
			w.Luminosity = intp(*f.value + 1000)
		}
		mark(f.end)
	}
	// Snow shares the 's' letter with positionless wind speed; only a
	// group past the wind fields counts.
	if last > 0 {
		if f := findWXField(data[last:], 's', 3); f.end > 0 {
			w.Snow = floatField(f.value, 10)
			mark(last + f.end)
		}
	}

	if last < len(data) {
		w.Software = trimComment(data[last:])
	}
}

// decodePositionlessWeather decodes the '_' data type: an 8 digit
// month/day/hour/minute timestamp followed by weather fields.
func decodePositionlessWeather(info []byte) Payload {
	body := info[1:]
	if len(body) < 8 {
		return &Malformed{Reason: "positionless weather report too short", Raw: info}
	}
	ts := parseTimestampMDHM(body[0:8])
	if ts == nil {
		return &Malformed{Reason: "malformed weather timestamp", Raw: info}
	}
	w := &Weather{Timestamp: ts}
	decodeWeatherFields(w, body[8:])
	return w
}
