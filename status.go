package aprsdec

// decodeStatus decodes the '>' data type.  The text may lead with a DHM
// zulu timestamp or with a maidenhead locator plus symbol, and may trail
// with a "^hp" beam heading / ERP pair from meteor scatter operators.
func decodeStatus(info []byte) Payload {
	st := &Status{}
	body := info[1:]

	switch {
	case len(body) >= 7 && body[6] == 'z' && fixedDigitsOK(body[0:6]):
		st.Timestamp = parseTimestamp7(body[0:7])
		body = body[7:]
	case len(body) >= 9 && isMaidenhead(body[0:6]) && body[8] == ' ':
		st.Maidenhead = string(body[0:6])
		st.SymbolTable = body[6]
		st.SymbolCode = body[7]
		body = body[9:]
	case len(body) == 8 && isMaidenhead(body[0:6]):
		st.Maidenhead = string(body[0:6])
		st.SymbolTable = body[6]
		st.SymbolCode = body[7]
		body = nil
	case len(body) >= 7 && isMaidenhead(body[0:4]) && body[6] == ' ':
		st.Maidenhead = string(body[0:4])
		st.SymbolTable = body[4]
		st.SymbolCode = body[5]
		body = body[7:]
	case len(body) == 6 && isMaidenhead(body[0:4]):
		st.Maidenhead = string(body[0:4])
		st.SymbolTable = body[4]
		st.SymbolCode = body[5]
		body = nil
	}

	// "^hp" suffix: beam heading in 10 degree steps, effective radiated
	// power as (digit)^2 * 10 watts.
	if n := len(body); n >= 3 && body[n-3] == '^' {
		h, p := body[n-2], body[n-1]
		var heading *int
		switch {
		case h >= '0' && h <= '9':
			heading = intp(int(h-'0') * 10)
		case h >= 'A' && h <= 'Z':
			heading = intp(int(h-'A')*10 + 100)
		}
		var erp *int
		if p >= '1' && p <= 'K' {
			v := int(p - '0')
			erp = intp(v * v * 10)
		}
		if heading != nil && erp != nil {
			st.BeamHeading = heading
			st.ERPWatts = erp
			body = body[:n-3]
		}
	}

	st.Text = trimComment(body)
	return st
}

// isMaidenhead reports whether p is a grid locator: two field letters, two
// square digits and optionally two subsquare letters.
func isMaidenhead(p []byte) bool {
	if len(p) != 4 && len(p) != 6 {
		return false
	}
	if p[0] < 'A' || p[0] > 'R' || p[1] < 'A' || p[1] > 'R' {
		return false
	}
	if !isASCIIDigit(p[2]) || !isASCIIDigit(p[3]) {
		return false
	}
	if len(p) == 6 {
		return p[4] >= 'A' && p[4] <= 'X' && p[5] >= 'A' && p[5] <= 'X'
	}
	return true
}

func fixedDigitsOK(p []byte) bool {
	_, ok := fixedDigits(p)
	return ok
}
