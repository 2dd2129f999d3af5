// Package syntax provides byte-level recognizers for token shapes that
// commonly appear in log lines (integers, 24-hour times, durations, IPv4
// addresses, syslog dates).
//
// Each recognizer is a pure predicate over a byte slice: it reports whether
// the slice begins with the shape, and how many bytes the match consumed.
// Callers decide whether a partial match is acceptable; most require the
// word to be consumed in full.
package syntax

// PosInt matches one or more ASCII digits.
func PosInt(b []byte) (int, bool) {
	i := 0
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	return i, i > 0
}

// Time24hr matches "hh:mm:ss" with a two-digit hour in 00..23.
//
// The two-digit hour requirement is deliberate: it keeps single-digit-hour
// values out of this recognizer so they can fall through to Duration.
func Time24hr(b []byte) (int, bool) {
	if len(b) < 8 {
		return 0, false
	}
	if !isDigit(b[0]) || !isDigit(b[1]) {
		return 0, false
	}
	hour := int(b[0]-'0')*10 + int(b[1]-'0')
	if hour > 23 {
		return 0, false
	}
	if !sexagesimal(b[2:5]) || !sexagesimal(b[5:8]) {
		return 0, false
	}
	return 8, true
}

// Duration matches "h:mm:ss" where the hour field is one or more digits of
// any magnitude (durations can exceed a day).
func Duration(b []byte) (int, bool) {
	i := 0
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	if i == 0 {
		return 0, false
	}
	if len(b) < i+6 {
		return 0, false
	}
	if !sexagesimal(b[i:i+3]) || !sexagesimal(b[i+3:i+6]) {
		return 0, false
	}
	return i + 6, true
}

// IPv4 matches four dotted decimal octets, each in 0..255.
func IPv4(b []byte) (int, bool) {
	i := 0
	for oct := 0; oct < 4; oct++ {
		if oct > 0 {
			if i >= len(b) || b[i] != '.' {
				return 0, false
			}
			i++
		}
		n, ok := octet(b[i:])
		if !ok {
			return 0, false
		}
		i += n
	}
	return i, true
}

// octet matches 1-3 digits with value <= 255.
func octet(b []byte) (int, bool) {
	i, val := 0, 0
	for i < len(b) && i < 3 && isDigit(b[i]) {
		val = val*10 + int(b[i]-'0')
		i++
	}
	if i == 0 || val > 255 {
		return 0, false
	}
	return i, true
}

// months holds the English abbreviations used by RFC3164 timestamps.
var months = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DateRFC3164 matches a classic syslog header date: "Mmm [d]d hh:mm:ss",
// e.g. "Oct 11 22:14:15". The day may be one or two digits.
func DateRFC3164(b []byte) (int, bool) {
	if len(b) < 4 {
		return 0, false
	}
	found := false
	for _, m := range months {
		if string(b[:3]) == m {
			found = true
			break
		}
	}
	if !found || b[3] != ' ' {
		return 0, false
	}
	i := 4
	// RFC3164 pads single-digit days with a space.
	if i < len(b) && b[i] == ' ' {
		i++
	}
	dstart := i
	for i < len(b) && i < dstart+2 && isDigit(b[i]) {
		i++
	}
	if i == dstart {
		return 0, false
	}
	if i >= len(b) || b[i] != ' ' {
		return 0, false
	}
	i++
	n, ok := Time24hr(b[i:])
	if !ok {
		return 0, false
	}
	return i + n, true
}

// DateRFC5424 matches an RFC5424 timestamp:
// "yyyy-mm-ddThh:mm:ss[.frac](Z|+hh:mm|-hh:mm)".
func DateRFC5424(b []byte) (int, bool) {
	if len(b) < 20 {
		return 0, false
	}
	if !digits(b[0:4]) || b[4] != '-' || !digits(b[5:7]) || b[7] != '-' || !digits(b[8:10]) {
		return 0, false
	}
	month := int(b[5]-'0')*10 + int(b[6]-'0')
	day := int(b[8]-'0')*10 + int(b[9]-'0')
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, false
	}
	if b[10] != 'T' {
		return 0, false
	}
	n, ok := Time24hr(b[11:])
	if !ok {
		return 0, false
	}
	i := 11 + n
	if i < len(b) && b[i] == '.' {
		j := i + 1
		for j < len(b) && isDigit(b[j]) {
			j++
		}
		if j == i+1 {
			return 0, false
		}
		i = j
	}
	if i >= len(b) {
		return 0, false
	}
	switch b[i] {
	case 'Z':
		return i + 1, true
	case '+', '-':
		if len(b) < i+6 {
			return 0, false
		}
		if !digits(b[i+1:i+3]) || b[i+3] != ':' || !digits(b[i+4:i+6]) {
			return 0, false
		}
		return i + 6, true
	}
	return 0, false
}

// sexagesimal matches ":dd" with dd in 00..59.
func sexagesimal(b []byte) bool {
	if len(b) != 3 || b[0] != ':' || !isDigit(b[1]) || !isDigit(b[2]) {
		return false
	}
	return int(b[1]-'0')*10+int(b[2]-'0') <= 59
}

func digits(b []byte) bool {
	for _, c := range b {
		if !isDigit(c) {
			return false
		}
	}
	return len(b) > 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
