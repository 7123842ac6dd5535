package entity

import "fmt"

// Wall-clock times travel as naive 24-hour "HH:MM" strings; all slot
// arithmetic happens in minutes from midnight.

const (
	clockLayout   = "HH:MM"
	MinutesPerDay = 24 * 60
	dateLayout    = "2006-01-02"
)

// ParseClock parses an "HH:MM" string into minutes from midnight.
// Every position is checked: a stray non-digit anywhere rejects the
// whole string rather than reparsing as a shorter number.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, want %s", s, clockLayout)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid time %q, want %s", s, clockLayout)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
