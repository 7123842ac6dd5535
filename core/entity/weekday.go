package entity

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is the closed set of canonical weekday identifiers used as
// recurring date keys. Lowercase names are the only stored form.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayOrder = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// AllWeekdays returns the weekdays in canonical Monday..Sunday order.
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (w Weekday) Valid() bool {
	_, ok := weekdayOrder[w]
	return ok
}

// Order returns the canonical position, 0=Monday .. 6=Sunday.
func (w Weekday) Order() int {
	return weekdayOrder[w]
}

// ParseWeekday accepts a case-insensitive weekday name.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", fmt.Errorf("unknown weekday %q", s)
	}
	return w, nil
}

// WeekdayFromIndex translates a numeric day value using the single
// documented mapping 0=Monday .. 6=Sunday (the mapping the original
// web client sends).
func WeekdayFromIndex(i int) (Weekday, error) {
	all := AllWeekdays()
	if i < 0 || i >= len(all) {
		return "", fmt.Errorf("weekday index %d out of range [0,6]", i)
	}
	return all[i], nil
}

// WeekdayOf maps a calendar date to its canonical identifier.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
