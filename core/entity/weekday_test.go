package entity

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	for _, in := range []string{"monday", "Monday", "MONDAY", " monday "} {
		got, err := ParseWeekday(in)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): %v", in, err)
		}
		if got != Monday {
			t.Fatalf("ParseWeekday(%q) = %q, want monday", in, got)
		}
	}
	if _, err := ParseWeekday("mondays"); err == nil {
		t.Fatal("expected error for unknown weekday name")
	}
}

func TestWeekdayFromIndexMapping(t *testing.T) {
	// 0 is Monday, 6 is Sunday.
	want := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, w := range want {
		got, err := WeekdayFromIndex(i)
		if err != nil {
			t.Fatalf("WeekdayFromIndex(%d): %v", i, err)
		}
		if got != w {
			t.Fatalf("WeekdayFromIndex(%d) = %q, want %q", i, got, w)
		}
	}
	for _, i := range []int{-1, 7} {
		if _, err := WeekdayFromIndex(i); err == nil {
			t.Fatalf("WeekdayFromIndex(%d): expected error", i)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-03-02 is a Monday.
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		want, _ := WeekdayFromIndex(i)
		if got := WeekdayOf(d.AddDate(0, 0, i)); got != want {
			t.Fatalf("WeekdayOf(+%d) = %q, want %q", i, got, want)
		}
	}
}
