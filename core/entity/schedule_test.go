package entity

import (
	"errors"
	"testing"
)

func validRangeConfig() ScheduleConfig {
	return ScheduleConfig{
		DateMode:            DateModeExplicitRange,
		StartDate:           "2026-03-02",
		EndDate:             "2026-03-06",
		WindowStart:         "09:00",
		WindowEnd:           "17:00",
		SlotDurationMinutes: 30,
	}
}

func TestParseDateMode(t *testing.T) {
	cases := []struct {
		in      string
		want    DateMode
		wantErr bool
	}{
		{"explicit-range", DateModeExplicitRange, false},
		{"recurring-weekdays", DateModeRecurringWeekdays, false},
		{"specific", DateModeExplicitRange, false},
		{"daysOfWeek", DateModeRecurringWeekdays, false},
		{"weekly", DateModeRecurringWeekdays, false},
		{" explicit-range ", DateModeExplicitRange, false},
		{"biweekly", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseDateMode(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseDateMode(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDateMode(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseDateMode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidateNamesViolatedField(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*ScheduleConfig)
		wantField string
	}{
		{"bad start date", func(c *ScheduleConfig) { c.StartDate = "03/02/2026" }, "start_date"},
		{"bad end date", func(c *ScheduleConfig) { c.EndDate = "not-a-date" }, "end_date"},
		{"inverted range", func(c *ScheduleConfig) { c.StartDate, c.EndDate = c.EndDate, c.StartDate }, "start_date"},
		{"bad window start", func(c *ScheduleConfig) { c.WindowStart = "9am" }, "window_start"},
		{"non-digit window start minutes", func(c *ScheduleConfig) { c.WindowStart = "09:0a" }, "window_start"},
		{"bad window end", func(c *ScheduleConfig) { c.WindowEnd = "25:00" }, "window_end"},
		{"non-digit window end minutes", func(c *ScheduleConfig) { c.WindowEnd = "17:3-" }, "window_end"},
		{"inverted window", func(c *ScheduleConfig) { c.WindowStart, c.WindowEnd = c.WindowEnd, c.WindowStart }, "window_start"},
		{"zero duration", func(c *ScheduleConfig) { c.SlotDurationMinutes = 0 }, "slot_duration_minutes"},
		{"negative duration", func(c *ScheduleConfig) { c.SlotDurationMinutes = -15 }, "slot_duration_minutes"},
		{"unknown mode", func(c *ScheduleConfig) { c.DateMode = "lunar" }, "date_mode"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := validRangeConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Field != c.wantField {
				t.Fatalf("violated field = %q, want %q", cfgErr.Field, c.wantField)
			}
		})
	}
}

func TestValidateRecurringWeekdays(t *testing.T) {
	cfg := ScheduleConfig{
		DateMode:            DateModeRecurringWeekdays,
		Weekdays:            []Weekday{Monday, Wednesday},
		WindowStart:         "10:00",
		WindowEnd:           "12:00",
		SlotDurationMinutes: 60,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid recurring config rejected: %v", err)
	}

	cfg.Weekdays = nil
	err := cfg.Validate()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "weekdays" {
		t.Fatalf("empty weekdays: got %v, want weekdays config error", err)
	}

	cfg.Weekdays = []Weekday{Monday, "funday"}
	err = cfg.Validate()
	if !errors.As(err, &cfgErr) || cfgErr.Field != "weekdays" {
		t.Fatalf("unknown weekday: got %v, want weekdays config error", err)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"09-30", 0, true},
		{"09:0a", 0, true},
		{"09:3-", 0, true},
		{"0a:30", 0, true},
		{"-9:30", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 570, 690, 1439} {
		s := FormatClock(minutes)
		back, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(FormatClock(%d)): %v", minutes, err)
		}
		if back != minutes {
			t.Fatalf("round trip %d -> %q -> %d", minutes, s, back)
		}
	}
}
