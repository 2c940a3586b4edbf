package dateparse

import (
	"testing"
	"time"
)

// Fixed reference time: Wednesday, 2026-02-18 12:00:00 UTC
var testNow = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

func TestParseFrom_ExactDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-03-01", "2026-03-01"},
		{"2025-12-31", "2025-12-31"},
		{"2026-01-01", "2026-01-01"},
	}
	for _, tt := range tests {
		got, err := ParseFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFrom(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseFrom_Keywords(t *testing.T) {
	got, err := ParseFrom("today", testNow)
	if err != nil || got != "2026-02-18" {
		t.Errorf("ParseFrom(today) = %q, %v; want 2026-02-18", got, err)
	}
	got, err = ParseFrom("Tomorrow", testNow)
	if err != nil || got != "2026-02-19" {
		t.Errorf("ParseFrom(Tomorrow) = %q, %v; want 2026-02-19", got, err)
	}
}

func TestParseFrom_RelativeOffsets(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+0d", "2026-02-18"},
		{"+1d", "2026-02-19"},
		{"+10d", "2026-02-28"},
		{"+14d", "2026-03-04"},
		{"+1w", "2026-02-25"},
		{"+2w", "2026-03-04"},
		{"+1m", "2026-03-18"},
	}
	for _, tt := range tests {
		got, err := ParseFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFrom(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseFrom_Weekdays(t *testing.T) {
	// Reference is a Wednesday
	tests := []struct {
		input string
		want  string
	}{
		{"thursday", "2026-02-19"},
		{"saturday", "2026-02-21"},
		{"monday", "2026-02-23"},
		// Same weekday rolls to next week, never today
		{"wednesday", "2026-02-25"},
	}
	for _, tt := range tests {
		got, err := ParseFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFrom(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseFrom_Invalid(t *testing.T) {
	for _, input := range []string{"", "someday", "+d", "+3x", "+-2d", "02-18-2026"} {
		if _, err := ParseFrom(input, testNow); err == nil {
			t.Errorf("ParseFrom(%q): expected error, got nil", input)
		}
	}
}
