// Package dateparse turns human date input into stored calendar dates
// (YYYY-MM-DD).
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verdant/gdn/internal/models"
)

// Parse parses a date input string into a calendar date, using the current
// time as the reference point.
//
// Supported forms:
//   - exact dates: "2026-04-12"
//   - keywords: "today", "tomorrow"
//   - relative offsets: "+3d", "+2w", "+1m"
//   - weekday names: "saturday" (next occurrence)
func Parse(input string) (string, error) {
	return ParseFrom(input, time.Now())
}

// ParseFrom parses a date input relative to the given reference time.
// Tests use this variant to pin "now".
func ParseFrom(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return "", fmt.Errorf("empty date input")
	}

	if t, err := time.Parse(models.DateFormat, input); err == nil {
		return models.FormatDate(t), nil
	}

	switch input {
	case "today":
		return models.FormatDate(now), nil
	case "tomorrow":
		return models.FormatDate(now.AddDate(0, 0, 1)), nil
	}

	if strings.HasPrefix(input, "+") {
		return parseOffset(input, now)
	}

	if wd, ok := weekdays[input]; ok {
		ahead := (int(wd) - int(now.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7 // always the next occurrence, never today
		}
		return models.FormatDate(now.AddDate(0, 0, ahead)), nil
	}

	return "", fmt.Errorf("unrecognized date: %q (try YYYY-MM-DD, today, tomorrow, +Nd/+Nw/+Nm, or a weekday)", input)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// parseOffset handles +Nd (days), +Nw (weeks), +Nm (months)
func parseOffset(input string, now time.Time) (string, error) {
	if len(input) < 3 {
		return "", fmt.Errorf("incomplete offset: %q", input)
	}
	unit := input[len(input)-1]
	n, err := strconv.Atoi(input[1 : len(input)-1])
	if err != nil || n < 0 {
		return "", fmt.Errorf("bad offset amount in %q", input)
	}
	switch unit {
	case 'd':
		return models.FormatDate(now.AddDate(0, 0, n)), nil
	case 'w':
		return models.FormatDate(now.AddDate(0, 0, n*7)), nil
	case 'm':
		return models.FormatDate(now.AddDate(0, n, 0)), nil
	}
	return "", fmt.Errorf("unknown offset unit %q in %q (use d, w, or m)", string(unit), input)
}
