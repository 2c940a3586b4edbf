package output

import (
	"strings"
	"testing"

	"github.com/verdant/gdn/internal/models"
)

func TestHumanDate(t *testing.T) {
	const today = "2026-05-10"
	tests := []struct {
		date string
		want string
	}{
		{"2026-05-10", "today"},
		{"2026-05-09", "yesterday"},
		{"2026-05-11", "tomorrow"},
		{"2026-05-01", "2026-05-01"},
		{"2026-06-10", "2026-06-10"},
	}
	for _, tt := range tests {
		if got := HumanDate(tt.date, today); got != tt.want {
			t.Errorf("HumanDate(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health int
		filled int
	}{
		{100, 10},
		{50, 5},
		{0, 0},
		{-5, 0},
		{150, 10},
	}
	for _, tt := range tests {
		bar := HealthBar(tt.health, 10)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("HealthBar(%d) has %d filled cells, want %d", tt.health, got, tt.filled)
		}
		if got := strings.Count(bar, "░"); got != 10-tt.filled {
			t.Errorf("HealthBar(%d) has %d empty cells, want %d", tt.health, got, 10-tt.filled)
		}
	}
}

func TestFormatTaskLine(t *testing.T) {
	const today = "2026-05-10"

	task := models.Task{
		ID:       1,
		Title:    "Prune roses",
		Plant:    "Rose",
		Category: models.CategoryPruning,
		Season:   models.SeasonSpring,
		Due:      "2026-05-01",
	}

	line := FormatTaskLine(task, today)
	if !strings.Contains(line, "Prune roses") {
		t.Errorf("line missing title: %q", line)
	}
	if !strings.Contains(line, "overdue") {
		t.Errorf("past-due pending task not marked overdue: %q", line)
	}

	task.Done = true
	line = FormatTaskLine(task, today)
	if strings.Contains(line, "overdue") {
		t.Errorf("done task marked overdue: %q", line)
	}
}

func TestFormatNotification(t *testing.T) {
	n := models.Notification{
		ID:      "water-3",
		Icon:    "💧",
		Title:   "Needs watering",
		Message: "Rosie hasn't been watered recently",
	}
	line := FormatNotification(n)
	for _, want := range []string{"💧", "Needs watering", "Rosie", "water-3"} {
		if !strings.Contains(line, want) {
			t.Errorf("line missing %q: %q", want, line)
		}
	}
}
