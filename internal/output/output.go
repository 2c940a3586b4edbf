// Package output provides styled terminal output helpers (success, error,
// warning, domain formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/verdant/gdn/internal/models"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	healthStyles = map[models.HealthBucket]lipgloss.Style{
		models.HealthHealthy: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.HealthFair:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.HealthPoor:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	severityStyles = map[models.PestSeverity]lipgloss.Style{
		models.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.SeverityModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Title prints a bold heading
func Title(format string, args ...interface{}) {
	fmt.Println(titleStyle.Render(fmt.Sprintf(format, args...)))
}

// Subtle prints a dimmed message
func Subtle(format string, args ...interface{}) {
	fmt.Println(subtleStyle.Render(fmt.Sprintf(format, args...)))
}

// JSON outputs data as indented JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// FormatHealth formats a health value with its bucket color
func FormatHealth(health int) string {
	bucket := models.ClassifyHealth(health)
	return healthStyles[bucket].Render(fmt.Sprintf("%d%%", health))
}

// HealthBar renders a fixed-width bar for a 0-100 health value
func HealthBar(health int, width int) string {
	if width <= 0 {
		width = 10
	}
	if health < 0 {
		health = 0
	}
	if health > 100 {
		health = 100
	}
	filled := health * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return healthStyles[models.ClassifyHealth(health)].Render(bar)
}

// FormatSeverity formats a pest severity with color
func FormatSeverity(s models.PestSeverity) string {
	style, ok := severityStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

// FormatNotification renders one notification line
func FormatNotification(n models.Notification) string {
	return fmt.Sprintf("%s %s %s %s",
		n.Icon,
		titleStyle.Render(n.Title),
		n.Message,
		subtleStyle.Render("("+n.ID+")"))
}

// FormatTaskLine renders one planner task line
func FormatTaskLine(t models.Task, today string) string {
	check := "[ ]"
	if t.Done {
		check = successStyle.Render("[✓]")
	}
	line := fmt.Sprintf("%s %s %s", check, subtleStyle.Render(fmt.Sprintf("%d", t.ID)), t.Title)
	if t.Plant != "" {
		line += subtleStyle.Render(" · " + t.Plant)
	}
	line += accentStyle.Render(fmt.Sprintf(" [%s/%s]", t.Season, t.Category))
	if t.Due != "" {
		due := "due " + HumanDate(t.Due, today)
		if !t.Done && t.Due <= today {
			due = "overdue, " + due
			line += " " + errorStyle.Render(due)
		} else {
			line += " " + subtleStyle.Render(due)
		}
	}
	return line
}

// HumanDate renders a stored date relative to today where it reads better
// ("today", "yesterday", "tomorrow"), the raw date otherwise.
func HumanDate(date, today string) string {
	if date == today {
		return "today"
	}
	t, err := time.Parse(models.DateFormat, today)
	if err != nil {
		return date
	}
	switch date {
	case models.FormatDate(t.AddDate(0, 0, -1)):
		return "yesterday"
	case models.FormatDate(t.AddDate(0, 0, 1)):
		return "tomorrow"
	}
	return date
}
