package dashboard

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/verdant/gdn/internal/models"
)

var (
	// Base colors
	primaryColor = lipgloss.Color("42")
	mutedColor   = lipgloss.Color("241")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	// Text styles
	titleStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	doneStyle   = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)

	// Health bucket styles
	healthStyles = map[models.HealthBucket]lipgloss.Style{
		models.HealthHealthy: lipgloss.NewStyle().Foreground(primaryColor),
		models.HealthFair:    lipgloss.NewStyle().Foreground(warningColor),
		models.HealthPoor:    lipgloss.NewStyle().Foreground(errorColor).Bold(true),
	}

	// Activity kind badges
	journalBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	harvestBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// Footer alert when overdue tasks exist
	overdueAlertStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(errorColor)
)

// formatHealthValue renders a health percentage with bucket color
func formatHealthValue(health int) string {
	style, ok := healthStyles[models.ClassifyHealth(health)]
	if !ok {
		return strconv.Itoa(health) + "%"
	}
	return style.Render(strconv.Itoa(health) + "%")
}

// formatActivityBadge renders the activity kind badge
func formatActivityBadge(kind string) string {
	switch kind {
	case "journal":
		return journalBadge.Render("[JRN]")
	case "harvest":
		return harvestBadge.Render("[HRV]")
	default:
		return subtleStyle.Render("[???]")
	}
}
