package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/output"
)

// renderView renders the complete dashboard view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	if m.Width < MinWidth || m.Height < MinHeight {
		return m.renderCompact()
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	// Four stacked panels plus a footer line
	availableHeight := m.Height - 2
	panelHeight := availableHeight / panelCount

	gardenPanel := m.renderGardenPanel(panelHeight)
	tasksPanel := m.renderTasksPanel(panelHeight)
	notifPanel := m.renderNotificationsPanel(panelHeight)
	activityPanel := m.renderActivityPanel(panelHeight)

	panels := lipgloss.JoinVertical(lipgloss.Left,
		gardenPanel,
		tasksPanel,
		notifPanel,
		activityPanel,
	)

	return lipgloss.JoinVertical(lipgloss.Left, panels, m.renderFooter())
}

// renderCompact renders a minimal view for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder

	s.WriteString("gdn dashboard (resize for full view)\n\n")
	s.WriteString(fmt.Sprintf("Plants: %d\n", len(m.Plants)))

	pending := 0
	for _, t := range m.Tasks {
		if !t.Done {
			pending++
		}
	}
	s.WriteString(fmt.Sprintf("Pending tasks: %d\n", pending))
	s.WriteString(fmt.Sprintf("Notifications: %d\n", len(m.Notifications)))

	s.WriteString("\nq:quit r:refresh ?:help")

	return s.String()
}

// renderGardenPanel renders the plant overview panel (Panel 1)
func (m Model) renderGardenPanel(height int) string {
	var content strings.Builder

	if len(m.Plants) == 0 {
		content.WriteString(subtleStyle.Render("No plants yet. Add one with 'gdn plant add'."))
		return m.wrapPanel(m.gardenTitle(), content.String(), height, PanelGarden)
	}

	offset := m.ScrollOffset[PanelGarden]
	visible := visibleItems(len(m.Plants), offset, height-3)

	for i := offset; i < offset+visible && i < len(m.Plants); i++ {
		p := m.Plants[i]
		line := fmt.Sprintf("%s %s %s %s",
			titleStyle.Render(p.DisplayName()),
			output.HealthBar(p.Health, 10),
			formatHealthValue(p.Health),
			subtleStyle.Render(waterNote(p)),
		)
		content.WriteString(line)
		content.WriteString("\n")
	}

	return m.wrapPanel(m.gardenTitle(), content.String(), height, PanelGarden)
}

func (m Model) gardenTitle() string {
	if m.GardenName != "" {
		return strings.ToUpper(m.GardenName)
	}
	return "MY GARDEN"
}

// waterNote summarizes the last-watered date for a plant row
func waterNote(p models.OwnedPlant) string {
	if p.LastWatered == "" {
		return "never watered"
	}
	return "watered " + p.LastWatered
}

// renderTasksPanel renders the seasonal task panel (Panel 2)
func (m Model) renderTasksPanel(height int) string {
	var content strings.Builder

	tasks := m.filteredTasks()

	if m.Filtering || m.FilterInput.Value() != "" {
		content.WriteString(m.FilterInput.View())
		content.WriteString("\n")
	}

	if len(tasks) == 0 {
		content.WriteString(subtleStyle.Render("No tasks"))
		return m.wrapPanel("TASKS", content.String(), height, PanelTasks)
	}

	today := time.Now().Format(models.DateFormat)
	offset := m.ScrollOffset[PanelTasks]
	visible := visibleItems(len(tasks), offset, height-3)

	for i := offset; i < offset+visible && i < len(tasks); i++ {
		t := tasks[i]
		content.WriteString(m.formatTaskRow(t, today))
		content.WriteString("\n")
	}

	return m.wrapPanel("TASKS", content.String(), height, PanelTasks)
}

// filteredTasks applies the filter input to the task snapshot
func (m Model) filteredTasks() []models.Task {
	query := strings.ToLower(strings.TrimSpace(m.FilterInput.Value()))
	if query == "" {
		return m.Tasks
	}
	var out []models.Task
	for _, t := range m.Tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Plant), query) ||
			strings.Contains(strings.ToLower(string(t.Season)), query) {
			out = append(out, t)
		}
	}
	return out
}

// formatTaskRow formats one task line with status, season, and due date
func (m Model) formatTaskRow(t models.Task, today string) string {
	check := "[ ]"
	title := t.Title
	if t.Done {
		check = "[x]"
		title = doneStyle.Render(title)
	}

	parts := []string{check, title, subtleStyle.Render(string(t.Season))}

	if t.Due != "" {
		due := dateStyle.Render("due " + t.Due)
		if !t.Done && t.Due < today {
			due = overdueAlertStyle.Render(" OVERDUE ") + " " + due
		}
		parts = append(parts, due)
	}

	return strings.Join(parts, " ")
}

// renderNotificationsPanel renders the notification feed panel (Panel 3)
func (m Model) renderNotificationsPanel(height int) string {
	var content strings.Builder

	if len(m.Notifications) == 0 {
		content.WriteString(subtleStyle.Render("All quiet in the garden 🌿"))
		return m.wrapPanel("NOTIFICATIONS", content.String(), height, PanelNotifications)
	}

	cursor := m.ScrollOffset[PanelNotifications]
	isActive := m.ActivePanel == PanelNotifications
	offset := 0
	if cursor >= height-3 {
		offset = cursor - (height - 4)
	}
	visible := visibleItems(len(m.Notifications), offset, height-3)

	for i := offset; i < offset+visible && i < len(m.Notifications); i++ {
		n := m.Notifications[i]
		line := fmt.Sprintf("%s %s %s", n.Icon, titleStyle.Render(n.Title), n.Message)
		if isActive && cursor == i {
			line = "> " + line
		} else {
			line = "  " + line
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	return m.wrapPanel("NOTIFICATIONS", content.String(), height, PanelNotifications)
}

// renderActivityPanel renders the journal and harvest feed panel (Panel 4)
func (m Model) renderActivityPanel(height int) string {
	var content strings.Builder

	if len(m.Activity) == 0 {
		content.WriteString(subtleStyle.Render("No recent activity"))
		return m.wrapPanel("RECENT ACTIVITY", content.String(), height, PanelActivity)
	}

	offset := m.ScrollOffset[PanelActivity]
	visible := visibleItems(len(m.Activity), offset, height-3)

	for i := offset; i < offset+visible && i < len(m.Activity); i++ {
		item := m.Activity[i]
		line := fmt.Sprintf("%s %s %s",
			dateStyle.Render(item.Date),
			formatActivityBadge(item.Kind),
			item.Line,
		)
		content.WriteString(line)
		content.WriteString("\n")
	}

	return m.wrapPanel("RECENT ACTIVITY", content.String(), height, PanelActivity)
}

// renderFooter renders the key hints plus an overdue alert and refresh time
func (m Model) renderFooter() string {
	keys := helpStyle.Render("q:quit  tab:switch  j/k:scroll  /:filter  d:dismiss  r:refresh  ?:help")

	overdue := 0
	today := time.Now().Format(models.DateFormat)
	for _, t := range m.Tasks {
		if !t.Done && t.Due != "" && t.Due < today {
			overdue++
		}
	}
	alert := ""
	if overdue > 0 {
		alert = overdueAlertStyle.Render(fmt.Sprintf(" %d OVERDUE ", overdue))
	}

	refresh := dateStyle.Render(fmt.Sprintf("Last: %s", m.LastRefresh.Format("15:04:05")))

	padding := m.Width - lipgloss.Width(keys) - lipgloss.Width(alert) - lipgloss.Width(refresh) - 2
	if padding < 0 {
		padding = 0
	}

	return fmt.Sprintf(" %s%s%s%s", keys, strings.Repeat(" ", padding), alert, refresh)
}

// renderHelp renders the help overlay
func (m Model) renderHelp() string {
	help := `
GDN DASHBOARD - Key Bindings

NAVIGATION:
  Tab / Shift+Tab   Switch between panels
  1 / 2 / 3 / 4     Jump to panel
  j / k             Scroll active panel

ACTIONS:
  /                 Filter tasks (esc clears, enter keeps)
  d                 Dismiss selected notification
  r                 Force refresh
  q / Ctrl+C        Quit

Press ? to close help
`
	return helpStyle.Render(help)
}

// wrapPanel wraps content in a titled panel with border
func (m Model) wrapPanel(title, content string, height int, panel Panel) string {
	style := panelStyle
	if m.ActivePanel == panel {
		style = activePanelStyle
	}

	titleStr := panelTitleStyle.Render(title)
	contentWidth := m.Width - 4
	contentHeight := height - 3

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	for i, line := range lines {
		if lipgloss.Width(line) > contentWidth {
			lines[i] = ansi.Truncate(line, contentWidth, "…")
		}
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, titleStr, strings.Join(lines, "\n"))

	return style.Width(m.Width - 2).Render(inner)
}

// visibleItems calculates how many rows fit given scroll offset and height
func visibleItems(total, offset, height int) int {
	remaining := total - offset
	if remaining > height {
		return height
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}
