package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/verdant/gdn/internal/garden"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/notify"
)

// Panel identifies which panel is active
type Panel int

const (
	PanelGarden Panel = iota
	PanelTasks
	PanelNotifications
	PanelActivity
)

const panelCount = 4

// ActivityItem is a unified journal or harvest entry for the activity panel
type ActivityItem struct {
	Date string
	Kind string // "journal" or "harvest"
	Line string
}

// Model is the Bubble Tea model for the dashboard TUI
type Model struct {
	State      *garden.State
	Center     *notify.Center
	AccountID  int64
	GardenName string

	Width  int
	Height int

	// Panel data snapshots
	Plants        []models.OwnedPlant
	Tasks         []models.Task
	Notifications []models.Notification
	Activity      []ActivityItem

	// UI state
	ActivePanel  Panel
	ScrollOffset map[Panel]int
	ShowHelp     bool
	LastRefresh  time.Time

	// Task filter
	FilterInput textinput.Model
	Filtering   bool

	RefreshInterval time.Duration
}

// MinWidth is the minimum terminal width for proper display
const MinWidth = 40

// MinHeight is the minimum terminal height for proper display
const MinHeight = 16

// TickMsg triggers a data refresh
type TickMsg time.Time

// RefreshDataMsg carries refreshed panel data
type RefreshDataMsg struct {
	Plants        []models.OwnedPlant
	Tasks         []models.Task
	Notifications []models.Notification
	Activity      []ActivityItem
	Timestamp     time.Time
}

// NewModel creates a dashboard model for the signed-in account
func NewModel(state *garden.State, center *notify.Center, accountID int64, gardenName string, interval time.Duration) Model {
	filter := textinput.New()
	filter.Placeholder = "filter tasks"
	filter.CharLimit = 40
	filter.Width = 24

	return Model{
		State:           state,
		Center:          center,
		AccountID:       accountID,
		GardenName:      gardenName,
		RefreshInterval: interval,
		ScrollOffset:    make(map[Panel]int),
		ActivePanel:     PanelGarden,
		FilterInput:     filter,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchData(),
		m.scheduleTick(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case TickMsg:
		return m, tea.Batch(m.fetchData(), m.scheduleTick())

	case RefreshDataMsg:
		m.Plants = msg.Plants
		m.Tasks = msg.Tasks
		m.Notifications = msg.Notifications
		m.Activity = msg.Activity
		m.LastRefresh = msg.Timestamp
		return m, nil
	}

	return m, nil
}

// handleKey processes key input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter mode captures everything except escape and enter
	if m.Filtering {
		switch msg.String() {
		case "esc":
			m.Filtering = false
			m.FilterInput.SetValue("")
			m.FilterInput.Blur()
			return m, nil
		case "enter":
			m.Filtering = false
			m.FilterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.FilterInput, cmd = m.FilterInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.ActivePanel = (m.ActivePanel + 1) % panelCount
		return m, nil

	case "shift+tab":
		m.ActivePanel = (m.ActivePanel + panelCount - 1) % panelCount
		return m, nil

	case "1":
		m.ActivePanel = PanelGarden
		return m, nil

	case "2":
		m.ActivePanel = PanelTasks
		return m, nil

	case "3":
		m.ActivePanel = PanelNotifications
		return m, nil

	case "4":
		m.ActivePanel = PanelActivity
		return m, nil

	case "j", "down":
		m.ScrollOffset[m.ActivePanel]++
		return m, nil

	case "k", "up":
		if m.ScrollOffset[m.ActivePanel] > 0 {
			m.ScrollOffset[m.ActivePanel]--
		}
		return m, nil

	case "/":
		m.ActivePanel = PanelTasks
		m.Filtering = true
		return m, m.FilterInput.Focus()

	case "d":
		if m.ActivePanel == PanelNotifications {
			return m.dismissSelected()
		}
		return m, nil

	case "r":
		return m, m.fetchData()

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	return m, nil
}

// dismissSelected dismisses the notification at the scroll cursor
func (m Model) dismissSelected() (tea.Model, tea.Cmd) {
	idx := m.ScrollOffset[PanelNotifications]
	if idx < len(m.Notifications) {
		m.Center.Dismiss(m.Notifications[idx].ID)
		m.Notifications = m.Center.Notifications()
		if idx >= len(m.Notifications) && idx > 0 {
			m.ScrollOffset[PanelNotifications] = idx - 1
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

// scheduleTick returns a command that sends a TickMsg after the refresh interval
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchData returns a command that reloads state and sends a RefreshDataMsg
func (m Model) fetchData() tea.Cmd {
	return func() tea.Msg {
		return FetchData(m.State, m.Center, m.AccountID)
	}
}
