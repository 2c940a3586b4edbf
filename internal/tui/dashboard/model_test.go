package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verdant/gdn/internal/garden"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/notify"
	"github.com/verdant/gdn/internal/store"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel() Model {
	m := NewModel(nil, notify.NewCenter(), 1, "Test Garden", time.Second)
	m.Width = 80
	m.Height = 30
	return m
}

func TestTabCyclesPanels(t *testing.T) {
	m := newTestModel()

	for i, want := range []Panel{PanelTasks, PanelNotifications, PanelActivity, PanelGarden} {
		updated, _ := m.Update(keyMsg("tab"))
		m = updated.(Model)
		if m.ActivePanel != want {
			t.Fatalf("tab %d: panel = %d, want %d", i+1, m.ActivePanel, want)
		}
	}
}

func TestNumberKeysJumpToPanel(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(keyMsg("3"))
	m = updated.(Model)
	if m.ActivePanel != PanelNotifications {
		t.Errorf("panel = %d, want notifications", m.ActivePanel)
	}
}

func TestScrollClampsAtZero(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(keyMsg("k"))
	m = updated.(Model)
	if m.ScrollOffset[PanelGarden] != 0 {
		t.Errorf("scroll went negative: %d", m.ScrollOffset[PanelGarden])
	}

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(Model)
	if m.ScrollOffset[PanelGarden] != 0 {
		t.Errorf("scroll = %d, want 0", m.ScrollOffset[PanelGarden])
	}
}

func TestRefreshDataMsgUpdatesSnapshots(t *testing.T) {
	m := newTestModel()

	msg := RefreshDataMsg{
		Plants:    []models.OwnedPlant{{ID: 1, Name: "Basil", Health: 90}},
		Tasks:     []models.Task{{ID: 2, Title: "Water basil"}},
		Activity:  []ActivityItem{{Date: "2026-05-10", Kind: "journal", Line: "Planted basil"}},
		Timestamp: time.Now(),
	}

	updated, _ := m.Update(msg)
	m = updated.(Model)

	if len(m.Plants) != 1 || len(m.Tasks) != 1 || len(m.Activity) != 1 {
		t.Errorf("snapshots not applied: %d plants, %d tasks, %d activity",
			len(m.Plants), len(m.Tasks), len(m.Activity))
	}
}

func TestDismissSelectedNotification(t *testing.T) {
	m := newTestModel()
	m.Center.RecomputeAt([]models.Task{{ID: 1, Title: "Weed", Due: "2026-01-01"}}, nil, nil, "2026-05-10")
	m.Notifications = m.Center.Notifications()
	m.ActivePanel = PanelNotifications

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)

	if len(m.Notifications) != 0 {
		t.Errorf("notification not dismissed: %v", m.Notifications)
	}
	if len(m.Center.Notifications()) != 0 {
		t.Error("center still holds dismissed notification")
	}
}

func TestFilterTasks(t *testing.T) {
	m := newTestModel()
	m.Tasks = []models.Task{
		{ID: 1, Title: "Water tomatoes", Plant: "Tomato"},
		{ID: 2, Title: "Prune roses", Plant: "Rose"},
	}

	m.FilterInput.SetValue("rose")
	got := m.filteredTasks()
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("filteredTasks = %+v", got)
	}

	m.FilterInput.SetValue("")
	if len(m.filteredTasks()) != 2 {
		t.Error("empty filter should return all tasks")
	}
}

func TestViewSmallTerminal(t *testing.T) {
	m := newTestModel()
	m.Width = 30
	m.Height = 8

	out := m.View()
	if !strings.Contains(out, "resize for full view") {
		t.Errorf("compact view not rendered: %q", out)
	}
}

func TestViewRendersPanels(t *testing.T) {
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer st.Close()

	state := garden.Open(st)
	state.Load(1)
	state.AddPlant(models.OwnedPlant{Name: "Basil"})

	m := NewModel(state, notify.NewCenter(), 1, "Test Garden", time.Second)
	m.Width = 100
	m.Height = 40

	msg := FetchData(state, m.Center, 1)
	updated, _ := m.Update(msg)
	m = updated.(Model)

	out := m.View()
	for _, want := range []string{"TEST GARDEN", "TASKS", "NOTIFICATIONS", "RECENT ACTIVITY", "Basil"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
