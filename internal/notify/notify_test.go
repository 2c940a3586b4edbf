package notify

import (
	"strings"
	"testing"

	"github.com/verdant/gdn/internal/models"
)

const today = "2026-05-10"

func TestDeriveEmpty(t *testing.T) {
	if got := Derive(nil, nil, nil, today); len(got) != 0 {
		t.Errorf("Derive(empty) = %v, want none", got)
	}
}

func TestDeriveOverdueTask(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "Prune roses", Due: "2026-05-09", Done: false},
		{ID: 2, Title: "Order seeds", Due: "2026-05-09", Done: true},
		{ID: 3, Title: "Plant out squash", Due: "2026-06-01", Done: false},
		{ID: 4, Title: "No due date", Done: false},
	}

	got := Derive(tasks, nil, nil, today)
	if len(got) != 1 {
		t.Fatalf("Derive = %d notifications, want 1: %v", len(got), got)
	}

	n := got[0]
	if n.ID != "task-1" {
		t.Errorf("ID = %q, want task-1", n.ID)
	}
	if n.Title != "Task overdue" || n.Message != "Prune roses" {
		t.Errorf("notification = %+v", n)
	}
	if n.Icon != "📋" || n.Link != LinkPlanner {
		t.Errorf("presentation fields = %+v", n)
	}
}

func TestDeriveWatering(t *testing.T) {
	plants := []models.OwnedPlant{
		// Watered today: fine
		{ID: 1, Name: "Basil", Health: 100, LastWatered: "2026-05-10"},
		// Watered two days ago: still fine
		{ID: 2, Name: "Mint", Health: 100, LastWatered: "2026-05-08"},
		// Exactly three days ago: needs water
		{ID: 3, Name: "Rose", Nickname: "Rosie", Health: 100, LastWatered: "2026-05-07"},
		// Never watered: no notification
		{ID: 4, Name: "Cactus", Health: 100},
	}

	got := Derive(nil, plants, nil, today)
	if len(got) != 1 {
		t.Fatalf("Derive = %d notifications, want 1: %v", len(got), got)
	}

	n := got[0]
	if n.ID != "water-3" {
		t.Errorf("ID = %q, want water-3", n.ID)
	}
	// Nickname wins over name
	if n.Message != "Rosie hasn't been watered recently" {
		t.Errorf("Message = %q", n.Message)
	}
	if n.Icon != "💧" || n.Link != LinkMyGarden {
		t.Errorf("presentation fields = %+v", n)
	}
}

func TestDerivePests(t *testing.T) {
	long := strings.Repeat("a", 60)
	logs := []models.PestLog{
		{ID: 1, Plant: "Tomato", Notes: long, Resolved: false},
		{ID: 2, Plant: "Rose", Notes: "aphids on buds", Resolved: true},
	}

	got := Derive(nil, nil, logs, today)
	if len(got) != 1 {
		t.Fatalf("Derive = %d notifications, want 1: %v", len(got), got)
	}

	n := got[0]
	if n.ID != "pest-1" || n.Title != "Pest issue" {
		t.Errorf("notification = %+v", n)
	}
	want := "Tomato: " + strings.Repeat("a", 50)
	if n.Message != want {
		t.Errorf("Message = %q, want notes truncated to 50 runes", n.Message)
	}
	if n.Link != LinkPestTracker {
		t.Errorf("Link = %q", n.Link)
	}
}

func TestDeriveLowHealth(t *testing.T) {
	plants := []models.OwnedPlant{
		{ID: 1, Name: "Fern", Health: 45},
		{ID: 2, Name: "Ivy", Health: 60},
		{ID: 3, Name: "Palm", Health: 100},
	}

	got := Derive(nil, plants, nil, today)
	if len(got) != 1 {
		t.Fatalf("Derive = %d notifications, want 1: %v", len(got), got)
	}

	n := got[0]
	if n.ID != "health-1" {
		t.Errorf("ID = %q, want health-1", n.ID)
	}
	if n.Message != "Fern is at 45% health" {
		t.Errorf("Message = %q", n.Message)
	}
	if n.Icon != "⚠️" || n.Link != LinkPlantHealth {
		t.Errorf("presentation fields = %+v", n)
	}
}

func TestDeriveNoDedupAcrossRules(t *testing.T) {
	// One plant that is both thirsty and unhealthy appears twice
	plants := []models.OwnedPlant{
		{ID: 9, Name: "Orchid", Health: 30, LastWatered: "2026-05-01"},
	}

	got := Derive(nil, plants, nil, today)
	if len(got) != 2 {
		t.Fatalf("Derive = %d notifications, want 2: %v", len(got), got)
	}
	if got[0].ID != "water-9" || got[1].ID != "health-9" {
		t.Errorf("ids = %q, %q", got[0].ID, got[1].ID)
	}
}

func TestDeriveOrdering(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "a", Due: "2026-05-01"},
		{ID: 2, Title: "b", Due: "2026-05-02"},
	}
	plants := []models.OwnedPlant{
		{ID: 3, Name: "c", Health: 10, LastWatered: "2026-05-01"},
	}
	logs := []models.PestLog{
		{ID: 4, Plant: "d"},
	}

	got := Derive(tasks, plants, logs, today)
	want := []string{"task-1", "task-2", "water-3", "pest-4", "health-3"}
	if len(got) != len(want) {
		t.Fatalf("Derive = %d notifications, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: id = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestCenterRecomputeAfterToggle(t *testing.T) {
	c := NewCenter()
	tasks := []models.Task{{ID: 1, Title: "Weed beds", Due: "2026-05-09"}}

	c.RecomputeAt(tasks, nil, nil, today)
	if len(c.Notifications()) != 1 {
		t.Fatal("expected one overdue notification")
	}

	tasks[0].Done = true
	c.RecomputeAt(tasks, nil, nil, today)
	if len(c.Notifications()) != 0 {
		t.Error("completed task still produces a notification")
	}
}

func TestCenterDismissIsTransient(t *testing.T) {
	c := NewCenter()
	tasks := []models.Task{{ID: 1, Title: "Weed beds", Due: "2026-05-09"}}

	c.RecomputeAt(tasks, nil, nil, today)
	c.Dismiss("task-1")
	if len(c.Notifications()) != 0 {
		t.Fatal("Dismiss did not remove the notification")
	}

	// The source condition still holds, so a recompute reintroduces it
	c.RecomputeAt(tasks, nil, nil, today)
	got := c.Notifications()
	if len(got) != 1 || got[0].ID != "task-1" {
		t.Errorf("recompute after dismiss = %v", got)
	}
}

func TestCenterClear(t *testing.T) {
	c := NewCenter()
	c.RecomputeAt([]models.Task{{ID: 1, Title: "x", Due: "2026-05-01"}}, nil, nil, today)

	c.Clear()
	if len(c.Notifications()) != 0 {
		t.Error("Clear left notifications behind")
	}
}

func TestNotificationsReturnsCopy(t *testing.T) {
	c := NewCenter()
	c.RecomputeAt([]models.Task{{ID: 1, Title: "x", Due: "2026-05-01"}}, nil, nil, today)

	list := c.Notifications()
	list[0].ID = "mutated"

	if c.Notifications()[0].ID != "task-1" {
		t.Error("caller mutation leaked into the center")
	}
}
