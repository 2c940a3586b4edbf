package garden

import (
	"reflect"
	"testing"
	"time"

	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/store"
)

var testNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func openTestState(t *testing.T) (*State, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	s := Open(st)
	s.SetNowFunc(func() time.Time { return testNow })
	return s, st
}

func TestAddPlantStamps(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	p, err := s.AddPlant(models.OwnedPlant{
		PlantID: 12,
		Name:    "Basil",
		// Caller-supplied values that must be overwritten
		ID:        999,
		Health:    5,
		AddedDate: "1999-01-01",
	})
	if err != nil {
		t.Fatalf("AddPlant: %v", err)
	}

	if p.ID == 999 || p.ID == 0 {
		t.Errorf("AddPlant: id not stamped, got %d", p.ID)
	}
	if p.Health != 100 {
		t.Errorf("AddPlant: health = %d, want 100", p.Health)
	}
	if p.AddedDate != "2026-05-10" {
		t.Errorf("AddPlant: addedDate = %q, want 2026-05-10", p.AddedDate)
	}
	if p.LastWatered != "" {
		t.Errorf("AddPlant: lastWatered = %q, want empty", p.LastWatered)
	}
}

func TestWaterAndHealth(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	p, _ := s.AddPlant(models.OwnedPlant{Name: "Mint"})

	if err := s.WaterPlant(p.ID); err != nil {
		t.Fatalf("WaterPlant: %v", err)
	}
	if err := s.UpdatePlantHealth(p.ID, 55); err != nil {
		t.Fatalf("UpdatePlantHealth: %v", err)
	}

	plants := s.Plants()
	if len(plants) != 1 {
		t.Fatalf("Plants: got %d, want 1", len(plants))
	}
	if plants[0].LastWatered != "2026-05-10" {
		t.Errorf("lastWatered = %q", plants[0].LastWatered)
	}
	if plants[0].Health != 55 {
		t.Errorf("health = %d, want 55", plants[0].Health)
	}

	// Unknown id is a silent no-op
	if err := s.WaterPlant(424242); err != nil {
		t.Errorf("WaterPlant unknown id: %v", err)
	}
}

func TestRemovePlant(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	a, _ := s.AddPlant(models.OwnedPlant{Name: "Rose"})
	b, _ := s.AddPlant(models.OwnedPlant{Name: "Sage"})

	if err := s.RemovePlant(a.ID); err != nil {
		t.Fatalf("RemovePlant: %v", err)
	}

	plants := s.Plants()
	if len(plants) != 1 || plants[0].ID != b.ID {
		t.Errorf("Plants after remove = %+v", plants)
	}
}

func TestTaskLifecycle(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	task, err := s.AddTask(models.Task{Title: "Prune roses", Season: models.SeasonSpring, Done: true})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Done {
		t.Error("AddTask: done flag not reset")
	}

	if err := s.ToggleTask(task.ID); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if !s.Tasks()[0].Done {
		t.Error("ToggleTask: still pending")
	}
	if err := s.ToggleTask(task.ID); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if s.Tasks()[0].Done {
		t.Error("ToggleTask: did not flip back")
	}

	if err := s.RemoveTask(task.ID); err != nil {
		t.Fatalf("RemoveTask: %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Error("RemoveTask: task still present")
	}
}

func TestJournalPrependAndTags(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	first, _ := s.AddJournalEntry(models.JournalEntry{Title: "Seedlings up"}, "")
	second, _ := s.AddJournalEntry(models.JournalEntry{Title: "First true leaves"}, " spring , seedlings ,, ")

	entries := s.Journal()
	if len(entries) != 2 {
		t.Fatalf("Journal: got %d entries, want 2", len(entries))
	}
	// Newest first
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("Journal order wrong: %+v", entries)
	}
	if entries[0].Date != "2026-05-10" {
		t.Errorf("entry date = %q", entries[0].Date)
	}
	if want := []string{"spring", "seedlings"}; !reflect.DeepEqual(entries[0].Tags, want) {
		t.Errorf("tags = %v, want %v", entries[0].Tags, want)
	}
	if entries[1].Tags != nil {
		t.Errorf("empty raw tags should yield nil, got %v", entries[1].Tags)
	}
}

func TestHarvestAppend(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	a, _ := s.AddHarvest(models.Harvest{Plant: "Tomato", Amount: "2 kg"})
	b, _ := s.AddHarvest(models.Harvest{Plant: "Cucumber", Amount: "4"})

	harvests := s.Harvests()
	if len(harvests) != 2 || harvests[0].ID != a.ID || harvests[1].ID != b.ID {
		t.Errorf("Harvests order wrong: %+v", harvests)
	}
	if harvests[0].Date != "2026-05-10" {
		t.Errorf("harvest date = %q", harvests[0].Date)
	}
}

func TestPestLogResolveIsOneWay(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	l, err := s.AddPestLog(models.PestLog{PestID: 1, Plant: "Tomato", Severity: models.SeverityModerate, Resolved: true})
	if err != nil {
		t.Fatalf("AddPestLog: %v", err)
	}
	if l.Resolved {
		t.Error("AddPestLog: resolved flag not reset")
	}

	if err := s.ResolvePestLog(l.ID); err != nil {
		t.Fatalf("ResolvePestLog: %v", err)
	}
	if !s.PestLogs()[0].Resolved {
		t.Error("ResolvePestLog: still unresolved")
	}

	// Resolving again stays resolved
	if err := s.ResolvePestLog(l.ID); err != nil {
		t.Fatalf("ResolvePestLog again: %v", err)
	}
	if !s.PestLogs()[0].Resolved {
		t.Error("ResolvePestLog: flipped back")
	}
}

func TestLayoutOperations(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	p, err := s.AddToLayout(models.LayoutPlacement{PlantID: 1, Name: "Tomato", Emoji: "🍅", X: 2, Y: 3})
	if err != nil {
		t.Fatalf("AddToLayout: %v", err)
	}

	if got, ok := s.PlacementAt(2, 3); !ok || got.ID != p.ID {
		t.Error("PlacementAt: placement not found")
	}
	if _, ok := s.PlacementAt(0, 0); ok {
		t.Error("PlacementAt: found placement in empty cell")
	}

	if err := s.RemoveFromLayout(p.ID); err != nil {
		t.Fatalf("RemoveFromLayout: %v", err)
	}
	if len(s.Layout()) != 0 {
		t.Error("RemoveFromLayout: placement still present")
	}

	s.AddToLayout(models.LayoutPlacement{X: 1, Y: 1})
	if err := s.UpdateLayout(nil); err != nil {
		t.Fatalf("UpdateLayout: %v", err)
	}
	if len(s.Layout()) != 0 {
		t.Error("UpdateLayout(nil): layout not cleared")
	}
}

func TestMutatorsNoopWithoutAccount(t *testing.T) {
	s, st := openTestState(t)

	if p, err := s.AddPlant(models.OwnedPlant{Name: "Fern"}); err != nil || p.ID != 0 {
		t.Errorf("AddPlant without account = %+v, %v", p, err)
	}
	if task, err := s.AddTask(models.Task{Title: "x"}); err != nil || task.ID != 0 {
		t.Errorf("AddTask without account = %+v, %v", task, err)
	}

	// Nothing was written
	if _, ok := st.Get(store.AccountKey(0, store.SuffixPlants)); ok {
		t.Error("no-op mutation wrote to the store")
	}
}

func TestAccountIsolation(t *testing.T) {
	s, _ := openTestState(t)

	s.Load(1)
	s.AddPlant(models.OwnedPlant{Name: "Tomato"})
	s.AddTask(models.Task{Title: "Water everything"})

	s.Load(2)
	if len(s.Plants()) != 0 || len(s.Tasks()) != 0 {
		t.Fatal("account 2 sees account 1 collections")
	}
	s.AddPlant(models.OwnedPlant{Name: "Orchid"})

	s.Load(1)
	plants := s.Plants()
	if len(plants) != 1 || plants[0].Name != "Tomato" {
		t.Errorf("account 1 collections lost: %+v", plants)
	}
}

func TestPersistenceRoundtrip(t *testing.T) {
	s, st := openTestState(t)
	s.Load(7)

	s.AddPlant(models.OwnedPlant{Name: "Lavender", Nickname: "Lavvy"})
	s.AddTask(models.Task{Title: "Mulch beds", Season: models.SeasonFall})

	// Fresh state over the same store
	s2 := Open(st)
	s2.Load(7)

	plants := s2.Plants()
	if len(plants) != 1 || plants[0].Nickname != "Lavvy" {
		t.Errorf("plants not persisted: %+v", plants)
	}
	tasks := s2.Tasks()
	if len(tasks) != 1 || tasks[0].Season != models.SeasonFall {
		t.Errorf("tasks not persisted: %+v", tasks)
	}
}

func TestThemeToggle(t *testing.T) {
	s, st := openTestState(t)

	if s.Theme() != models.ThemeLight {
		t.Errorf("default theme = %q, want light", s.Theme())
	}

	theme, err := s.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if theme != models.ThemeDark {
		t.Errorf("ToggleTheme = %q, want dark", theme)
	}

	// Theme is global and survives reopen
	s2 := Open(st)
	if s2.Theme() != models.ThemeDark {
		t.Errorf("theme not persisted: %q", s2.Theme())
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := openTestState(t)
	s.Load(1)

	var events []Collection
	s.Subscribe(func(c Collection) { events = append(events, c) })

	s.AddPlant(models.OwnedPlant{Name: "Ivy"})
	s.AddTask(models.Task{Title: "Repot ivy"})
	s.AddHarvest(models.Harvest{Plant: "Ivy"})

	want := []Collection{CollectionPlants, CollectionTasks, CollectionHarvests}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{" , , ", nil},
		{"spring", []string{"spring"}},
		{"a, b ,c", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		if got := SplitTags(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
