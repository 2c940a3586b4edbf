// Package garden holds the per-account garden state: the six mutable
// collections plus the global theme. Every mutation persists the affected
// collection under its account-scoped key and publishes a collection-changed
// event to subscribers.
package garden

import (
	"strings"
	"time"

	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/store"
)

// State is the in-memory garden state for the loaded account. Mutators are
// no-ops until Load has been called with an account id. Not-found ids on
// mutate-by-id operations are silent no-ops as well.
type State struct {
	store     *store.Store
	accountID int64

	plants   []models.OwnedPlant
	tasks    []models.Task
	journal  []models.JournalEntry
	harvests []models.Harvest
	pestLogs []models.PestLog
	layout   []models.LayoutPlacement
	theme    models.Theme

	subs []func(Collection)

	// now is swappable for deterministic tests
	now func() time.Time
}

// Open creates a State bound to the store. The theme is global and loaded
// immediately; collections are loaded per account via Load.
func Open(st *store.Store) *State {
	s := &State{store: st, theme: models.ThemeLight, now: time.Now}
	var theme models.Theme
	if st.GetJSON(store.KeyTheme, &theme) && (theme == models.ThemeLight || theme == models.ThemeDark) {
		s.theme = theme
	}
	return s
}

// Load replaces all six collections with the given account's persisted
// data. A missing or corrupt key yields an empty collection, never an error.
func (s *State) Load(accountID int64) {
	s.accountID = accountID
	s.plants = nil
	s.tasks = nil
	s.journal = nil
	s.harvests = nil
	s.pestLogs = nil
	s.layout = nil

	s.store.GetJSON(CollectionPlants.Key(accountID), &s.plants)
	s.store.GetJSON(CollectionTasks.Key(accountID), &s.tasks)
	s.store.GetJSON(CollectionJournal.Key(accountID), &s.journal)
	s.store.GetJSON(CollectionHarvests.Key(accountID), &s.harvests)
	s.store.GetJSON(CollectionPestLogs.Key(accountID), &s.pestLogs)
	s.store.GetJSON(CollectionLayout.Key(accountID), &s.layout)
}

// Subscribe registers fn to be called synchronously after every successful
// mutation with the collection that changed.
func (s *State) Subscribe(fn func(Collection)) {
	s.subs = append(s.subs, fn)
}

func (s *State) publish(c Collection) {
	for _, fn := range s.subs {
		fn(c)
	}
}

func (s *State) today() string {
	return models.FormatDate(s.now())
}

// Plants returns a copy of the owned plants
func (s *State) Plants() []models.OwnedPlant {
	out := make([]models.OwnedPlant, len(s.plants))
	copy(out, s.plants)
	return out
}

// Tasks returns a copy of the tasks
func (s *State) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Journal returns a copy of the journal entries, newest first
func (s *State) Journal() []models.JournalEntry {
	out := make([]models.JournalEntry, len(s.journal))
	copy(out, s.journal)
	return out
}

// Harvests returns a copy of the harvest records
func (s *State) Harvests() []models.Harvest {
	out := make([]models.Harvest, len(s.harvests))
	copy(out, s.harvests)
	return out
}

// PestLogs returns a copy of the pest logs
func (s *State) PestLogs() []models.PestLog {
	out := make([]models.PestLog, len(s.pestLogs))
	copy(out, s.pestLogs)
	return out
}

// Layout returns a copy of the garden layout placements
func (s *State) Layout() []models.LayoutPlacement {
	out := make([]models.LayoutPlacement, len(s.layout))
	copy(out, s.layout)
	return out
}

// Theme returns the current global theme
func (s *State) Theme() models.Theme {
	return s.theme
}

// ToggleTheme flips the global theme and persists it. The theme is not
// scoped to any account.
func (s *State) ToggleTheme() (models.Theme, error) {
	s.theme = s.theme.Toggle()
	return s.theme, s.store.SetJSON(store.KeyTheme, s.theme)
}

// commit persists the named collection and publishes its change event
func (s *State) commit(c Collection) error {
	var err error
	switch c {
	case CollectionPlants:
		err = s.store.SetJSON(c.Key(s.accountID), s.plants)
	case CollectionTasks:
		err = s.store.SetJSON(c.Key(s.accountID), s.tasks)
	case CollectionJournal:
		err = s.store.SetJSON(c.Key(s.accountID), s.journal)
	case CollectionHarvests:
		err = s.store.SetJSON(c.Key(s.accountID), s.harvests)
	case CollectionPestLogs:
		err = s.store.SetJSON(c.Key(s.accountID), s.pestLogs)
	case CollectionLayout:
		err = s.store.SetJSON(c.Key(s.accountID), s.layout)
	}
	if err != nil {
		return err
	}
	s.publish(c)
	return nil
}

// AddPlant adds an owned plant. The id, added date, and starting health are
// stamped here regardless of what the caller supplied.
func (s *State) AddPlant(plant models.OwnedPlant) (models.OwnedPlant, error) {
	if s.accountID == 0 {
		return models.OwnedPlant{}, nil
	}
	plant.ID = models.NewID()
	plant.AddedDate = s.today()
	plant.Health = 100
	s.plants = append(s.plants, plant)
	return plant, s.commit(CollectionPlants)
}

// RemovePlant deletes a plant by id
func (s *State) RemovePlant(id int64) error {
	if s.accountID == 0 {
		return nil
	}
	kept := s.plants[:0]
	for _, p := range s.plants {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.plants = kept
	return s.commit(CollectionPlants)
}

// UpdatePlantHealth sets a plant's health value
func (s *State) UpdatePlantHealth(id int64, health int) error {
	if s.accountID == 0 {
		return nil
	}
	for i := range s.plants {
		if s.plants[i].ID == id {
			s.plants[i].Health = health
		}
	}
	return s.commit(CollectionPlants)
}

// WaterPlant stamps a plant's last-watered date with today
func (s *State) WaterPlant(id int64) error {
	if s.accountID == 0 {
		return nil
	}
	for i := range s.plants {
		if s.plants[i].ID == id {
			s.plants[i].LastWatered = s.today()
		}
	}
	return s.commit(CollectionPlants)
}

// AddTask adds a planner task, stamped not-done with a fresh id
func (s *State) AddTask(task models.Task) (models.Task, error) {
	if s.accountID == 0 {
		return models.Task{}, nil
	}
	task.ID = models.NewID()
	task.Done = false
	s.tasks = append(s.tasks, task)
	return task, s.commit(CollectionTasks)
}

// ToggleTask flips a task's done flag
func (s *State) ToggleTask(id int64) error {
	if s.accountID == 0 {
		return nil
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
		}
	}
	return s.commit(CollectionTasks)
}

// RemoveTask deletes a task by id
func (s *State) RemoveTask(id int64) error {
	if s.accountID == 0 {
		return nil
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return s.commit(CollectionTasks)
}

// AddJournalEntry prepends a journal entry (newest first), stamping id and
// date and normalizing the raw comma-separated tag string.
func (s *State) AddJournalEntry(entry models.JournalEntry, rawTags string) (models.JournalEntry, error) {
	if s.accountID == 0 {
		return models.JournalEntry{}, nil
	}
	entry.ID = models.NewID()
	entry.Date = s.today()
	entry.Tags = SplitTags(rawTags)
	s.journal = append([]models.JournalEntry{entry}, s.journal...)
	return entry, s.commit(CollectionJournal)
}

// SplitTags normalizes a raw comma-separated tag string into an ordered
// list of trimmed, non-empty tags.
func SplitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// AddHarvest appends a harvest record, stamping id and date
func (s *State) AddHarvest(h models.Harvest) (models.Harvest, error) {
	if s.accountID == 0 {
		return models.Harvest{}, nil
	}
	h.ID = models.NewID()
	h.Date = s.today()
	s.harvests = append(s.harvests, h)
	return h, s.commit(CollectionHarvests)
}

// AddPestLog appends a pest log, stamped unresolved with a fresh id and date
func (s *State) AddPestLog(l models.PestLog) (models.PestLog, error) {
	if s.accountID == 0 {
		return models.PestLog{}, nil
	}
	l.ID = models.NewID()
	l.Date = s.today()
	l.Resolved = false
	s.pestLogs = append(s.pestLogs, l)
	return l, s.commit(CollectionPestLogs)
}

// ResolvePestLog marks a pest log resolved. There is no reopen operation.
func (s *State) ResolvePestLog(id int64) error {
	if s.accountID == 0 {
		return nil
	}
	for i := range s.pestLogs {
		if s.pestLogs[i].ID == id {
			s.pestLogs[i].Resolved = true
		}
	}
	return s.commit(CollectionPestLogs)
}

// UpdateLayout replaces the layout wholesale
func (s *State) UpdateLayout(layout []models.LayoutPlacement) error {
	if s.accountID == 0 {
		return nil
	}
	s.layout = layout
	return s.commit(CollectionLayout)
}

// AddToLayout appends a placement with a fresh id
func (s *State) AddToLayout(p models.LayoutPlacement) (models.LayoutPlacement, error) {
	if s.accountID == 0 {
		return models.LayoutPlacement{}, nil
	}
	p.ID = models.NewID()
	s.layout = append(s.layout, p)
	return p, s.commit(CollectionLayout)
}

// RemoveFromLayout deletes a placement by id
func (s *State) RemoveFromLayout(id int64) error {
	if s.accountID == 0 {
		return nil
	}
	kept := s.layout[:0]
	for _, p := range s.layout {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.layout = kept
	return s.commit(CollectionLayout)
}

// PlacementAt returns the placement occupying a grid cell, if any
func (s *State) PlacementAt(x, y int) (models.LayoutPlacement, bool) {
	for _, p := range s.layout {
		if p.X == x && p.Y == y {
			return p, true
		}
	}
	return models.LayoutPlacement{}, false
}

// SetNowFunc overrides the clock used for date stamps. Tests use this to
// pin "today"; production code leaves it alone.
func (s *State) SetNowFunc(now func() time.Time) {
	s.now = now
}
