package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/verdant/gdn/internal/garden"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/notify"
)

const activityLimit = 30

// FetchData reloads the account's garden from the store and assembles the
// panel snapshots. Reloading picks up changes made by other gdn processes.
func FetchData(state *garden.State, center *notify.Center, accountID int64) RefreshDataMsg {
	state.Load(accountID)
	center.Recompute(state.Tasks(), state.Plants(), state.PestLogs())

	msg := RefreshDataMsg{
		Plants:        state.Plants(),
		Tasks:         pendingFirst(state),
		Notifications: center.Notifications(),
		Activity:      fetchActivity(state, activityLimit),
		Timestamp:     time.Now(),
	}
	return msg
}

// pendingFirst orders tasks with open ones before completed ones, keeping
// insertion order within each group.
func pendingFirst(state *garden.State) []models.Task {
	tasks := state.Tasks()
	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].Done && tasks[j].Done
	})
	return tasks
}

// fetchActivity merges journal entries and harvests into a single
// date-ordered feed, newest first.
func fetchActivity(state *garden.State, limit int) []ActivityItem {
	var items []ActivityItem

	for _, e := range state.Journal() {
		items = append(items, ActivityItem{
			Date: e.Date,
			Kind: "journal",
			Line: e.Title,
		})
	}

	for _, h := range state.Harvests() {
		line := h.Plant
		if h.Amount != "" {
			line = fmt.Sprintf("%s (%s)", h.Plant, h.Amount)
		}
		items = append(items, ActivityItem{
			Date: h.Date,
			Kind: "harvest",
			Line: line,
		})
	}

	// ISO dates compare lexically
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
