// Package notify derives the transient notification feed from garden state.
// The feed is recomputed in full whenever a watched collection changes and
// is never persisted; dismissing a notification does not survive the next
// recompute if its source condition still holds.
package notify

import (
	"fmt"
	"time"

	"github.com/verdant/gdn/internal/models"
)

// Presentation routes attached to notifications
const (
	LinkPlanner     = "/seasonal-planner"
	LinkMyGarden    = "/my-garden"
	LinkPestTracker = "/pest-tracker"
	LinkPlantHealth = "/plant-health"
)

const (
	waterAfterDays = 3
	lowHealthBelow = 60
	pestNotesRunes = 50
)

// Derive computes the full notification list from the three watched
// collections. Rules are applied in a fixed order (overdue tasks, plants
// needing water, unresolved pests, low-health plants) and within each rule
// notifications follow collection insertion order. There is no
// de-duplication across rules: a plant can appear under both water and
// health at once.
func Derive(tasks []models.Task, plants []models.OwnedPlant, pestLogs []models.PestLog, today string) []models.Notification {
	var notifs []models.Notification

	for _, t := range tasks {
		if !t.Done && t.Due != "" && t.Due <= today {
			notifs = append(notifs, models.Notification{
				ID:      fmt.Sprintf("task-%d", t.ID),
				Type:    models.NotifyTask,
				Icon:    "📋",
				Title:   "Task overdue",
				Message: t.Title,
				Link:    LinkPlanner,
			})
		}
	}

	threshold := waterThreshold(today)
	for _, p := range plants {
		if p.LastWatered != "" && p.LastWatered <= threshold {
			notifs = append(notifs, models.Notification{
				ID:      fmt.Sprintf("water-%d", p.ID),
				Type:    models.NotifyWater,
				Icon:    "💧",
				Title:   "Needs watering",
				Message: fmt.Sprintf("%s hasn't been watered recently", p.DisplayName()),
				Link:    LinkMyGarden,
			})
		}
	}

	for _, l := range pestLogs {
		if !l.Resolved {
			notifs = append(notifs, models.Notification{
				ID:      fmt.Sprintf("pest-%d", l.ID),
				Type:    models.NotifyPest,
				Icon:    "🐛",
				Title:   "Pest issue",
				Message: fmt.Sprintf("%s: %s", l.Plant, truncate(l.Notes, pestNotesRunes)),
				Link:    LinkPestTracker,
			})
		}
	}

	for _, p := range plants {
		if p.Health < lowHealthBelow {
			notifs = append(notifs, models.Notification{
				ID:      fmt.Sprintf("health-%d", p.ID),
				Type:    models.NotifyHealth,
				Icon:    "⚠️",
				Title:   "Low plant health",
				Message: fmt.Sprintf("%s is at %d%% health", p.DisplayName(), p.Health),
				Link:    LinkPlantHealth,
			})
		}
	}

	return notifs
}

// waterThreshold returns the newest last-watered date that still counts as
// needing water: three days before today.
func waterThreshold(today string) string {
	t, err := time.Parse(models.DateFormat, today)
	if err != nil {
		return today
	}
	return models.FormatDate(t.AddDate(0, 0, -waterAfterDays))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Center holds the current transient notification list. It replaces the
// list atomically on every recompute.
type Center struct {
	list []models.Notification
}

// NewCenter returns an empty notification center
func NewCenter() *Center {
	return &Center{}
}

// Recompute rebuilds the list from the watched collections as of today
func (c *Center) Recompute(tasks []models.Task, plants []models.OwnedPlant, pestLogs []models.PestLog) {
	c.RecomputeAt(tasks, plants, pestLogs, models.FormatDate(time.Now()))
}

// RecomputeAt rebuilds the list with an explicit "today", for tests
func (c *Center) RecomputeAt(tasks []models.Task, plants []models.OwnedPlant, pestLogs []models.PestLog, today string) {
	c.list = Derive(tasks, plants, pestLogs, today)
}

// Notifications returns a copy of the current list
func (c *Center) Notifications() []models.Notification {
	out := make([]models.Notification, len(c.list))
	copy(out, c.list)
	return out
}

// Dismiss removes one notification by id from the current list only. The
// underlying task, plant, or pest log is untouched, so the next recompute
// can reintroduce an equivalent notification.
func (c *Center) Dismiss(id string) {
	kept := c.list[:0]
	for _, n := range c.list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.list = kept
}

// Clear empties the current list
func (c *Center) Clear() {
	c.list = nil
}
