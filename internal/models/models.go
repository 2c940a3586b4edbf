package models

import (
	"strings"
	"sync"
	"time"
	"unicode"
)

// TaskCategory represents the kind of garden work a task covers
type TaskCategory string

const (
	CategoryPlanting    TaskCategory = "planting"
	CategoryWatering    TaskCategory = "watering"
	CategoryPruning     TaskCategory = "pruning"
	CategoryFertilizing TaskCategory = "fertilizing"
	CategoryHarvesting  TaskCategory = "harvesting"
	CategoryPestControl TaskCategory = "pest-control"
	CategoryMaintenance TaskCategory = "maintenance"
	CategoryRepotting   TaskCategory = "repotting"
)

// Season represents a gardening season
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Mood represents the gardener's mood on a journal entry
type Mood string

const (
	MoodExcited    Mood = "excited"
	MoodHappy      Mood = "happy"
	MoodProductive Mood = "productive"
	MoodCalm       Mood = "calm"
	MoodWorried    Mood = "worried"
	MoodSad        Mood = "sad"
)

// Weather represents the weather recorded on a journal entry
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherSnowy  Weather = "snowy"
	WeatherWindy  Weather = "windy"
	WeatherStormy Weather = "stormy"
)

// PestSeverity represents how bad a logged pest issue is
type PestSeverity string

const (
	SeverityLow      PestSeverity = "low"
	SeverityModerate PestSeverity = "moderate"
	SeverityHigh     PestSeverity = "high"
)

// Theme is the global UI theme, shared across all accounts
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NotificationType categorizes a derived notification
type NotificationType string

const (
	NotifyTask   NotificationType = "task"
	NotifyWater  NotificationType = "water"
	NotifyPest   NotificationType = "pest"
	NotifyHealth NotificationType = "health"
)

// Account represents a registered user profile. Passwords are stored in
// plaintext: this is a single-profile local app, not a security boundary.
type Account struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Avatar     string `json:"avatar"`
	JoinDate   string `json:"joinDate"`
	GardenName string `json:"gardenName"`
}

// AccountPatch enumerates the mutable Account fields for profile updates.
// The ID and password are deliberately not patchable.
type AccountPatch struct {
	Name       *string
	Email      *string
	Avatar     *string
	GardenName *string
}

// OwnedPlant is a plant the account grows, copied from the catalog at add time
type OwnedPlant struct {
	ID          int64  `json:"id"`
	PlantID     int    `json:"plantId"`
	Name        string `json:"name"`
	Nickname    string `json:"nickname,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Health      int    `json:"health"`
	LastWatered string `json:"lastWatered,omitempty"`
	AddedDate   string `json:"addedDate"`
}

// DisplayName returns the nickname when set, the catalog name otherwise
func (p OwnedPlant) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}

// Task is a seasonal planner entry
type Task struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	Plant    string       `json:"plant,omitempty"`
	Category TaskCategory `json:"category"`
	Season   Season       `json:"season"`
	Due      string       `json:"due,omitempty"`
	Done     bool         `json:"done"`
}

// JournalEntry is a dated journal record, newest first in its collection
type JournalEntry struct {
	ID      int64    `json:"id"`
	Date    string   `json:"date"`
	Title   string   `json:"title"`
	Text    string   `json:"text"`
	Mood    Mood     `json:"mood"`
	Weather Weather  `json:"weather"`
	Tags    []string `json:"tags"`
	PlantID int64    `json:"plantId,omitempty"`
}

// Harvest records a picked crop
type Harvest struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Plant  string `json:"plant"`
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// PestLog records a pest or disease sighting against a plant
type PestLog struct {
	ID       int64        `json:"id"`
	PestID   int          `json:"pestId"`
	Plant    string       `json:"plant"`
	Severity PestSeverity `json:"severity"`
	Notes    string       `json:"notes,omitempty"`
	Date     string       `json:"date"`
	Resolved bool         `json:"resolved"`
}

// LayoutPlacement positions a catalog plant on the garden grid
type LayoutPlacement struct {
	ID      int64  `json:"id"`
	PlantID int    `json:"plantId"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// GridSize is the side length of the square garden layout grid
const GridSize = 8

// Notification is a transient advisory derived from garden state.
// It is never persisted; the deriver rebuilds the full list on every change.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Icon    string           `json:"icon"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Link    string           `json:"link"`
}

// IsValidCategory checks if a task category is valid
func IsValidCategory(c TaskCategory) bool {
	switch c {
	case CategoryPlanting, CategoryWatering, CategoryPruning, CategoryFertilizing,
		CategoryHarvesting, CategoryPestControl, CategoryMaintenance, CategoryRepotting:
		return true
	}
	return false
}

// IsValidSeason checks if a season is valid
func IsValidSeason(s Season) bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return true
	}
	return false
}

// IsValidMood checks if a journal mood is valid
func IsValidMood(m Mood) bool {
	switch m {
	case MoodExcited, MoodHappy, MoodProductive, MoodCalm, MoodWorried, MoodSad:
		return true
	}
	return false
}

// IsValidWeather checks if a journal weather value is valid
func IsValidWeather(w Weather) bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherSnowy, WeatherWindy, WeatherStormy:
		return true
	}
	return false
}

// IsValidSeverity checks if a pest severity is valid
func IsValidSeverity(s PestSeverity) bool {
	switch s {
	case SeverityLow, SeverityModerate, SeverityHigh:
		return true
	}
	return false
}

// NormalizeSeason converts alternate season names to canonical form
// Accepts: "autumn" as alias for "fall"
func NormalizeSeason(s string) Season {
	switch strings.ToLower(s) {
	case "autumn":
		return SeasonFall
	default:
		return Season(strings.ToLower(s))
	}
}

// NormalizeSeverity converts alternate severity names to canonical form
// Accepts: "medium" and "mod" as aliases for "moderate"
func NormalizeSeverity(s string) PestSeverity {
	switch strings.ToLower(s) {
	case "medium", "mod":
		return SeverityModerate
	default:
		return PestSeverity(strings.ToLower(s))
	}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// HealthBucket classifies plant health for display
type HealthBucket string

const (
	HealthHealthy HealthBucket = "healthy" // 80-100
	HealthFair    HealthBucket = "fair"    // 60-79
	HealthPoor    HealthBucket = "poor"    // below 60, triggers a notification
)

// ClassifyHealth maps a 0-100 health value to its bucket
func ClassifyHealth(health int) HealthBucket {
	switch {
	case health >= 80:
		return HealthHealthy
	case health >= 60:
		return HealthFair
	default:
		return HealthPoor
	}
}

// AvatarFor derives an account avatar from a display name: the uppercased
// first character, or empty for an empty name.
func AvatarFor(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// DateFormat is the calendar date layout used throughout stored state.
// Dates in this format compare correctly as plain strings.
const DateFormat = "2006-01-02"

// FormatDate renders a time as a stored calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a fresh entity ID derived from the current time in
// milliseconds since epoch. Two calls within the same millisecond are
// disambiguated by bumping past the previous ID, so IDs are strictly
// increasing within a process.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
