// Package catalog bundles the static reference data: plant species, pest
// and disease entries, and gardening tips. The data is immutable; the rest
// of the app only reads it, copying a name or emoji at creation time.
package catalog

import (
	"fmt"
	"strings"

	"github.com/verdant/gdn/internal/models"
)

// PlantCategory groups catalog plants for browsing
type PlantCategory string

const (
	PlantVegetable  PlantCategory = "vegetable"
	PlantHerb       PlantCategory = "herb"
	PlantFlower     PlantCategory = "flower"
	PlantFruit      PlantCategory = "fruit"
	PlantHouseplant PlantCategory = "houseplant"
)

// TipCategory groups gardening tips by experience level
type TipCategory string

const (
	TipBeginner     TipCategory = "beginner"
	TipIntermediate TipCategory = "intermediate"
	TipAdvanced     TipCategory = "advanced"
	TipSeasonal     TipCategory = "seasonal"
)

// Plant is a reference species entry
type Plant struct {
	ID             int
	Name           string
	Emoji          string
	ScientificName string
	Category       PlantCategory
	Sun            string // full-sun, partial-shade, low-light
	Care           string // low, medium, high
	WaterEvery     int    // suggested days between waterings
	Seasons        []models.Season
	Description    string
}

// Pest is a reference pest or disease entry
type Pest struct {
	ID             int
	Name           string
	Emoji          string
	Severity       models.PestSeverity
	Description    string
	Symptoms       []string
	Prevention     []string
	Treatment      []string
	AffectedPlants []string
	Seasons        []models.Season
}

// Tip is a gardening tip entry
type Tip struct {
	ID       int
	Title    string
	Category TipCategory
	Season   string // a season name or "all"
	Emoji    string
	Content  string
	Steps    []string
}

// PlantByID looks up a catalog plant
func PlantByID(id int) (Plant, bool) {
	for _, p := range plants {
		if p.ID == id {
			return p, true
		}
	}
	return Plant{}, false
}

// PestByID looks up a catalog pest
func PestByID(id int) (Pest, bool) {
	for _, p := range pests {
		if p.ID == id {
			return p, true
		}
	}
	return Pest{}, false
}

// TipByID looks up a tip
func TipByID(id int) (Tip, bool) {
	for _, t := range tips {
		if t.ID == id {
			return t, true
		}
	}
	return Tip{}, false
}

// Plants returns the full plant catalog. Treat as read-only.
func Plants() []Plant {
	return plants
}

// Pests returns the full pest catalog. Treat as read-only.
func Pests() []Pest {
	return pests
}

// Tips returns all gardening tips. Treat as read-only.
func Tips() []Tip {
	return tips
}

// SearchPlants filters the plant catalog by a case-insensitive substring of
// the common or scientific name, and optionally by category.
func SearchPlants(query string, category PlantCategory) []Plant {
	query = strings.ToLower(query)
	var out []Plant
	for _, p := range plants {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.ScientificName), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TipsByCategory filters tips by category; empty means all
func TipsByCategory(category TipCategory) []Tip {
	if category == "" {
		return tips
	}
	var out []Tip
	for _, t := range tips {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// PestsForSeason returns pests active in the given season
func PestsForSeason(season models.Season) []Pest {
	var out []Pest
	for _, p := range pests {
		for _, s := range p.Seasons {
			if s == season {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Markdown renders a tip as a markdown document for terminal display
func (t Tip) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", t.Emoji, t.Title)
	fmt.Fprintf(&b, "*%s · %s*\n\n", t.Category, t.Season)
	fmt.Fprintf(&b, "%s\n\n", t.Content)
	if len(t.Steps) > 0 {
		b.WriteString("## Steps\n\n")
		for i, s := range t.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	return b.String()
}

// Markdown renders a pest entry as a markdown document for terminal display
func (p Pest) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", p.Emoji, p.Name)
	fmt.Fprintf(&b, "*Severity: %s*\n\n", p.Severity)
	fmt.Fprintf(&b, "%s\n\n", p.Description)
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
		b.WriteString("\n")
	}
	section("Symptoms", p.Symptoms)
	section("Prevention", p.Prevention)
	section("Treatment", p.Treatment)
	if len(p.AffectedPlants) > 0 {
		fmt.Fprintf(&b, "Commonly affects: %s\n", strings.Join(p.AffectedPlants, ", "))
	}
	return b.String()
}
