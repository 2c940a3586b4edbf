package catalog

import (
	"strings"
	"testing"

	"github.com/verdant/gdn/internal/models"
)

func TestPlantByID(t *testing.T) {
	p, ok := PlantByID(1)
	if !ok || p.Name != "Tomato" {
		t.Errorf("PlantByID(1) = %+v, %v", p, ok)
	}
	if _, ok := PlantByID(999); ok {
		t.Error("PlantByID(999): expected miss")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range Plants() {
		if seen[p.ID] {
			t.Errorf("duplicate plant id %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestSearchPlants(t *testing.T) {
	// Substring match against common name, case-insensitive
	got := SearchPlants("tom", "")
	if len(got) != 1 || got[0].Name != "Tomato" {
		t.Errorf("SearchPlants(tom) = %+v", got)
	}

	// Scientific name matches too
	got = SearchPlants("lactuca", "")
	if len(got) != 1 || got[0].Name != "Lettuce" {
		t.Errorf("SearchPlants(lactuca) = %+v", got)
	}

	// Category filter narrows the set
	herbs := SearchPlants("", PlantHerb)
	if len(herbs) == 0 {
		t.Fatal("SearchPlants herb filter returned nothing")
	}
	for _, p := range herbs {
		if p.Category != PlantHerb {
			t.Errorf("herb filter leaked %s (%s)", p.Name, p.Category)
		}
	}

	// Empty query and category returns everything
	if got := SearchPlants("", ""); len(got) != len(Plants()) {
		t.Errorf("SearchPlants empty = %d plants, want %d", len(got), len(Plants()))
	}
}

func TestPestByID(t *testing.T) {
	p, ok := PestByID(4)
	if !ok || p.Name != "Tomato Hornworm" {
		t.Errorf("PestByID(4) = %+v, %v", p, ok)
	}
	if p.Severity != models.SeverityHigh {
		t.Errorf("severity = %q", p.Severity)
	}
}

func TestPestsForSeason(t *testing.T) {
	for _, p := range PestsForSeason(models.SeasonSummer) {
		found := false
		for _, s := range p.Seasons {
			if s == models.SeasonSummer {
				found = true
			}
		}
		if !found {
			t.Errorf("%s returned for summer without summer season", p.Name)
		}
	}
}

func TestTipsByCategory(t *testing.T) {
	if len(TipsByCategory("")) != len(Tips()) {
		t.Error("empty category should return all tips")
	}
	for _, tip := range TipsByCategory(TipBeginner) {
		if tip.Category != TipBeginner {
			t.Errorf("beginner filter leaked %q (%s)", tip.Title, tip.Category)
		}
	}
}

func TestPestMarkdown(t *testing.T) {
	p, _ := PestByID(1)
	md := p.Markdown()

	if !strings.HasPrefix(md, "# ") {
		t.Errorf("Markdown missing title heading: %q", md[:20])
	}
	for _, section := range []string{"## Symptoms", "## Prevention", "## Treatment"} {
		if !strings.Contains(md, section) {
			t.Errorf("Markdown missing %q section", section)
		}
	}
	if !strings.Contains(md, "Commonly affects:") {
		t.Error("Markdown missing affected plants line")
	}
}

func TestTipMarkdown(t *testing.T) {
	tip, ok := TipByID(1)
	if !ok {
		t.Fatal("TipByID(1) missing")
	}
	md := tip.Markdown()
	if !strings.Contains(md, tip.Title) || !strings.Contains(md, tip.Content) {
		t.Error("Markdown missing title or content")
	}
}
