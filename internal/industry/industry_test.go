package industry

import (
	"testing"

	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

func TestClassifyKeywordMatch(t *testing.T) {
	kb := Default()
	cases := []struct {
		prompt string
		want   string
	}{
		{"A cozy café with homemade pastries", "restaurant"},
		{"Pizzeria in the old town", "restaurant"},
		{"Family dental clinic", "healthcare"},
		{"Boutique yoga studio downtown", "fitness"},
		{"Plumbing and heating, 24/7 callouts", "trades"},
		{"Handmade candles", GeneralID},
	}
	for _, c := range cases {
		if got := kb.Classify(c.prompt, nil); got != c.want {
			t.Fatalf("Classify(%q) = %s, want %s", c.prompt, got, c.want)
		}
	}
}

func TestClassifyReadsBusinessSnapshot(t *testing.T) {
	kb := Default()
	biz := &site.BusinessDataContext{Industry: "veterinary practice"}
	if got := kb.Classify("a website for my business", biz); got != "healthcare" {
		t.Fatalf("expected healthcare from snapshot industry, got %s", got)
	}
}

func TestClassifyNeverFails(t *testing.T) {
	kb := Default()
	if got := kb.Classify("", nil); got != GeneralID {
		t.Fatalf("empty prompt should classify as %s, got %s", GeneralID, got)
	}
}

func TestLookupUnknownReturnsGeneral(t *testing.T) {
	kb := Default()
	p := kb.Lookup("does-not-exist")
	if p.ID != GeneralID {
		t.Fatalf("unknown id should return the general profile, got %s", p.ID)
	}
}

func TestGeneralProfileAppended(t *testing.T) {
	kb := NewKnowledgeBase(Profile{ID: "custom", Keywords: []string{"custom"}})
	if kb.General().ID != GeneralID {
		t.Fatalf("general profile missing")
	}
	if got := kb.Classify("something custom here", nil); got != "custom" {
		t.Fatalf("custom profile not matched: %s", got)
	}
}

func TestTemplateForMatchesNameAndSlug(t *testing.T) {
	kb := Default()
	rest := kb.Lookup("restaurant")

	if _, ok := rest.TemplateFor("Menu"); !ok {
		t.Fatalf("restaurant profile should recommend a Menu page")
	}
	if _, ok := rest.TemplateFor("menu"); !ok {
		t.Fatalf("TemplateFor should match slugs too")
	}
	if _, ok := rest.TemplateFor("warehouse"); ok {
		t.Fatalf("unexpected template match")
	}
}

func TestProfilesHavePreferencesAndTokens(t *testing.T) {
	for _, p := range Default().Profiles() {
		if p.ID == GeneralID {
			continue
		}
		if len(p.SectionPreferences) == 0 {
			t.Fatalf("profile %s has no section preferences", p.ID)
		}
		if p.Tokens == (site.DesignTokens{}) {
			t.Fatalf("profile %s has no design tokens", p.ID)
		}
	}
}
