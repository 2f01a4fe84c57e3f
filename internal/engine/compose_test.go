package engine

import (
	"testing"
	"time"

	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

func composeFixture() (*site.SiteArchitecture, []site.GeneratedPage, site.GeneratedComponent, site.GeneratedComponent) {
	arch := &site.SiteArchitecture{SiteName: "Blue Fern Bistro", Industry: "restaurant", Tone: "warm"}
	pages := []site.GeneratedPage{
		{Name: "Contact", Slug: "contact", Order: 3, Components: []site.GeneratedComponent{{Type: "ContactForm"}}},
		{Name: "Home", Slug: "home", Order: 1, Homepage: true, Components: []site.GeneratedComponent{{Type: "Hero"}, {Type: "Features", Degraded: true}}},
		{Name: "About", Slug: "about", Order: 2, Components: []site.GeneratedComponent{{Type: "About"}}},
	}
	nav := site.GeneratedComponent{Type: "Navbar", Fields: map[string]any{"links": []string{"Home", "About", "Contact"}}}
	footer := site.GeneratedComponent{Type: "Footer", Fields: map[string]any{"business_name": "Blue Fern Bistro"}}
	return arch, pages, nav, footer
}

func TestComposeSortsByPriorityAndAssignsIDs(t *testing.T) {
	arch, pages, nav, footer := composeFixture()
	bundle := Compose(arch, &site.BusinessDataContext{}, pages, nav, footer, nil, 120*time.Millisecond)

	if len(bundle.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(bundle.Pages))
	}
	wantOrder := []string{"home", "about", "contact"}
	for i, pg := range bundle.Pages {
		if pg.Slug != wantOrder[i] {
			t.Fatalf("page %d: got %s, want %s", i, pg.Slug, wantOrder[i])
		}
	}
	if bundle.Pages[0].ID != "page-01" || bundle.Pages[2].ID != "page-03" {
		t.Fatalf("unexpected page ids: %s, %s", bundle.Pages[0].ID, bundle.Pages[2].ID)
	}
	if bundle.EstimatedBuildTimeMs != 120 {
		t.Fatalf("unexpected build time: %d", bundle.EstimatedBuildTimeMs)
	}
}

func TestComposeLeavesInputPagesUntouched(t *testing.T) {
	arch, pages, nav, footer := composeFixture()
	Compose(arch, &site.BusinessDataContext{}, pages, nav, footer, nil, 0)

	wantOrder := []string{"contact", "home", "about"}
	for i, pg := range pages {
		if pg.Slug != wantOrder[i] {
			t.Fatalf("input slice reordered at %d: got %s, want %s", i, pg.Slug, wantOrder[i])
		}
	}
	if pages[0].ID != "" {
		t.Fatalf("input pages must not be assigned ids: %s", pages[0].ID)
	}
}

func TestComposeSplicesSharedElements(t *testing.T) {
	arch, pages, nav, footer := composeFixture()
	bundle := Compose(arch, &site.BusinessDataContext{}, pages, nav, footer, nil, 0)

	seen := map[string]bool{}
	for _, pg := range bundle.Pages {
		first := pg.Components[0]
		last := pg.Components[len(pg.Components)-1]
		if first.Type != "Navbar" {
			t.Fatalf("page %s does not open with the navbar", pg.Slug)
		}
		if last.Type != "Footer" {
			t.Fatalf("page %s does not close with the footer", pg.Slug)
		}
		for _, c := range pg.Components {
			if c.ID == "" {
				t.Fatalf("component without id on page %s", pg.Slug)
			}
			if seen[c.ID] {
				t.Fatalf("duplicate component id %s", c.ID)
			}
			seen[c.ID] = true
		}
	}
}

func TestComposeBuildsNavigationAndSummary(t *testing.T) {
	arch, pages, nav, footer := composeFixture()
	failed := []site.FailedPage{{Name: "Menu", Slug: "menu", Reason: "no renderable candidate"}}
	bundle := Compose(arch, &site.BusinessDataContext{Description: "A neighborhood bistro."}, pages, nav, footer, failed, 0)

	if len(bundle.Navigation.Main) != 2 {
		t.Fatalf("main nav should skip the homepage: %+v", bundle.Navigation.Main)
	}
	if len(bundle.Navigation.Footer) != 3 {
		t.Fatalf("footer nav should list every page: %+v", bundle.Navigation.Footer)
	}
	if bundle.Navigation.Footer[0].Href != "/" {
		t.Fatalf("homepage href should be /: %+v", bundle.Navigation.Footer[0])
	}

	s := bundle.ContentSummary
	// 4 section components plus nav and footer on each of 3 pages.
	if s.TotalComponents != 4+3*2 {
		t.Fatalf("unexpected component total: %d", s.TotalComponents)
	}
	if s.ComponentsByType["Navbar"] != 3 || s.ComponentsByType["Footer"] != 3 {
		t.Fatalf("shared elements miscounted: %+v", s.ComponentsByType)
	}
	if s.ComponentsByPage["home"] != 4 {
		t.Fatalf("home should count 4 components: %+v", s.ComponentsByPage)
	}
	if s.DegradedCount != 1 {
		t.Fatalf("expected 1 degraded component, got %d", s.DegradedCount)
	}

	if len(bundle.FailedPages) != 1 || bundle.FailedPages[0].Slug != "menu" {
		t.Fatalf("failed pages not carried through: %+v", bundle.FailedPages)
	}
	if bundle.Site.SEO.Description != "A neighborhood bistro." {
		t.Fatalf("site description should come from business data: %q", bundle.Site.SEO.Description)
	}
}
