package engine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramac-main/dramac-cms-sub014/internal/catalog"
	"github.com/dramac-main/dramac-cms-sub014/internal/llm"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testBiz() *site.BusinessDataContext {
	return &site.BusinessDataContext{
		SiteID:       "site-1",
		BusinessName: "Blue Fern Bistro",
		Tagline:      "Seasonal plates, local beer",
		Description:  "A neighborhood bistro with a rotating menu.",
		Contact:      site.ContactInfo{Email: "hello@bluefern.example", Phone: "555-0100"},
		Team: []site.TeamMember{
			{Name: "Ana", Role: "Chef"},
			{Name: "Ben", Role: "Sommelier"},
		},
		Services: []site.Service{
			{Name: "Dinner", Description: "Tue-Sun from 5pm"},
		},
	}
}

// recordingSink captures progress callbacks; safe for concurrent pages.
type recordingSink struct {
	mu        sync.Mutex
	started   []string
	completed []string
	failed    []string
	composed  int
}

func (r *recordingSink) PageStarted(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, name)
}

func (r *recordingSink) PageCompleted(pg site.GeneratedPage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, pg.Name)
}

func (r *recordingSink) PageFailed(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, name)
}

func (r *recordingSink) BundleComposed(*site.WebsiteBundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.composed++
}

func TestGenerateWebsiteEndToEnd(t *testing.T) {
	sink := &recordingSink{}
	eng, err := New(Config{LLM: llm.NewFakeClient(), Logger: quietLogger(), Progress: sink})
	require.NoError(t, err)

	biz := testBiz()
	req := site.GenerationRequest{SiteID: "site-1", Prompt: "a cozy bistro with seasonal menu"}

	bundle, err := eng.GenerateWebsite(context.Background(), req, biz)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Empty(t, bundle.FailedPages)
	require.Len(t, bundle.Pages, 4)

	// Pages come back in priority order with sequential ids.
	assert.Equal(t, []string{"page-01", "page-02", "page-03", "page-04"},
		[]string{bundle.Pages[0].ID, bundle.Pages[1].ID, bundle.Pages[2].ID, bundle.Pages[3].ID})
	assert.True(t, bundle.Pages[0].Homepage)

	seenIDs := map[string]bool{}
	for _, pg := range bundle.Pages {
		require.GreaterOrEqual(t, len(pg.Components), 2)
		assert.Equal(t, "Navbar", pg.Components[0].Type, "nav opens every page")
		assert.Equal(t, "Footer", pg.Components[len(pg.Components)-1].Type, "footer closes every page")
		for _, c := range pg.Components {
			assert.False(t, seenIDs[c.ID], "component id %s repeated", c.ID)
			seenIDs[c.ID] = true
		}
	}

	// Shared elements carry identical content on every page; only ids differ.
	navA := bundle.Pages[0].Components[0]
	navB := bundle.Pages[1].Components[0]
	assert.Equal(t, navA.Fields, navB.Fields)
	assert.NotEqual(t, navA.ID, navB.ID)
	assert.ElementsMatch(t, []any{"Home", "Menu", "About", "Contact"}, navA.Fields["links"])

	// Main navigation skips the homepage; footer navigation lists everything.
	require.Len(t, bundle.Navigation.Main, 3)
	assert.Len(t, bundle.Navigation.Footer, 4)
	for _, entry := range bundle.Navigation.Main {
		assert.NotEqual(t, "/", entry.Href)
	}

	assert.Equal(t, "restaurant", bundle.Site.Industry)
	assert.NotEmpty(t, bundle.DesignSystem.PrimaryColor)

	// A restaurant run plans a menu page and renders the menu component on it.
	var menuPage *site.GeneratedPage
	for i := range bundle.Pages {
		if bundle.Pages[i].Slug == "menu" {
			menuPage = &bundle.Pages[i]
		}
	}
	require.NotNil(t, menuPage, "restaurant sites get a menu page")
	var sawMenu bool
	for _, c := range menuPage.Components {
		if c.Type == "MenuShowcase" {
			sawMenu = true
		}
	}
	assert.True(t, sawMenu, "menu page should carry the menu component")

	summary := bundle.ContentSummary
	total := 0
	for _, n := range summary.ComponentsByPage {
		total += n
	}
	assert.Equal(t, summary.TotalComponents, total)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.ElementsMatch(t, []string{"Home", "Menu", "About", "Contact"}, sink.started)
	assert.ElementsMatch(t, []string{"Home", "Menu", "About", "Contact"}, sink.completed)
	assert.Empty(t, sink.failed)
	assert.Equal(t, 1, sink.composed)
}

func TestGenerateWebsiteRespectsDataAvailability(t *testing.T) {
	eng, err := New(Config{LLM: llm.NewFakeClient(), Logger: quietLogger()})
	require.NoError(t, err)

	// Team data present, testimonial data absent.
	biz := testBiz()
	req := site.GenerationRequest{Prompt: "a cozy bistro"}

	bundle, err := eng.GenerateWebsite(context.Background(), req, biz)
	require.NoError(t, err)

	var sawTeam bool
	for _, pg := range bundle.Pages {
		for _, c := range pg.Components {
			assert.NotEqual(t, "Testimonials", c.Type,
				"testimonial component must not render without quotes")
			if c.Type == "Team" {
				sawTeam = true
			}
		}
	}
	assert.True(t, sawTeam, "team section should render from team data")
}

func TestGenerateWebsiteCriticalFieldsAlwaysFilled(t *testing.T) {
	eng, err := New(Config{LLM: llm.NewFakeClient(), Logger: quietLogger()})
	require.NoError(t, err)

	bundle, err := eng.GenerateWebsite(context.Background(),
		site.GenerationRequest{Prompt: "a cozy bistro"}, testBiz())
	require.NoError(t, err)

	cat := catalog.Builtin()
	for _, pg := range bundle.Pages {
		for _, c := range pg.Components {
			ct, ok := cat.Get(c.Type)
			if !ok {
				continue
			}
			for _, f := range ct.Fields {
				if f.Critical {
					assert.False(t, isEmptyValue(c.Fields[f.Name]),
						"page %s component %s critical field %s is empty", pg.Slug, c.Type, f.Name)
				}
			}
		}
	}
}

func TestGenerateWebsiteInvalidRequests(t *testing.T) {
	eng, err := New(Config{LLM: llm.NewFakeClient(), Logger: quietLogger()})
	require.NoError(t, err)

	cases := []struct {
		name string
		req  site.GenerationRequest
	}{
		{"empty prompt", site.GenerationRequest{}},
		{"negative max pages", site.GenerationRequest{Prompt: "x", MaxPages: -1}},
		{"too many required pages", site.GenerationRequest{Prompt: "x", MaxPages: 1, RequiredPages: []string{"a", "b"}}},
		{"excluding the fallback", site.GenerationRequest{Prompt: "x", ExcludeComponents: []string{"TextBlock"}}},
		{"unknown forced component", site.GenerationRequest{Prompt: "x", ForceComponents: []string{"HoloDeck"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := eng.GenerateWebsite(context.Background(), c.req, testBiz())
			var invalid *site.InvalidRequestError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

// downClient always fails; planning can never succeed.
type downClient struct{}

func (downClient) Name() string { return "down" }
func (downClient) Close() error { return nil }

func (downClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	return nil, errors.New("provider down")
}

func TestGenerateWebsitePlanningFailureIsFatal(t *testing.T) {
	eng, err := New(Config{LLM: downClient{}, Logger: quietLogger(), PlannerAttempts: 2})
	require.NoError(t, err)

	bundle, err := eng.GenerateWebsite(context.Background(),
		site.GenerationRequest{Prompt: "a cozy bistro"}, testBiz())
	assert.Nil(t, bundle, "no partial bundle without an architecture")
	var pErr *site.PlanningError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 2, pErr.Attempts)
}

func TestGenerateWebsiteCancelledBeforeAssembly(t *testing.T) {
	eng, err := New(Config{LLM: llm.NewFakeClient(), Logger: quietLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bundle, err := eng.GenerateWebsite(ctx, site.GenerationRequest{Prompt: "a cozy bistro"}, testBiz())
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Empty(t, bundle.Pages)
	require.Len(t, bundle.FailedPages, 4)
	for _, f := range bundle.FailedPages {
		assert.Equal(t, "cancelled", f.Reason)
	}
}

// hidingCatalog hides named types and drops the generic fallback.
type hidingCatalog struct {
	catalog.Catalog
	hidden map[string]bool
}

func (c hidingCatalog) Get(name string) (catalog.ComponentType, bool) {
	if c.hidden[name] {
		return catalog.ComponentType{}, false
	}
	return c.Catalog.Get(name)
}

func (c hidingCatalog) FallbackType() string { return "" }

func TestGenerateWebsitePageFailureIsContained(t *testing.T) {
	// Home's testimonials section has no renderable candidate: there is no
	// testimonial data, SocialProof is hidden, and no fallback exists.
	cat := hidingCatalog{
		Catalog: catalog.Builtin(),
		hidden:  map[string]bool{"SocialProof": true},
	}
	eng, err := New(Config{LLM: llm.NewFakeClient(), Catalog: cat, Logger: quietLogger()})
	require.NoError(t, err)

	bundle, err := eng.GenerateWebsite(context.Background(),
		site.GenerationRequest{Prompt: "a cozy bistro"}, testBiz())
	require.NoError(t, err, "a page failure must not fail the run")
	require.NotNil(t, bundle)

	require.Len(t, bundle.FailedPages, 1)
	assert.Equal(t, "Home", bundle.FailedPages[0].Name)
	assert.NotEmpty(t, bundle.FailedPages[0].Reason)

	require.Len(t, bundle.Pages, 3, "sibling pages survive")
	for _, pg := range bundle.Pages {
		assert.NotEqual(t, "Home", pg.Name)
	}
}
