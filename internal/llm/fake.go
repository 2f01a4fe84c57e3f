package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// FakeClient returns deterministic, minimal JSON payloads per stage for
// offline runs and testing. No network, no variance.
type FakeClient struct{}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	switch StageFrom(ctx) {
	case StageArchitecture:
		return f.architecture(input)
	default:
		return f.fill(input)
	}
}

func (f *FakeClient) architecture(input any) (json.RawMessage, error) {
	payload := asMap(input)
	name, _ := payload["business_name"].(string)
	if strings.TrimSpace(name) == "" {
		name = "New Website"
	}
	pages := pagesFromRecommendations(payload["recommended_pages"])
	if len(pages) == 0 {
		pages = defaultFakePages()
	}
	obj := map[string]any{
		"site_name":    name,
		"industry":     stringOr(payload["industry_hint"], "general"),
		"tone":         "friendly",
		"nav_style":    "simple",
		"footer_style": "detailed",
		"design_tokens": map[string]any{
			"primary_color": "#2563eb",
			"accent_color":  "#f59e0b",
		},
		"pages": pages,
	}
	return json.Marshal(obj)
}

// fakeCandidates maps section intents to the candidate component types the
// fake plans for them, strongest first.
var fakeCandidates = map[string][]string{
	"hero":         {"Hero"},
	"features":     {"Features", "Services"},
	"services":     {"Services"},
	"about":        {"About", "TextBlock"},
	"team":         {"Team"},
	"testimonials": {"Testimonials", "SocialProof"},
	"gallery":      {"Gallery"},
	"menu":         {"MenuShowcase"},
	"pricing":      {"Pricing"},
	"faq":          {"FAQ"},
	"cta":          {"CallToAction"},
	"contact":      {"ContactForm"},
	"map":          {"LocationMap"},
	"hours":        {"OpeningHours"},
	"stats":        {"Stats"},
	"newsletter":   {"Newsletter"},
}

// pagesFromRecommendations builds the fake page plan from the caller's
// recommended_pages, so industry page skeletons flow through unchanged. The
// entries may arrive as native maps or JSON round-tripped values.
func pagesFromRecommendations(v any) []any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var recs []struct {
		Name     string   `json:"name"`
		Slug     string   `json:"slug"`
		Purpose  string   `json:"purpose"`
		Priority int      `json:"priority"`
		Homepage bool     `json:"homepage"`
		Sections []string `json:"sections"`
	}
	if json.Unmarshal(b, &recs) != nil {
		return nil
	}
	pages := make([]any, 0, len(recs))
	for i, rec := range recs {
		if strings.TrimSpace(rec.Name) == "" || len(rec.Sections) == 0 {
			continue
		}
		sections := make([]any, 0, len(rec.Sections))
		for _, intent := range rec.Sections {
			cands, ok := fakeCandidates[intent]
			if !ok {
				cands = []string{"TextBlock"}
			}
			sections = append(sections, map[string]any{"intent": intent, "candidates": cands})
		}
		priority := rec.Priority
		if priority <= 0 {
			priority = i + 1
		}
		pages = append(pages, map[string]any{
			"name": rec.Name, "slug": rec.Slug, "purpose": rec.Purpose,
			"priority": priority, "homepage": rec.Homepage,
			"sections": sections,
		})
	}
	return pages
}

func defaultFakePages() []any {
	return []any{
		map[string]any{
			"name": "Home", "slug": "home", "purpose": "introduce the business",
			"priority": 1, "homepage": true,
			"sections": []any{
				map[string]any{"intent": "hero", "candidates": []string{"Hero"}},
				map[string]any{"intent": "features", "candidates": []string{"Features", "Services"}},
				map[string]any{"intent": "testimonials", "candidates": []string{"Testimonials", "SocialProof"}},
				map[string]any{"intent": "cta", "candidates": []string{"CallToAction"}},
			},
		},
		map[string]any{
			"name": "About", "slug": "about", "purpose": "tell the story",
			"priority": 2, "homepage": false,
			"sections": []any{
				map[string]any{"intent": "about", "candidates": []string{"About", "TextBlock"}},
				map[string]any{"intent": "team", "candidates": []string{"Team"}},
			},
		},
		map[string]any{
			"name": "Contact", "slug": "contact", "purpose": "get in touch",
			"priority": 3, "homepage": false,
			"sections": []any{
				map[string]any{"intent": "contact", "candidates": []string{"ContactForm"}},
			},
		},
	}
}

// fill answers component, nav and footer fill requests: one value per
// requested field spec, derived only from the field name and type.
func (f *FakeClient) fill(input any) (json.RawMessage, error) {
	payload := asMap(input)
	out := map[string]any{}
	specs, _ := payload["field_specs"].([]any)
	if specs == nil {
		// Input may have round-tripped through JSON already.
		if b, err := json.Marshal(payload["field_specs"]); err == nil {
			var list []map[string]any
			if json.Unmarshal(b, &list) == nil {
				for _, m := range list {
					specs = append(specs, any(m))
				}
			}
		}
	}
	ctype := stringOr(payload["component_type"], "component")
	for _, s := range specs {
		m := asMap(s)
		name := stringOr(m["name"], "")
		if name == "" {
			continue
		}
		switch stringOr(m["type"], "string") {
		case "list":
			out[name] = []string{fmt.Sprintf("%s %s item", ctype, name)}
		case "url":
			out[name] = "#"
		default:
			out[name] = fmt.Sprintf("%s %s copy", ctype, name)
		}
	}
	return json.Marshal(out)
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if json.Unmarshal(b, &m) != nil {
		return map[string]any{}
	}
	return m
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}
