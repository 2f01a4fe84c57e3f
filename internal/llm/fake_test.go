package llm

import (
	"context"
	"testing"

	"github.com/dramac-main/dramac-cms-sub014/internal/jsonutil"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

func TestFakeArchitectureIsSchemaValid(t *testing.T) {
	fake := NewFakeClient()
	ctx := WithStage(context.Background(), StageArchitecture)

	raw, err := fake.GenerateJSON(ctx, "prompt", map[string]any{
		"business_name": "Blue Fern Bistro",
		"industry_hint": "restaurant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var arch site.SiteArchitecture
	if err := jsonutil.UnmarshalRaw(raw, &arch); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if arch.SiteName != "Blue Fern Bistro" {
		t.Fatalf("business name not echoed: %q", arch.SiteName)
	}
	if arch.Industry != "restaurant" {
		t.Fatalf("industry hint not echoed: %q", arch.Industry)
	}
	if len(arch.Pages) == 0 {
		t.Fatalf("no pages planned")
	}
	homepages := 0
	for _, pg := range arch.Pages {
		if pg.Homepage {
			homepages++
		}
		if len(pg.Sections) == 0 {
			t.Fatalf("page %q has no sections", pg.Name)
		}
	}
	if homepages != 1 {
		t.Fatalf("expected exactly one homepage, got %d", homepages)
	}
}

func TestFakeArchitectureFollowsRecommendedPages(t *testing.T) {
	fake := NewFakeClient()
	ctx := WithStage(context.Background(), StageArchitecture)

	raw, err := fake.GenerateJSON(ctx, "prompt", map[string]any{
		"business_name": "Blue Fern Bistro",
		"industry_hint": "restaurant",
		"recommended_pages": []map[string]any{
			{"name": "Home", "slug": "home", "priority": 1, "homepage": true, "sections": []string{"hero", "cta"}},
			{"name": "Menu", "slug": "menu", "priority": 2, "sections": []string{"menu"}},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var arch site.SiteArchitecture
	if err := jsonutil.UnmarshalRaw(raw, &arch); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(arch.Pages) != 2 {
		t.Fatalf("expected the recommended skeleton, got %d pages", len(arch.Pages))
	}
	if arch.Pages[1].Name != "Menu" {
		t.Fatalf("menu page not planned: %+v", arch.Pages)
	}
	sec := arch.Pages[1].Sections[0]
	if sec.Intent != "menu" {
		t.Fatalf("menu intent not carried: %+v", sec)
	}
	if len(sec.Candidates) == 0 || sec.Candidates[0] != "MenuShowcase" {
		t.Fatalf("menu intent should lead with MenuShowcase: %v", sec.Candidates)
	}
}

func TestFakeFillAnswersEveryFieldSpec(t *testing.T) {
	fake := NewFakeClient()
	ctx := WithStage(context.Background(), StageComponent)

	raw, err := fake.GenerateJSON(ctx, "prompt", map[string]any{
		"component_type": "Hero",
		"field_specs": []any{
			map[string]any{"name": "headline", "type": "string"},
			map[string]any{"name": "items", "type": "list"},
			map[string]any{"name": "cta_href", "type": "url"},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var fields map[string]any
	if err := jsonutil.UnmarshalRaw(raw, &fields); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := fields["headline"].(string); !ok {
		t.Fatalf("headline missing or wrong type: %v", fields["headline"])
	}
	if _, ok := fields["items"].([]any); !ok {
		t.Fatalf("items should be a list: %v", fields["items"])
	}
	if fields["cta_href"] != "#" {
		t.Fatalf("url fields use a safe placeholder: %v", fields["cta_href"])
	}
}
