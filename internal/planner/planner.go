// Package planner turns a generation request, business context and industry
// profile into a SiteArchitecture via a single structured generative call,
// validated and constraint-enforced afterwards.
package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dramac-main/dramac-cms-sub014/internal/catalog"
	"github.com/dramac-main/dramac-cms-sub014/internal/industry"
	"github.com/dramac-main/dramac-cms-sub014/internal/jsonutil"
	"github.com/dramac-main/dramac-cms-sub014/internal/llm"
	"github.com/dramac-main/dramac-cms-sub014/internal/llmclient"
	"github.com/dramac-main/dramac-cms-sub014/internal/llmprompt"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// DefaultMaxAttempts bounds the plan/validate/retry loop.
const DefaultMaxAttempts = 3

// architectureWire mirrors site.SiteArchitecture for prompt schema purposes.
type architectureWire struct {
	SiteName     string            `json:"site_name" prompt_desc:"short display name for the site"`
	Industry     string            `json:"industry" prompt_desc:"industry id, echo the provided industry_hint unless clearly wrong"`
	Tone         string            `json:"tone" prompt_desc:"one or two words describing the writing tone"`
	NavStyle     string            `json:"nav_style" prompt:"optional" prompt_desc:"navbar variant hint"`
	FooterStyle  string            `json:"footer_style" prompt:"optional" prompt_desc:"footer variant hint"`
	DesignTokens site.DesignTokens `json:"design_tokens" prompt:"optional" prompt_desc:"color/font overrides; omit fields to keep industry defaults"`
	Pages        []site.PagePlan   `json:"pages" prompt_desc:"ordered page plans; each has name, slug, purpose, priority (1-based), homepage flag and sections with intent + candidate component types"`
}

var planPromptSpec = llmprompt.ApplyPresets(llmprompt.Spec{
	Purpose:      "Plan a multi-page website architecture for the described business: which pages to create and, per page, the ordered section intents with ranked candidate component types.",
	Background:   "You are the planning stage of a website builder. Downstream stages score your candidates, check content availability, and fill component fields; your job is only structure.",
	OutputFields: llmprompt.MustFieldsFromStruct(architectureWire{}),
	Constraints:  []string{
		"Every page needs at least one section.",
		"Candidate component types must come from the component_catalog input.",
		"Section intents should be one of the intents listed in the catalog hints when possible (hero, features, services, about, team, testimonials, gallery, menu, pricing, faq, cta, contact, map, hours, stats, newsletter).",
		"Priorities are unique, ascending from 1; exactly one homepage.",
	},
	Rules:        []string{
		"Use the recommended_pages input as the starting skeleton and adapt it to the prompt.",
		"List the strongest candidate first in each section's candidates.",
	},
	OutputFormat: "JSON only.",
	Language:     "English",
}, llmprompt.PresetStrictJSON())

// Planner produces site architectures.
type Planner struct {
	LLM         llmclient.LLMClient
	Catalog     catalog.Catalog
	MaxAttempts int
}

// Plan invokes the generative service, validates the response against the
// architecture schema, and retries with stricter rules on failure. After
// exhausting attempts it fails with site.PlanningError: fatal, no bundle.
func (p *Planner) Plan(ctx context.Context, req site.GenerationRequest, biz *site.BusinessDataContext, profile industry.Profile) (*site.SiteArchitecture, error) {
	if p == nil || p.LLM == nil {
		return nil, fmt.Errorf("planner: llm client is nil")
	}
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	ctx = llm.WithStage(ctx, llm.StageArchitecture)
	payload := p.buildPayload(req, biz, profile)
	spec := planPromptSpec

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			spec = llmprompt.WithStricterRules(planPromptSpec,
				"The previous response was rejected: "+lastErr.Error(),
				"Follow the output schema exactly this time; include every required field.",
			)
		}
		prompt, err := llmprompt.Build(spec, payload)
		if err != nil {
			return nil, &site.PlanningError{Attempts: i + 1, Err: err}
		}
		raw, err := p.LLM.GenerateJSON(ctx, prompt, payload)
		if err != nil {
			lastErr = err
			continue
		}
		var arch site.SiteArchitecture
		if err := jsonutil.UnmarshalRaw(raw, &arch); err != nil {
			lastErr = llmclient.NewSchemaError("architecture", err.Error())
			continue
		}
		if err := validate(&arch); err != nil {
			lastErr = llmclient.NewSchemaError("architecture", err.Error())
			continue
		}
		normalize(&arch, biz, profile)
		enforceConstraints(&arch, req, profile)
		return &arch, nil
	}
	return nil, &site.PlanningError{Attempts: attempts, Err: lastErr}
}

func (p *Planner) buildPayload(req site.GenerationRequest, biz *site.BusinessDataContext, profile industry.Profile) map[string]any {
	recommended := make([]map[string]any, 0, len(profile.RecommendedPages))
	for _, t := range profile.RecommendedPages {
		recommended = append(recommended, map[string]any{
			"name": t.Name, "slug": t.Slug, "purpose": t.Purpose,
			"priority": t.Priority, "homepage": t.Homepage, "sections": t.Sections,
		})
	}
	payload := map[string]any{
		"prompt":            req.Prompt,
		"business_name":     biz.BusinessName,
		"business_summary":  biz.Summary(),
		"industry_hint":     profile.ID,
		"industry_label":    profile.Label,
		"guidelines":        profile.Guidelines,
		"recommended_pages": recommended,
		"component_catalog": catalog.PromptSummary(p.Catalog),
	}
	if s := req.Style(); s != (site.StylePrefs{}) {
		payload["preferences"] = map[string]string{
			"style": s.Style, "tone": s.Tone, "animation": s.Animation,
		}
	}
	if req.MaxPages > 0 {
		payload["max_pages"] = req.MaxPages
	}
	if len(req.RequiredPages) > 0 {
		payload["required_pages"] = req.RequiredPages
	}
	return payload
}

// validate checks the structural schema: non-empty page list, every page
// named with at least one section, every section with an intent and at least
// one candidate.
func validate(arch *site.SiteArchitecture) error {
	if len(arch.Pages) == 0 {
		return fmt.Errorf("pages list is empty")
	}
	for i, pg := range arch.Pages {
		if strings.TrimSpace(pg.Name) == "" {
			return fmt.Errorf("page %d has no name", i)
		}
		if len(pg.Sections) == 0 {
			return fmt.Errorf("page %q has no sections", pg.Name)
		}
		for j, sec := range pg.Sections {
			if strings.TrimSpace(sec.Intent) == "" {
				return fmt.Errorf("page %q section %d has no intent", pg.Name, j)
			}
			if len(sec.Candidates) == 0 {
				return fmt.Errorf("page %q section %q has no candidates", pg.Name, sec.Intent)
			}
		}
	}
	return nil
}

// normalize fills slugs, priorities, tone and tokens that the model left
// loose. Industry defaults win for unset token fields.
func normalize(arch *site.SiteArchitecture, biz *site.BusinessDataContext, profile industry.Profile) {
	if strings.TrimSpace(arch.SiteName) == "" {
		arch.SiteName = biz.BusinessName
	}
	if strings.TrimSpace(arch.Industry) == "" {
		arch.Industry = profile.ID
	}
	if strings.TrimSpace(arch.Tone) == "" {
		arch.Tone = "friendly"
	}
	arch.DesignTokens = profile.Tokens.Merge(arch.DesignTokens)

	seenHome := false
	for i := range arch.Pages {
		pg := &arch.Pages[i]
		if strings.TrimSpace(pg.Slug) == "" {
			pg.Slug = site.Slugify(pg.Name)
		} else {
			pg.Slug = site.Slugify(pg.Slug)
		}
		if pg.Priority <= 0 {
			pg.Priority = i + 1
		}
		if pg.Homepage {
			if seenHome {
				pg.Homepage = false
			}
			seenHome = true
		}
	}
	if !seenHome && len(arch.Pages) > 0 {
		arch.Pages[0].Homepage = true
	}
}

// enforceConstraints applies the request's structural constraints after the
// generative call: page cap, required pages, excluded and forced components.
func enforceConstraints(arch *site.SiteArchitecture, req site.GenerationRequest, profile industry.Profile) {
	excluded := toSet(req.ExcludeComponents)

	// Excluded components: drop them from candidate lists; a section whose
	// sole candidate was excluded is removed entirely.
	for i := range arch.Pages {
		pg := &arch.Pages[i]
		kept := pg.Sections[:0]
		for _, sec := range pg.Sections {
			var cands []string
			for _, c := range sec.Candidates {
				if !excluded[c] {
					cands = append(cands, c)
				}
			}
			if len(cands) == 0 {
				continue
			}
			sec.Candidates = cands
			kept = append(kept, sec)
		}
		pg.Sections = kept
	}

	// Required pages the model omitted get minimal stubs, using the
	// industry template when one matches. Room for them is reserved before
	// the page cap is applied so a stub is never the page that gets cut.
	var missing []string
	for _, want := range req.RequiredPages {
		if !hasPage(arch.Pages, want) {
			missing = append(missing, want)
		}
	}

	// Page cap: keep the highest-priority pages.
	if req.MaxPages > 0 {
		keep := req.MaxPages - len(missing)
		if keep < 0 {
			keep = 0
		}
		if len(arch.Pages) > keep {
			sort.SliceStable(arch.Pages, func(i, j int) bool {
				return arch.Pages[i].Priority < arch.Pages[j].Priority
			})
			arch.Pages = arch.Pages[:keep]
		}
	}

	for _, want := range missing {
		arch.Pages = append(arch.Pages, stubPage(want, len(arch.Pages)+1, profile))
	}
	seenHome := false
	for _, pg := range arch.Pages {
		if pg.Homepage {
			seenHome = true
			break
		}
	}
	if !seenHome && len(arch.Pages) > 0 {
		arch.Pages[0].Homepage = true
	}

	// Forced components: make sure each one is a candidate somewhere;
	// otherwise give it a dedicated section on the homepage.
	for _, forced := range req.ForceComponents {
		if forced == "" || excluded[forced] || hasCandidate(arch.Pages, forced) {
			continue
		}
		for i := range arch.Pages {
			if arch.Pages[i].Homepage {
				arch.Pages[i].Sections = append(arch.Pages[i].Sections, site.SectionPlan{
					Intent:     "features",
					Candidates: []string{forced},
				})
				break
			}
		}
	}
}

func stubPage(name string, priority int, profile industry.Profile) site.PagePlan {
	if t, ok := profile.TemplateFor(name); ok {
		sections := make([]site.SectionPlan, 0, len(t.Sections))
		for _, intent := range t.Sections {
			sec := site.SectionPlan{Intent: intent, Candidates: []string{"TextBlock"}}
			if pref, ok := profile.PreferredFor(intent); ok && len(pref.Components) > 0 {
				sec.Candidates = append(append([]string{}, pref.Components...), "TextBlock")
			}
			sections = append(sections, sec)
		}
		return site.PagePlan{
			Name: t.Name, Slug: t.Slug, Purpose: t.Purpose,
			Priority: priority, Sections: sections,
		}
	}
	return site.PagePlan{
		Name: name, Slug: site.Slugify(name), Purpose: "requested page",
		Priority: priority,
		Sections: []site.SectionPlan{{Intent: "about", Candidates: []string{"TextBlock"}}},
	}
}

func hasPage(pages []site.PagePlan, nameOrSlug string) bool {
	want := site.Slugify(nameOrSlug)
	for _, pg := range pages {
		if pg.Slug == want || site.Slugify(pg.Name) == want {
			return true
		}
	}
	return false
}

func hasCandidate(pages []site.PagePlan, componentType string) bool {
	for _, pg := range pages {
		for _, sec := range pg.Sections {
			for _, c := range sec.Candidates {
				if c == componentType {
					return true
				}
			}
		}
	}
	return false
}

func toSet(xs []string) map[string]bool {
	out := make(map[string]bool, len(xs))
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x != "" {
			out[x] = true
		}
	}
	return out
}
