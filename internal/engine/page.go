package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/dramac-main/dramac-cms-sub014/internal/catalog"
	"github.com/dramac-main/dramac-cms-sub014/internal/industry"
	"github.com/dramac-main/dramac-cms-sub014/internal/jsonutil"
	"github.com/dramac-main/dramac-cms-sub014/internal/llm"
	"github.com/dramac-main/dramac-cms-sub014/internal/llmprompt"
	"github.com/dramac-main/dramac-cms-sub014/internal/scoring"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

var componentPromptSpec = llmprompt.ApplyPresets(llmprompt.Spec{
	Purpose:    "Write the content for one website component: produce a value for every listed output field.",
	Background: "You are the copywriting stage of a website builder. The component type, its place on the page, the site tone, and the available business facts are all in the input.",
	Constraints: []string{
		"Every required field must be present and non-empty.",
		"Keep copy concise; headlines under 10 words.",
		"Prefer the resolved_data values verbatim where a field matches them.",
	},
	OutputFormat: "JSON object mapping field names to values. Nothing else.",
	Language:     "English",
}, llmprompt.PresetStrictJSON(), llmprompt.PresetGrounded())

// assemblePage walks the plan's sections in declared order, selects the best
// renderable component for each, and fills its fields. Component-level
// generation failures degrade to placeholder content; they never fail the
// page. The returned page has no navbar/footer yet.
func (e *Engine) assemblePage(ctx context.Context, plan site.PagePlan, arch *site.SiteArchitecture, profile industry.Profile, req site.GenerationRequest, biz *site.BusinessDataContext) (site.GeneratedPage, error) {
	avail := biz.Availability()
	used := make(map[string]bool)
	components := make([]site.GeneratedComponent, 0, len(plan.Sections))

	for _, sec := range plan.Sections {
		if err := ctx.Err(); err != nil {
			// A page is either fully assembled or absent.
			return site.GeneratedPage{}, err
		}
		sctx := scoring.Context{
			Intent:       sec.Intent,
			Profile:      profile,
			Availability: avail,
			Used:         used,
			Style:        req.Style(),
		}
		ct, score, res, err := e.selectComponent(sec, sctx, biz)
		if err != nil {
			return site.GeneratedPage{}, &site.PageError{Page: plan.Name, Err: err}
		}
		comp := e.fillComponent(ctx, llm.StageComponent, ct, score, res, fillContext{
			Intent:      sec.Intent,
			Hints:       sec.ContentHints,
			PageName:    plan.Name,
			PagePurpose: plan.Purpose,
			Arch:        arch,
			Profile:     profile,
			Biz:         biz,
		})
		used[ct.Name] = true
		components = append(components, comp)
	}

	return site.GeneratedPage{
		Name:        plan.Name,
		Slug:        plan.Slug,
		Title:       pageTitle(plan, arch),
		Description: plan.Purpose,
		Homepage:    plan.Homepage,
		Components:  components,
		SEO:         pageSEO(plan, arch, profile),
		Order:       plan.Priority,
	}, nil
}

// selectComponent scores every candidate, filters to the renderable ones, and
// picks the highest score (ties: first occurrence in the candidate list).
// When nothing renders it falls through to the catalog's generic fallback.
func (e *Engine) selectComponent(sec site.SectionPlan, sctx scoring.Context, biz *site.BusinessDataContext) (catalog.ComponentType, site.ComponentScore, catalog.Resolution, error) {
	var (
		best     site.ComponentScore
		bestCT   catalog.ComponentType
		bestRes  catalog.Resolution
		haveBest bool
	)
	for _, name := range sec.Candidates {
		ct, ok := e.catalog.Get(name)
		if !ok {
			continue
		}
		score := scoring.Score(ct, sctx)
		res := catalog.Resolve(ct, biz)
		if !res.CanRender {
			continue
		}
		if !haveBest || score.Score > best.Score {
			best, bestCT, bestRes, haveBest = score, ct, res, true
		}
	}
	if haveBest {
		return bestCT, best, bestRes, nil
	}

	fb := e.catalog.FallbackType()
	if fb == "" {
		return catalog.ComponentType{}, site.ComponentScore{}, catalog.Resolution{}, site.ErrNoFallbackComponent
	}
	ct, _ := e.catalog.Get(fb)
	res := catalog.Resolve(ct, biz)
	score := scoring.Score(ct, sctx)
	score.Reasons = append(score.Reasons, "generic fallback: no candidate was renderable")
	return ct, score, res, nil
}

// fillContext carries the prompt inputs for one component fill.
type fillContext struct {
	Intent      string
	Hints       []string
	PageName    string
	PagePurpose string
	Arch        *site.SiteArchitecture
	Profile     industry.Profile
	Biz         *site.BusinessDataContext
}

// fillComponent asks the generative service for the component's field values
// and validates them against the catalog schema. Bounded retries with a
// simplified instruction; after that, deterministic placeholder content. A
// component-level failure is never fatal.
func (e *Engine) fillComponent(ctx context.Context, stage llm.Stage, ct catalog.ComponentType, score site.ComponentScore, res catalog.Resolution, fc fillContext) site.GeneratedComponent {
	ctx = llm.WithStage(ctx, stage)
	payload := map[string]any{
		"component_type": ct.Name,
		"intent":         fc.Intent,
		"page_name":      fc.PageName,
		"page_purpose":   fc.PagePurpose,
		"tone":           fc.Arch.Tone,
		"design_tokens":  fc.Arch.DesignTokens,
		"business":       fc.Biz.Summary(),
		"resolved_data":  res.Resolved,
		"field_specs":    fieldSpecs(ct),
		"guidelines":     fc.Profile.Guidelines,
	}
	if len(fc.Hints) > 0 {
		payload["content_hints"] = fc.Hints
	}
	if len(score.FieldDefaults) > 0 {
		payload["suggested_values"] = score.FieldDefaults
	}

	spec := componentPromptSpec
	spec.OutputFields = promptFields(ct)

	for attempt := 0; attempt < e.attempts; attempt++ {
		if attempt > 0 {
			spec = llmprompt.WithStricterRules(spec,
				"Previous output was rejected. Return ONLY the JSON object with the listed fields, all of them filled.")
		}
		prompt, err := llmprompt.Build(spec, payload)
		if err != nil {
			break
		}
		raw, err := e.llm.GenerateJSON(ctx, prompt, payload)
		if err != nil {
			e.log.Printf("engine: %s fill for %s failed (attempt %d): %v", stage, ct.Name, attempt+1, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		var fields map[string]any
		if err := jsonutil.UnmarshalRaw(raw, &fields); err != nil {
			e.log.Printf("engine: %s fill for %s returned invalid JSON (attempt %d)", stage, ct.Name, attempt+1)
			continue
		}
		merged := mergeFields(ct, fields, score, res)
		if missing := missingCritical(ct, merged); len(missing) > 0 {
			e.log.Printf("engine: %s fill for %s missing critical fields %v (attempt %d)", stage, ct.Name, missing, attempt+1)
			continue
		}
		return site.GeneratedComponent{
			Type:     ct.Name,
			Variant:  variantFor(ct, score.Variant),
			Fields:   merged,
			Degraded: res.Degraded,
		}
	}
	return e.placeholderComponent(ct, score, res)
}

// placeholderComponent builds a component from requirement fallbacks and
// resolved data alone. Deterministic; used after generation retries exhaust.
func (e *Engine) placeholderComponent(ct catalog.ComponentType, score site.ComponentScore, res catalog.Resolution) site.GeneratedComponent {
	fields := mergeFields(ct, nil, score, res)
	for _, f := range ct.Fields {
		if f.Critical && isEmptyValue(fields[f.Name]) {
			fields[f.Name] = placeholderValue(f)
		}
	}
	return site.GeneratedComponent{
		Type:     ct.Name,
		Variant:  variantFor(ct, score.Variant),
		Fields:   fields,
		Degraded: true,
		Note:     "placeholder content: generation did not produce a valid result",
	}
}

// mergeFields layers values by precedence: generated output wins, then
// resolved business data, then industry field defaults, then requirement
// fallback text.
func mergeFields(ct catalog.ComponentType, generated map[string]any, score site.ComponentScore, res catalog.Resolution) map[string]any {
	out := make(map[string]any, len(ct.Fields))
	for field, v := range res.Fallbacks {
		out[field] = v
	}
	for field, v := range score.FieldDefaults {
		if !isEmptyValue(v) {
			out[field] = v
		}
	}
	for field, v := range res.Resolved {
		out[field] = v
	}
	for field, v := range generated {
		if !isEmptyValue(v) {
			out[field] = v
		}
	}
	return out
}

func missingCritical(ct catalog.ComponentType, fields map[string]any) []string {
	var missing []string
	for _, f := range ct.Fields {
		if f.Critical && isEmptyValue(fields[f.Name]) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

func isEmptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		return false
	}
}

func placeholderValue(f catalog.FieldSpec) any {
	switch f.Type {
	case "list":
		return []string{"Content coming soon"}
	case "url":
		return "#"
	default:
		return "Content coming soon"
	}
}

func variantFor(ct catalog.ComponentType, want string) string {
	if want == "" {
		return ""
	}
	for _, v := range ct.Variants {
		if v == want {
			return want
		}
	}
	return ""
}

func fieldSpecs(ct catalog.ComponentType) []map[string]any {
	out := make([]map[string]any, 0, len(ct.Fields))
	for _, f := range ct.Fields {
		out = append(out, map[string]any{
			"name": f.Name, "type": f.Type, "required": f.Critical, "description": f.Description,
		})
	}
	return out
}

func promptFields(ct catalog.ComponentType) []llmprompt.Field {
	out := make([]llmprompt.Field, 0, len(ct.Fields))
	for _, f := range ct.Fields {
		out = append(out, llmprompt.Field{
			Name: f.Name, Type: f.Type, Required: f.Critical, Description: f.Description,
		})
	}
	return out
}

func pageTitle(plan site.PagePlan, arch *site.SiteArchitecture) string {
	if plan.Homepage {
		return arch.SiteName
	}
	return fmt.Sprintf("%s | %s", plan.Name, arch.SiteName)
}

func pageSEO(plan site.PagePlan, arch *site.SiteArchitecture, profile industry.Profile) site.PageSEO {
	keywords := []string{strings.ToLower(arch.SiteName), profile.ID}
	for _, sec := range plan.Sections {
		keywords = append(keywords, sec.Intent)
	}
	return site.PageSEO{
		Title:       pageTitle(plan, arch),
		Description: plan.Purpose,
		Keywords:    keywords,
	}
}
