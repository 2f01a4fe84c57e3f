// Package scoring ranks candidate component types for a section intent. Every
// function here is pure and deterministic: same inputs, same score, same
// reasons, in the same order.
package scoring

import (
	"fmt"
	"strings"

	"github.com/dramac-main/dramac-cms-sub014/internal/catalog"
	"github.com/dramac-main/dramac-cms-sub014/internal/industry"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

const (
	baseScore          = 50
	industryBoost      = 30
	availabilityBoost  = 25
	availabilityMalus  = 10
	affinityBoost      = 20
	repetitionPenalty  = 15
	preferenceAdjust   = 10
	minScore, maxScore = 0, 100
)

// intentAffinity is the direct intent-to-type table: component types that are
// a natural fit for a section intent regardless of industry.
var intentAffinity = map[string][]string{
	"hero":         {"Hero"},
	"features":     {"Features"},
	"services":     {"Services", "Features"},
	"about":        {"About", "TextBlock"},
	"team":         {"Team"},
	"testimonials": {"Testimonials", "SocialProof"},
	"social":       {"SocialProof"},
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

// Context carries everything the scorer may look at for one section.
type Context struct {
	Intent       string
	Profile      industry.Profile
	Availability map[string]bool
	// Used holds component types already placed earlier on the same page.
	Used  map[string]bool
	Style site.StylePrefs
}

// Score rates one component type for the context. The order of adjustments is
// fixed; reproducibility depends on it.
func Score(ct catalog.ComponentType, sctx Context) site.ComponentScore {
	out := site.ComponentScore{Type: ct.Name, Score: baseScore}
	out.Reasons = append(out.Reasons, fmt.Sprintf("base %d", baseScore))

	// 1. Industry preference for this intent.
	if pref, ok := sctx.Profile.PreferredFor(sctx.Intent); ok && sctx.Profile.PrefersComponent(sctx.Intent, ct.Name) {
		out.Score += industryBoost
		out.Reasons = append(out.Reasons, fmt.Sprintf("+%d industry %s prefers %s for %q", industryBoost, sctx.Profile.ID, ct.Name, sctx.Intent))
		out.Variant = pref.Variant
		out.FieldDefaults = pref.FieldOverrides
	}

	// 2. Data availability per declared flag.
	for _, flag := range ct.DataFlags {
		if sctx.Availability[flag] {
			out.Score += availabilityBoost
			out.Reasons = append(out.Reasons, fmt.Sprintf("+%d has %s data", availabilityBoost, flag))
		} else {
			out.Score -= availabilityMalus
			out.Reasons = append(out.Reasons, fmt.Sprintf("-%d missing %s data", availabilityMalus, flag))
		}
	}

	// 3. Direct intent affinity.
	if affinesTo(sctx.Intent, ct.Name) {
		out.Score += affinityBoost
		out.Reasons = append(out.Reasons, fmt.Sprintf("+%d %s affines to intent %q", affinityBoost, ct.Name, sctx.Intent))
	}

	// 4. Variety pressure within a page.
	if sctx.Used[ct.Name] {
		out.Score -= repetitionPenalty
		out.Reasons = append(out.Reasons, fmt.Sprintf("-%d already used on page", repetitionPenalty))
	}

	// 5. User preference alignment.
	for _, adj := range preferenceAdjustments(ct.Character, sctx.Style) {
		out.Score += adj.delta
		out.Reasons = append(out.Reasons, adj.reason)
	}

	// 6. Clamp.
	if out.Score > maxScore {
		out.Score = maxScore
	}
	if out.Score < minScore {
		out.Score = minScore
	}
	return out
}

// SelectBest scores every candidate and returns the maximum. Candidates
// missing from the catalog are skipped. Ties break to the first occurrence in
// the candidate list. ok is false when no candidate is known.
func SelectBest(cat catalog.Catalog, candidates []string, sctx Context) (site.ComponentScore, bool) {
	var best site.ComponentScore
	found := false
	for _, name := range candidates {
		ct, ok := cat.Get(name)
		if !ok {
			continue
		}
		s := Score(ct, sctx)
		if !found || s.Score > best.Score {
			best = s
			found = true
		}
	}
	return best, found
}

type adjustment struct {
	delta  int
	reason string
}

func preferenceAdjustments(ch catalog.Character, prefs site.StylePrefs) []adjustment {
	var out []adjustment
	switch prefs.Style {
	case "minimal", "clean":
		if ch.HeavyEffects {
			out = append(out, adjustment{-preferenceAdjust, fmt.Sprintf("-%d heavy effects vs %s style", preferenceAdjust, prefs.Style)})
		}
		if ch.PlainLayout {
			out = append(out, adjustment{+preferenceAdjust, fmt.Sprintf("+%d plain layout fits %s style", preferenceAdjust, prefs.Style)})
		}
	case "bold", "playful", "vibrant":
		if ch.HeavyEffects {
			out = append(out, adjustment{+preferenceAdjust, fmt.Sprintf("+%d heavy effects fit %s style", preferenceAdjust, prefs.Style)})
		}
		if ch.PlainLayout {
			out = append(out, adjustment{-preferenceAdjust, fmt.Sprintf("-%d plain layout vs %s style", preferenceAdjust, prefs.Style)})
		}
	}
	switch prefs.Animation {
	case "none":
		if ch.HeavyEffects {
			out = append(out, adjustment{-preferenceAdjust, fmt.Sprintf("-%d animated component vs no-animation preference", preferenceAdjust)})
		}
	case "rich":
		if ch.HeavyEffects {
			out = append(out, adjustment{+preferenceAdjust, fmt.Sprintf("+%d animated component fits rich-animation preference", preferenceAdjust)})
		}
	}
	return out
}

func affinesTo(intent, componentType string) bool {
	for _, t := range intentAffinity[strings.ToLower(strings.TrimSpace(intent))] {
		if t == componentType {
			return true
		}
	}
	return false
}
