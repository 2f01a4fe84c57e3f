// Package industry holds the static industry knowledge base and the keyword
// classifier that maps a free-text prompt onto one of its profiles.
package industry

import (
	"strings"

	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// GeneralID is the profile returned when no keyword matches.
const GeneralID = "general"

// SectionPreference names the component types an industry prefers for one
// section intent, plus variant and field defaults to merge into the generated
// component.
type SectionPreference struct {
	Components     []string
	Variant        string
	FieldOverrides map[string]any
}

// PageTemplate is a recommended page for an industry. Used for planner hints
// and for stubbing required pages the planner omitted.
type PageTemplate struct {
	Name     string
	Slug     string
	Purpose  string
	Priority int
	Homepage bool
	Sections []string
}

// Profile is one industry entry in the knowledge base.
type Profile struct {
	ID                 string
	Label              string
	Keywords           []string
	RecommendedPages   []PageTemplate
	SectionPreferences map[string]SectionPreference
	Tokens             site.DesignTokens
	Guidelines         []string
}

// PreferredFor returns the section preference for intent, if any.
func (p Profile) PreferredFor(intent string) (SectionPreference, bool) {
	pref, ok := p.SectionPreferences[strings.ToLower(strings.TrimSpace(intent))]
	return pref, ok
}

// PrefersComponent reports whether the profile names componentType among its
// preferred types for intent.
func (p Profile) PrefersComponent(intent, componentType string) bool {
	pref, ok := p.PreferredFor(intent)
	if !ok {
		return false
	}
	for _, c := range pref.Components {
		if c == componentType {
			return true
		}
	}
	return false
}

// TemplateFor returns the recommended page template matching name or slug
// (case-insensitive), if any.
func (p Profile) TemplateFor(nameOrSlug string) (PageTemplate, bool) {
	want := strings.ToLower(strings.TrimSpace(nameOrSlug))
	for _, t := range p.RecommendedPages {
		if strings.ToLower(t.Name) == want || t.Slug == want || site.Slugify(nameOrSlug) == t.Slug {
			return t, true
		}
	}
	return PageTemplate{}, false
}

// KnowledgeBase is an ordered, immutable set of profiles. Declaration order
// matters: the classifier returns the first match.
type KnowledgeBase struct {
	profiles []Profile
	byID     map[string]Profile
}

// NewKnowledgeBase builds a knowledge base; the general profile is appended
// automatically when absent.
func NewKnowledgeBase(profiles ...Profile) *KnowledgeBase {
	kb := &KnowledgeBase{byID: make(map[string]Profile, len(profiles)+1)}
	hasGeneral := false
	for _, p := range profiles {
		kb.profiles = append(kb.profiles, p)
		kb.byID[p.ID] = p
		if p.ID == GeneralID {
			hasGeneral = true
		}
	}
	if !hasGeneral {
		g := generalProfile()
		kb.profiles = append(kb.profiles, g)
		kb.byID[g.ID] = g
	}
	return kb
}

// Classify infers an industry id from the prompt and the business snapshot.
// Pure substring matching, first declared profile wins, general on miss.
// It never fails.
func (kb *KnowledgeBase) Classify(prompt string, biz *site.BusinessDataContext) string {
	haystack := strings.ToLower(prompt)
	if biz != nil {
		haystack += " " + strings.ToLower(biz.Industry) + " " + strings.ToLower(biz.Notes)
	}
	for _, p := range kb.profiles {
		if p.ID == GeneralID {
			continue
		}
		for _, kw := range p.Keywords {
			if kw != "" && strings.Contains(haystack, kw) {
				return p.ID
			}
		}
	}
	return GeneralID
}

// Lookup returns the profile for id, or the general profile for unknown ids.
func (kb *KnowledgeBase) Lookup(id string) Profile {
	if p, ok := kb.byID[strings.TrimSpace(id)]; ok {
		return p
	}
	return kb.byID[GeneralID]
}

// General returns the generic fallback profile.
func (kb *KnowledgeBase) General() Profile { return kb.byID[GeneralID] }

// Profiles returns the profiles in declaration order.
func (kb *KnowledgeBase) Profiles() []Profile { return kb.profiles }
