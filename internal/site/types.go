package site

import "strings"

// GenerationRequest carries everything the caller controls about a single
// website generation run. It is validated once and never mutated afterwards.
type GenerationRequest struct {
	SiteID string `json:"site_id"`
	Prompt string `json:"prompt"`

	// Style knobs. Empty means "no preference".
	StylePreference     string `json:"style_preference,omitempty"`
	TonePreference      string `json:"tone_preference,omitempty"`
	AnimationPreference string `json:"animation_preference,omitempty"`

	// Structural constraints.
	MaxPages          int      `json:"max_pages,omitempty"`
	RequiredPages     []string `json:"required_pages,omitempty"`
	ExcludeComponents []string `json:"exclude_components,omitempty"`
	ForceComponents   []string `json:"force_components,omitempty"`
}

// StylePrefs is the scorer-facing slice of the request.
type StylePrefs struct {
	Style     string
	Tone      string
	Animation string
}

// Style returns the scoring-relevant preferences.
func (r GenerationRequest) Style() StylePrefs {
	return StylePrefs{
		Style:     strings.ToLower(strings.TrimSpace(r.StylePreference)),
		Tone:      strings.ToLower(strings.TrimSpace(r.TonePreference)),
		Animation: strings.ToLower(strings.TrimSpace(r.AnimationPreference)),
	}
}

// DesignTokens is the flattened design-system slice the engine cares about.
type DesignTokens struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	AccentColor    string `json:"accent_color,omitempty"`
	Background     string `json:"background,omitempty"`
	HeadingFont    string `json:"heading_font,omitempty"`
	BodyFont       string `json:"body_font,omitempty"`
	BorderRadius   string `json:"border_radius,omitempty"`
}

// Merge overlays non-empty fields of other on top of t.
func (t DesignTokens) Merge(other DesignTokens) DesignTokens {
	out := t
	if other.PrimaryColor != "" {
		out.PrimaryColor = other.PrimaryColor
	}
	if other.SecondaryColor != "" {
		out.SecondaryColor = other.SecondaryColor
	}
	if other.AccentColor != "" {
		out.AccentColor = other.AccentColor
	}
	if other.Background != "" {
		out.Background = other.Background
	}
	if other.HeadingFont != "" {
		out.HeadingFont = other.HeadingFont
	}
	if other.BodyFont != "" {
		out.BodyFont = other.BodyFont
	}
	if other.BorderRadius != "" {
		out.BorderRadius = other.BorderRadius
	}
	return out
}

// SiteArchitecture is the planner output: the full page/section layout for a
// site. Immutable once produced.
type SiteArchitecture struct {
	Industry     string       `json:"industry"`
	SiteName     string       `json:"site_name"`
	Tone         string       `json:"tone"`
	Pages        []PagePlan   `json:"pages"`
	NavStyle     string       `json:"nav_style,omitempty"`
	FooterStyle  string       `json:"footer_style,omitempty"`
	DesignTokens DesignTokens `json:"design_tokens"`
}

// PagePlan describes one planned page. Priority defines final page order,
// lower first.
type PagePlan struct {
	Name     string        `json:"name"`
	Slug     string        `json:"slug"`
	Purpose  string        `json:"purpose"`
	Priority int           `json:"priority"`
	Homepage bool          `json:"homepage"`
	Sections []SectionPlan `json:"sections"`
}

// SectionPlan describes one content region of a page: its semantic intent and
// the ranked candidate component types that could fill it.
type SectionPlan struct {
	Intent       string   `json:"intent"`
	Candidates   []string `json:"candidates"`
	ContentHints []string `json:"content_hints,omitempty"`
}

// ComponentScore is the scorer verdict for one candidate. Ephemeral.
type ComponentScore struct {
	Type          string         `json:"type"`
	Score         int            `json:"score"`
	Reasons       []string       `json:"reasons"`
	Variant       string         `json:"variant,omitempty"`
	FieldDefaults map[string]any `json:"field_defaults,omitempty"`
}

// GeneratedComponent is a fully resolved component instance. Every critical
// field is populated before one of these is emitted.
type GeneratedComponent struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Variant  string         `json:"variant,omitempty"`
	Fields   map[string]any `json:"fields"`
	Degraded bool           `json:"degraded,omitempty"`
	Note     string         `json:"note,omitempty"`
}

// PageSEO is per-page search metadata.
type PageSEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

// GeneratedPage is one assembled page. The shared navbar/footer entries are
// spliced in by the composer, not by page assembly.
type GeneratedPage struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Homepage    bool                 `json:"homepage"`
	Components  []GeneratedComponent `json:"components"`
	SEO         PageSEO              `json:"seo"`
	Order       int                  `json:"order"`
}

// NavEntry is one navigation link.
type NavEntry struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Order int    `json:"order"`
}

// NavigationStructure is derived from the final page list.
type NavigationStructure struct {
	Main   []NavEntry `json:"main"`
	Footer []NavEntry `json:"footer"`
}

// SiteMeta is the bundle-level site description.
type SiteMeta struct {
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Tone        string  `json:"tone"`
	Description string  `json:"description,omitempty"`
	SEO         PageSEO `json:"seo"`
}

// ContentSummary counts what the bundle contains.
type ContentSummary struct {
	TotalComponents  int            `json:"total_components"`
	ComponentsByType map[string]int `json:"components_by_type"`
	ComponentsByPage map[string]int `json:"components_by_page"`
	DegradedCount    int            `json:"degraded_count,omitempty"`
}

// FailedPage records a page whose assembly did not complete.
type FailedPage struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Reason string `json:"reason"`
}

// WebsiteBundle is the final output artifact.
type WebsiteBundle struct {
	Site                 SiteMeta            `json:"site"`
	Pages                []GeneratedPage     `json:"pages"`
	Navigation           NavigationStructure `json:"navigation"`
	DesignSystem         DesignTokens        `json:"design_system"`
	ContentSummary       ContentSummary      `json:"content_summary"`
	FailedPages          []FailedPage        `json:"failed_pages,omitempty"`
	EstimatedBuildTimeMs int64               `json:"estimated_build_time_ms"`
}

// Slugify normalizes a page name into a URL slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
