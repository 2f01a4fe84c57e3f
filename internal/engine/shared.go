package engine

import (
	"context"

	"github.com/dramac-main/dramac-cms-sub014/internal/catalog"
	"github.com/dramac-main/dramac-cms-sub014/internal/llm"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// Shared element component type names in the catalog.
const (
	navbarType = "Navbar"
	footerType = "Footer"
)

// generateNav produces the single site-wide navigation bar. One generative
// call regardless of page count, same retry/placeholder discipline as page
// components. The links field is computed from the final page list, not
// generated, so it always matches the bundle's NavigationStructure.
func (e *Engine) generateNav(ctx context.Context, pages []site.GeneratedPage, arch *site.SiteArchitecture, biz *site.BusinessDataContext) site.GeneratedComponent {
	ct, ok := e.catalog.Get(navbarType)
	if !ok {
		return deterministicShared(navbarType, map[string]any{
			"logo_text": arch.SiteName,
			"links":     navLinkLabels(pages),
		})
	}
	res := catalog.Resolve(ct, biz)
	res.Resolved["links"] = navLinkLabels(pages)
	score := site.ComponentScore{Type: ct.Name, Variant: arch.NavStyle}
	comp := e.fillComponent(ctx, llm.StageNav, ct, score, res, fillContext{
		Intent:      "navigation",
		PageName:    "site",
		PagePurpose: "site-wide navigation",
		Arch:        arch,
		Profile:     e.kb.Lookup(arch.Industry),
		Biz:         biz,
	})
	comp.Fields["links"] = navLinkLabels(pages)
	return comp
}

// generateFooter produces the single site-wide footer from contact, social
// and hours data plus design tokens.
func (e *Engine) generateFooter(ctx context.Context, arch *site.SiteArchitecture, biz *site.BusinessDataContext) site.GeneratedComponent {
	ct, ok := e.catalog.Get(footerType)
	if !ok {
		return deterministicShared(footerType, map[string]any{
			"business_name": arch.SiteName,
		})
	}
	res := catalog.Resolve(ct, biz)
	if v, ok := biz.Field("hours"); ok {
		res.Resolved["hours"] = v
	}
	score := site.ComponentScore{Type: ct.Name, Variant: arch.FooterStyle}
	return e.fillComponent(ctx, llm.StageFooter, ct, score, res, fillContext{
		Intent:      "footer",
		PageName:    "site",
		PagePurpose: "site-wide footer",
		Arch:        arch,
		Profile:     e.kb.Lookup(arch.Industry),
		Biz:         biz,
	})
}

// deterministicShared covers a catalog without nav/footer entries.
func deterministicShared(componentType string, fields map[string]any) site.GeneratedComponent {
	return site.GeneratedComponent{
		Type:     componentType,
		Fields:   fields,
		Degraded: true,
		Note:     "deterministic shared element: type not in catalog",
	}
}

func navLinkLabels(pages []site.GeneratedPage) []string {
	labels := make([]string, 0, len(pages))
	for _, p := range pages {
		labels = append(labels, p.Name)
	}
	return labels
}
