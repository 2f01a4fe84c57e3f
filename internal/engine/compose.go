package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// Compose merges pages, shared elements, navigation and design tokens into
// the final bundle. The navbar opens and the footer closes every page's
// component list; both carry identical content everywhere, with only their
// per-page identifiers differing so that all ids in the bundle stay unique.
func Compose(arch *site.SiteArchitecture, biz *site.BusinessDataContext, pages []site.GeneratedPage, nav, footer site.GeneratedComponent, failed []site.FailedPage, elapsed time.Duration) *site.WebsiteBundle {
	pages = append([]site.GeneratedPage(nil), pages...)
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].Order < pages[j].Order })

	summary := site.ContentSummary{
		ComponentsByType: map[string]int{},
		ComponentsByPage: map[string]int{},
	}

	out := make([]site.GeneratedPage, len(pages))
	for i, pg := range pages {
		pg.ID = fmt.Sprintf("page-%02d", i+1)

		withShared := make([]site.GeneratedComponent, 0, len(pg.Components)+2)
		navCopy := nav
		navCopy.ID = fmt.Sprintf("%s-c00", pg.ID)
		withShared = append(withShared, navCopy)
		for j, c := range pg.Components {
			c.ID = fmt.Sprintf("%s-c%02d", pg.ID, j+1)
			withShared = append(withShared, c)
		}
		footerCopy := footer
		footerCopy.ID = fmt.Sprintf("%s-c%02d", pg.ID, len(pg.Components)+1)
		withShared = append(withShared, footerCopy)
		pg.Components = withShared

		for _, c := range pg.Components {
			summary.TotalComponents++
			summary.ComponentsByType[c.Type]++
			summary.ComponentsByPage[pg.Slug]++
			if c.Degraded {
				summary.DegradedCount++
			}
		}
		out[i] = pg
	}

	return &site.WebsiteBundle{
		Site: site.SiteMeta{
			Name:        arch.SiteName,
			Industry:    arch.Industry,
			Tone:        arch.Tone,
			Description: biz.Description,
			SEO: site.PageSEO{
				Title:       arch.SiteName,
				Description: siteDescription(arch, biz),
				Keywords:    []string{strings.ToLower(arch.SiteName), arch.Industry},
			},
		},
		Pages:                out,
		Navigation:           buildNavigation(out),
		DesignSystem:         arch.DesignTokens,
		ContentSummary:       summary,
		FailedPages:          failed,
		EstimatedBuildTimeMs: elapsed.Milliseconds(),
	}
}

// buildNavigation derives nav entries from the final page list: main nav from
// non-homepage pages, footer nav from all pages.
func buildNavigation(pages []site.GeneratedPage) site.NavigationStructure {
	var nav site.NavigationStructure
	mainOrder, footerOrder := 0, 0
	for _, pg := range pages {
		entry := site.NavEntry{Label: pg.Name, Href: pageHref(pg)}
		if !pg.Homepage {
			entry.Order = mainOrder
			nav.Main = append(nav.Main, entry)
			mainOrder++
		}
		fentry := entry
		fentry.Order = footerOrder
		nav.Footer = append(nav.Footer, fentry)
		footerOrder++
	}
	return nav
}

func pageHref(pg site.GeneratedPage) string {
	if pg.Homepage {
		return "/"
	}
	return "/" + pg.Slug
}

func siteDescription(arch *site.SiteArchitecture, biz *site.BusinessDataContext) string {
	if strings.TrimSpace(biz.Description) != "" {
		return biz.Description
	}
	if strings.TrimSpace(biz.Tagline) != "" {
		return biz.Tagline
	}
	return arch.SiteName
}
