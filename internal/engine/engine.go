// Package engine is the website generation core: it classifies the industry,
// plans the site architecture, assembles pages concurrently, generates the
// shared navbar/footer once, and composes the final bundle.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dramac-main/dramac-cms-sub014/internal/catalog"
	"github.com/dramac-main/dramac-cms-sub014/internal/industry"
	"github.com/dramac-main/dramac-cms-sub014/internal/llmclient"
	"github.com/dramac-main/dramac-cms-sub014/internal/planner"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

// ProgressSink receives generation progress events. All methods may be called
// from concurrent page workers.
type ProgressSink interface {
	PageStarted(pageName string)
	PageCompleted(page site.GeneratedPage)
	PageFailed(pageName string, err error)
	BundleComposed(bundle *site.WebsiteBundle)
}

type nopSink struct{}

func (nopSink) PageStarted(string)                 {}
func (nopSink) PageCompleted(site.GeneratedPage)   {}
func (nopSink) PageFailed(string, error)           {}
func (nopSink) BundleComposed(*site.WebsiteBundle) {}

// Config wires the engine's collaborators. LLM and Catalog are required.
type Config struct {
	LLM     llmclient.LLMClient
	Catalog catalog.Catalog
	KB      *industry.KnowledgeBase

	// Concurrency bounds parallel page assembly; <=0 means 3.
	Concurrency int
	// PlannerAttempts bounds architecture retries; <=0 means the planner
	// default.
	PlannerAttempts int
	// ComponentAttempts bounds per-component fill retries; <=0 means 2.
	ComponentAttempts int

	Logger   *log.Logger
	Progress ProgressSink
}

// Engine executes website generation requests.
type Engine struct {
	llm      llmclient.LLMClient
	catalog  catalog.Catalog
	kb       *industry.KnowledgeBase
	planner  *planner.Planner
	workers  int
	attempts int
	log      *log.Logger
	progress ProgressSink
}

// New builds an engine. The knowledge base defaults to industry.Default() and
// the catalog to catalog.Builtin() when omitted.
func New(cfg Config) (*Engine, error) {
	if cfg.LLM == nil {
		return nil, fmt.Errorf("engine: llm client is required")
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}
	kb := cfg.KB
	if kb == nil {
		kb = industry.Default()
	}
	workers := cfg.Concurrency
	if workers <= 0 {
		workers = 3
	}
	attempts := cfg.ComponentAttempts
	if attempts <= 0 {
		attempts = 2
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	progress := cfg.Progress
	if progress == nil {
		progress = nopSink{}
	}
	return &Engine{
		llm:      cfg.LLM,
		catalog:  cat,
		kb:       kb,
		planner:  &planner.Planner{LLM: cfg.LLM, Catalog: cat, MaxAttempts: cfg.PlannerAttempts},
		workers:  workers,
		attempts: attempts,
		log:      logger,
		progress: progress,
	}, nil
}

// GenerateWebsite is the engine entry point. It returns either a complete
// bundle, a bundle with a non-empty FailedPages list, or a single typed
// failure (invalid request or architecture planning).
func (e *Engine) GenerateWebsite(ctx context.Context, req site.GenerationRequest, biz *site.BusinessDataContext) (*site.WebsiteBundle, error) {
	start := time.Now()
	if err := e.validateRequest(req); err != nil {
		return nil, err
	}
	if biz == nil {
		biz = &site.BusinessDataContext{}
	}

	industryID := e.kb.Classify(req.Prompt, biz)
	profile := e.kb.Lookup(industryID)
	e.log.Printf("engine: site %q classified as %s", req.SiteID, industryID)

	arch, err := e.planner.Plan(ctx, req, biz, profile)
	if err != nil {
		return nil, err
	}
	e.log.Printf("engine: architecture planned: %d pages", len(arch.Pages))

	pages, failed := e.assemblePages(ctx, arch, profile, req, biz)

	// Shared elements: computed exactly once, reused across every page.
	nav := e.generateNav(ctx, pages, arch, biz)
	footer := e.generateFooter(ctx, arch, biz)

	bundle := Compose(arch, biz, pages, nav, footer, failed, time.Since(start))
	e.progress.BundleComposed(bundle)
	return bundle, nil
}

// assemblePages runs page assembly for every plan with bounded parallelism.
// Distinct pages have no data dependency on each other; order of completion
// does not matter because the composer sorts by priority. A failed or
// cancelled page never yields a partial result.
func (e *Engine) assemblePages(ctx context.Context, arch *site.SiteArchitecture, profile industry.Profile, req site.GenerationRequest, biz *site.BusinessDataContext) ([]site.GeneratedPage, []site.FailedPage) {
	type result struct {
		idx  int
		page site.GeneratedPage
		err  error
	}

	sem := make(chan struct{}, e.workers)
	results := make(chan result, len(arch.Pages))
	var wg sync.WaitGroup

	for i, plan := range arch.Pages {
		wg.Add(1)
		go func(idx int, plan site.PagePlan) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results <- result{idx: idx, err: ctx.Err()}
				return
			}
			e.progress.PageStarted(plan.Name)
			page, err := e.assemblePage(ctx, plan, arch, profile, req, biz)
			if err != nil {
				e.progress.PageFailed(plan.Name, err)
			} else {
				e.progress.PageCompleted(page)
			}
			results <- result{idx: idx, page: page, err: err}
		}(i, plan)
	}
	wg.Wait()
	close(results)

	var pages []site.GeneratedPage
	var failed []site.FailedPage
	byIdx := make(map[int]result, len(arch.Pages))
	for r := range results {
		byIdx[r.idx] = r
	}
	for i, plan := range arch.Pages {
		r := byIdx[i]
		if r.err != nil {
			reason := r.err.Error()
			if errors.Is(r.err, context.Canceled) {
				reason = "cancelled"
			}
			e.log.Printf("engine: page %q failed: %v", plan.Name, r.err)
			failed = append(failed, site.FailedPage{Name: plan.Name, Slug: plan.Slug, Reason: reason})
			continue
		}
		pages = append(pages, r.page)
	}
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].Order < pages[j].Order })
	return pages, failed
}

func (e *Engine) validateRequest(req site.GenerationRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return &site.InvalidRequestError{Field: "prompt", Reason: "must not be empty"}
	}
	if req.MaxPages < 0 {
		return &site.InvalidRequestError{Field: "max_pages", Reason: "must not be negative"}
	}
	if req.MaxPages > 0 && len(req.RequiredPages) > req.MaxPages {
		return &site.InvalidRequestError{Field: "required_pages", Reason: "more required pages than max_pages allows"}
	}
	if fb := e.catalog.FallbackType(); fb != "" {
		for _, x := range req.ExcludeComponents {
			if x == fb {
				return &site.InvalidRequestError{Field: "exclude_components", Reason: fmt.Sprintf("cannot exclude the fallback component %q", fb)}
			}
		}
	}
	for _, f := range req.ForceComponents {
		if _, ok := e.catalog.Get(f); !ok && strings.TrimSpace(f) != "" {
			return &site.InvalidRequestError{Field: "force_components", Reason: fmt.Sprintf("unknown component type %q", f)}
		}
	}
	return nil
}
