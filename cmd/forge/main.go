// Command forge runs a single website generation from the command line and
// writes the composed bundle as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dramac-main/dramac-cms-sub014/internal/bizdata"
	"github.com/dramac-main/dramac-cms-sub014/internal/engine"
	"github.com/dramac-main/dramac-cms-sub014/internal/llm"
	"github.com/dramac-main/dramac-cms-sub014/internal/llmclient"
	"github.com/dramac-main/dramac-cms-sub014/internal/site"
)

func main() {
	_ = godotenv.Load()

	var (
		prompt      = flag.String("prompt", "", "business description to generate a site from")
		siteID      = flag.String("site", "", "site id for business data lookup")
		bizPath     = flag.String("bizdata", "", "path to a business data JSON file")
		bizDir      = flag.String("bizdata-dir", "data/bizdata", "directory of <site>.json business data files")
		outPath     = flag.String("out", "-", "bundle output path, - for stdout")
		offline     = flag.Bool("offline", false, "use the deterministic fake client instead of Gemini")
		model       = flag.String("model", "gemini-2.5-flash", "gemini model name")
		maxPages    = flag.Int("max-pages", 0, "page count cap, 0 for no cap")
		pages       = flag.String("pages", "", "comma-separated page names that must exist")
		exclude     = flag.String("exclude", "", "comma-separated component types to exclude")
		force       = flag.String("force", "", "comma-separated component types to force onto the homepage")
		style       = flag.String("style", "", "style preference, e.g. minimal or bold")
		tone        = flag.String("tone", "", "tone preference")
		animation   = flag.String("animation", "", "animation preference, none or rich")
		concurrency = flag.Int("concurrency", 0, "parallel page assembly bound")
	)
	flag.Parse()

	if strings.TrimSpace(*prompt) == "" {
		log.Fatal("-prompt is required")
	}

	ctx := context.Background()

	var (
		base llmclient.LLMClient
		err  error
	)
	if *offline {
		base = llm.NewFakeClient()
	} else {
		base, err = llmclient.NewGeminiClient(ctx, *model)
		if err != nil {
			log.Fatalf("init gemini client: %v", err)
		}
	}
	client := llm.Chain(base,
		llm.WithLogging(log.Default()),
		llm.Retry(3, 500*time.Millisecond),
		llm.Timeout(90*time.Second),
	)
	defer client.Close()

	biz, err := loadBusinessData(ctx, *bizPath, *bizDir, *siteID)
	if err != nil {
		log.Fatalf("load business data: %v", err)
	}

	eng, err := engine.New(engine.Config{
		LLM:         client,
		Concurrency: *concurrency,
		Logger:      log.Default(),
	})
	if err != nil {
		log.Fatalf("init engine: %v", err)
	}

	req := site.GenerationRequest{
		SiteID:              strings.TrimSpace(*siteID),
		Prompt:              strings.TrimSpace(*prompt),
		StylePreference:     *style,
		TonePreference:      *tone,
		AnimationPreference: *animation,
		MaxPages:            *maxPages,
		RequiredPages:       splitList(*pages),
		ExcludeComponents:   splitList(*exclude),
		ForceComponents:     splitList(*force),
	}

	bundle, err := eng.GenerateWebsite(ctx, req, biz)
	if err != nil {
		log.Fatalf("generate website: %v", err)
	}

	raw, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		log.Fatalf("encode bundle: %v", err)
	}
	raw = append(raw, '\n')

	if *outPath == "-" || *outPath == "" {
		if _, err := os.Stdout.Write(raw); err != nil {
			log.Fatalf("write bundle: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
		log.Fatalf("write bundle: %v", err)
	}
	log.Printf("bundle written to %s (%d pages, %d failed)", *outPath, len(bundle.Pages), len(bundle.FailedPages))
}

func loadBusinessData(ctx context.Context, path, dir, siteID string) (*site.BusinessDataContext, error) {
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var snap site.BusinessDataContext
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, err
		}
		return &snap, nil
	}
	if strings.TrimSpace(siteID) == "" {
		return &site.BusinessDataContext{}, nil
	}
	store := bizdata.NewFromEnv(dir)
	defer store.Close()
	return store.Snapshot(ctx, siteID)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
