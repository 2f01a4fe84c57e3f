package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dramac-main/dramac-cms-sub014/internal/bizdata"
	"github.com/dramac-main/dramac-cms-sub014/internal/bundlestore"
	"github.com/dramac-main/dramac-cms-sub014/internal/config"
	"github.com/dramac-main/dramac-cms-sub014/internal/engine"
	"github.com/dramac-main/dramac-cms-sub014/internal/llm"
	"github.com/dramac-main/dramac-cms-sub014/internal/llmclient"
	"github.com/dramac-main/dramac-cms-sub014/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var base llmclient.LLMClient
	if offlineLLM() {
		base = llm.NewFakeClient()
		log.Println("OFFLINE_LLM set, using fake client")
	} else {
		base, err = llmclient.NewGeminiClient(ctx, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to init gemini client: %v", err)
		}
	}
	client := llm.Chain(base,
		llm.WithLogging(log.Default()),
		llm.Retry(3, 500*time.Millisecond),
		llm.Timeout(90*time.Second),
	)
	defer client.Close()

	biz := bizdata.NewFromEnv(cfg.BizdataDir)
	defer biz.Close()

	var bundles *bundlestore.S3Store
	if cfg.Bundle.Enabled {
		bundles, err = bundlestore.NewS3Store(bundlestore.S3Config{
			Endpoint:  cfg.Bundle.Endpoint,
			Region:    cfg.Bundle.Region,
			AccessKey: cfg.Bundle.AccessKey,
			SecretKey: cfg.Bundle.SecretKey,
			Bucket:    cfg.Bundle.Bucket,
			UseSSL:    cfg.Bundle.UseSSL,
		})
		if err != nil {
			log.Printf("Bundle store disabled: %v", err)
			bundles = nil
		}
	}

	hub := server.NewHub(log.Default())

	eng, err := engine.New(engine.Config{
		LLM:         client,
		Concurrency: cfg.Concurrency,
		Logger:      log.Default(),
		Progress:    hub,
	})
	if err != nil {
		log.Fatalf("Failed to init engine: %v", err)
	}

	svc := server.NewService(eng, biz, bundles, log.Default())
	srv := server.New(cfg.Port, server.NewMux(svc, hub))

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func offlineLLM() bool {
	raw := strings.TrimSpace(os.Getenv("OFFLINE_LLM"))
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
