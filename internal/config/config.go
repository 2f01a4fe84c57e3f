package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	GeminiModel string
	Concurrency int
	BizdataDir  string
	BizdataDSN  string
	Bundle      BundleConfig
}

type BundleConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8082", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:        *port,
		Env:         env,
		GeminiModel: firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.5-flash"),
		Concurrency: resolveConcurrency(),
		BizdataDir:  firstNonEmpty(strings.TrimSpace(os.Getenv("BIZDATA_DIR")), "data/bizdata"),
		BizdataDSN:  strings.TrimSpace(os.Getenv("BIZDATA_PG_DSN")),
		Bundle:      loadBundleConfig(env),
	}, nil
}

func resolveConcurrency() int {
	raw := strings.TrimSpace(os.Getenv("PAGE_CONCURRENCY"))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func loadBundleConfig(env string) BundleConfig {
	endpoint := resolveBundleEndpoint(env)
	return BundleConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_BUCKET")), "dramac-bundles"),
		UseSSL:    resolveBundleUseSSL(env),
	}
}

func resolveBundleEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("BUNDLE_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("BUNDLE_S3_ENDPOINT"))
}

func resolveBundleUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("BUNDLE_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
