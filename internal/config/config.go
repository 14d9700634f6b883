package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress             string
	DatabaseURI            string
	GeminiAPIKey           string
	GeminiModel            string
	GeminiBaseURL          string
	InsightsTimeout        time.Duration
	ShutdownTimeout        time.Duration
	LogLevel               string
	AllowedOrigins         []string
	AdminTokenHash         string
	StrictShipmentProgress bool
}

// Args are the command line arguments left for configuration flags.
type Args []string

const (
	defaultRunAddress      = ":3001"
	defaultGeminiModel     = "gemini-1.5-flash"
	defaultInsightsTimeout = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultAllowedOrigins  = "*"
)

var dotenvFiles = []string{".env"}

// Load reads an optional .env file, then parses configuration from environment and flags.
func Load(args Args) (*Config, error) {
	if err := loadDotEnv(dotenvFiles...); err != nil {
		return nil, err
	}
	return load(args, os.LookupEnv)
}

// loadDotEnv populates the process environment without overriding variables already set.
func loadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		GeminiAPIKey:           getString(lookup, "GEMINI_API_KEY", ""),
		GeminiModel:            getString(lookup, "GEMINI_MODEL", defaultGeminiModel),
		GeminiBaseURL:          getString(lookup, "GEMINI_BASE_URL", ""),
		InsightsTimeout:        getDuration(lookup, "INSIGHTS_TIMEOUT", defaultInsightsTimeout),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:               getString(lookup, "LOG_LEVEL", defaultLogLevel),
		AdminTokenHash:         getString(lookup, "ADMIN_TOKEN_HASH", ""),
		StrictShipmentProgress: getBool(lookup, "STRICT_SHIPMENT_PROGRESS", true),
	}

	fs := flag.NewFlagSet("logidash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		insightsTimeoutStr = cfg.InsightsTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		originsStr         = getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.GeminiModel, "model", cfg.GeminiModel, "Text generation model")
	fs.StringVar(&insightsTimeoutStr, "insights-timeout", insightsTimeoutStr, "Timeout for a single insights call")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&originsStr, "origins", originsStr, "Comma separated list of allowed CORS origins")
	fs.BoolVar(&cfg.StrictShipmentProgress, "strict-progress", cfg.StrictShipmentProgress, "Reject shipment progress outside 0..100")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.InsightsTimeout, err = time.ParseDuration(insightsTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid insights timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if hashFile, ok := lookup("ADMIN_TOKEN_HASH_FILE"); ok && hashFile != "" {
		content, err := os.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("read admin token hash file: %w", err)
		}
		cfg.AdminTokenHash = strings.TrimSpace(string(content))
	}

	cfg.AllowedOrigins = splitList(originsStr)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigins}
	}

	if cfg.InsightsTimeout <= 0 {
		cfg.InsightsTimeout = defaultInsightsTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
