package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything chatlens reads from the environment. A .env file in
// the working directory is loaded first (if present), then real environment
// variables win.
type Config struct {
	// AnalyzerURL is the base URL of the remote analysis service. Required.
	AnalyzerURL string
	// Addr is the listen address for the dashboard server.
	Addr string
	// PublicURL is the externally reachable base URL of this server, used
	// when building QR deep links. Falls back to http://<Addr>.
	PublicURL string
}

const defaultAddr = "127.0.0.1:8490"

// LoadConfig reads configuration from .env / environment variables.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; a broken one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		AnalyzerURL: strings.TrimRight(os.Getenv("CHATLENS_ANALYZER_URL"), "/"),
		Addr:        os.Getenv("CHATLENS_ADDR"),
		PublicURL:   strings.TrimRight(os.Getenv("CHATLENS_PUBLIC_URL"), "/"),
	}

	if cfg.AnalyzerURL == "" {
		return nil, fmt.Errorf("CHATLENS_ANALYZER_URL is required")
	}
	if u, err := url.Parse(cfg.AnalyzerURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("CHATLENS_ANALYZER_URL %q is not an absolute URL", cfg.AnalyzerURL)
	}

	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://" + cfg.Addr
	}

	return cfg, nil
}
