package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	APIBaseURL   string
	TokenFile    string
	HTTPTimeout  time.Duration
	OTLPEndpoint string
}

func Load() Config {
	return Config{
		APIBaseURL:   getenv("VESTIA_API_URL", "http://localhost:3000/api"),
		TokenFile:    getenv("VESTIA_TOKEN_FILE", defaultTokenFile()),
		HTTPTimeout:  getduration("VESTIA_HTTP_TIMEOUT", 10*time.Second),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".vestia", "token")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
