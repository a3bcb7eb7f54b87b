package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vestia-market/vestia-cli/internal/api"
	"github.com/vestia-market/vestia-cli/internal/catalog"
	"github.com/vestia-market/vestia-cli/internal/config"
	"github.com/vestia-market/vestia-cli/internal/orders"
	"github.com/vestia-market/vestia-cli/internal/session"
	"github.com/vestia-market/vestia-cli/internal/telemetry"
)

const version = "0.1.0"

// app is the application root: it owns the session lifecycle and hands the
// constructed services to the commands.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	session  *session.Store
	catalog  *catalog.Service
	orders   *orders.Service
	shutdown func(context.Context) error
}

func newApp(ctx context.Context) (*app, error) {
	_ = godotenv.Load()
	cfg := config.Load()

	// Tables go to stdout; logs stay on stderr and out of the way.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	shutdown := func(context.Context) error { return nil }
	if cfg.OTLPEndpoint != "" {
		var err error
		shutdown, err = telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint, "vestia-cli", version)
		if err != nil {
			return nil, err
		}
	}

	store, err := session.NewStore(session.NewFileTokenStore(cfg.TokenFile), logger)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	client := api.NewClient(cfg.APIBaseURL, httpClient, store, logger)
	client.SetUnauthorizedHook(store.Expire)
	store.SetClient(client)

	return &app{
		cfg:      cfg,
		logger:   logger,
		session:  store,
		catalog:  catalog.NewService(client, logger),
		orders:   orders.NewService(client, logger),
		shutdown: shutdown,
	}, nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = a.shutdown(shutdownCtx)
	}()

	if err := newRootCommand(a).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
