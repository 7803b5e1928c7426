package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkglog"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkguid"
)

//nolint:gochecknoglobals // read once at startup
var configDefaults = map[string]any{
	"tz":                                     "UTC",
	"log.level":                              "info",
	"server.address.http":                    ":8080",
	"modules.dashboard.enabled":              true,
	"modules.dashboard.seed":                 0,
	"modules.dashboard.latency":              "1500ms",
	"modules.dashboard.live.interval":        "15s",
	"modules.dashboard.fixture_path":         "",
	"modules.dashboard.stream.buffer":        16,
	"modules.dashboard.stream.ping_interval": "30s",
}

func (a *App) initConfig() {
	path := a.configPath
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := pkgconfig.NewViper(path, configDefaults)
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	if level := cfg.GetString("log.level"); !pkglog.SetLevel(level) {
		slog.Warn("unknown log level, keeping info", "level", level)
	}

	a.config = cfg
	a.addCloser("Config", func(context.Context) error {
		return cfg.Close()
	})
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
