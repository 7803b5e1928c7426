package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/event"
	"github.com/shandysiswandi/paywatch/internal/dashboard/fixture"
	"github.com/shandysiswandi/paywatch/internal/dashboard/inbound"
	"github.com/shandysiswandi/paywatch/internal/dashboard/live"
	"github.com/shandysiswandi/paywatch/internal/dashboard/render"
	"github.com/shandysiswandi/paywatch/internal/dashboard/store"
	"github.com/shandysiswandi/paywatch/internal/dashboard/stream"
	"github.com/shandysiswandi/paywatch/internal/dashboard/usecase"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrand"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkguid"
)

const eventBuffer = 256

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	cfg := dep.Config

	ds, err := fixture.Load(cfg.GetString("modules.dashboard.fixture_path"))
	if err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}

	eventID, err := pkguid.NewSnowflake()
	if err != nil {
		return nil, fmt.Errorf("creating event id generator: %w", err)
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	hub := stream.NewHub(stream.Config{
		Buffer:       int(cfg.GetInt("modules.dashboard.stream.buffer")),
		PingInterval: cfg.GetDuration("modules.dashboard.stream.ping_interval"),
		ClientID:     dep.ID,
	})
	bus := event.NewBus(eventBuffer)
	broadcaster := event.NewBroadcaster(bus, hub)
	broadcaster.Start()

	uc := usecase.New(usecase.Dependency{
		Store:   store.NewInMemoryStore(ds),
		Events:  bus,
		Random:  pkgrand.New(uint64(cfg.GetInt("modules.dashboard.seed"))),
		EventID: eventID,
		Latency: cfg.GetDuration("modules.dashboard.latency"),
	})

	view, err := render.New(location(cfg.GetString("tz")))
	if err != nil {
		_ = broadcaster.Stop(context.Background())
		return nil, err
	}

	updater := live.NewUpdater(uc, cfg.GetDuration("modules.dashboard.live.interval"))
	dep.Goroutine.Go(dep.Context, "live updater", updater.Run)

	inbound.RegisterHTTPEndpoint(dep.Router, uc, view, hub)

	slog.Info("dashboard module ready",
		"transactions", len(ds.Transactions),
		"tickets", len(ds.Tickets),
		"fixture", cfg.GetString("modules.dashboard.fixture_path"),
	)

	return func(ctx context.Context) error {
		err := broadcaster.Stop(ctx)
		hub.Close()
		return err
	}, nil
}

func location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, falling back to UTC", "tz", name, "error", err)
		return time.UTC
	}
	return loc
}
