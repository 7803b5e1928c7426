package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/paywatch/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkglog"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	configPath string
	config     pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// released in reverse order by Stop
	closers []namedCloser
}

// New wires the application. configPath overrides the default config file
// location when not empty.
func New(configPath string) *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:        ctx,
		cancel:     cancel,
		configPath: configPath,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()

	return app
}
