package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/paywatch/internal/dashboard"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.dashboard.enabled") {
		closer, err := dashboard.New(dashboard.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module dashboard", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			a.addCloser("Dashboard", closer)
		}
	}
}
