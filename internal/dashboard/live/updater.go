// Package live drives the simulated real-time feed of the live monitor.
package live

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

const DefaultInterval = 15 * time.Second

type Injector interface {
	ActiveSection(ctx context.Context) entity.Section
	InjectTransaction(ctx context.Context) entity.Transaction
}

// Updater injects one simulated transaction per tick while the live monitor
// is the active section.
type Updater struct {
	injector Injector
	interval time.Duration
}

func NewUpdater(injector Injector, interval time.Duration) *Updater {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Updater{injector: injector, interval: interval}
}

// Run ticks until ctx is done. It always returns nil.
func (u *Updater) Run(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "live updater started", "interval", u.interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "live updater stopped")
			return nil
		case <-ticker.C:
			u.Tick(ctx)
		}
	}
}

// Tick performs a single update. It reports whether a transaction was
// injected.
func (u *Updater) Tick(ctx context.Context) bool {
	if u.injector.ActiveSection(ctx) != entity.SectionLiveMonitor {
		return false
	}

	tx := u.injector.InjectTransaction(ctx)
	slog.DebugContext(ctx, "live transaction injected", "txn_id", tx.ID, "status", tx.Status)
	return true
}
