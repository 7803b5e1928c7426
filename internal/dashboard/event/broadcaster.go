package event

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

type Handler interface {
	Handle(ctx context.Context, event entity.TransactionEvent) error
}

// Broadcaster drains the bus on a single worker and hands each event to the
// handler once. Events carrying an already seen ID are skipped; failed
// deliveries are logged and dropped.
type Broadcaster struct {
	bus     *Bus
	handler Handler
	seen    sync.Map
	wg      sync.WaitGroup
}

func NewBroadcaster(bus *Bus, handler Handler) *Broadcaster {
	return &Broadcaster{bus: bus, handler: handler}
}

func (b *Broadcaster) Start() {
	b.wg.Add(1)
	go b.worker()
}

// Stop closes the bus and waits for the pending events to be delivered.
func (b *Broadcaster) Stop(ctx context.Context) error {
	if b.bus != nil {
		b.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Broadcaster) worker() {
	defer b.wg.Done()

	for event := range b.bus.Subscribe() {
		b.deliver(event)
	}
}

func (b *Broadcaster) deliver(event entity.TransactionEvent) {
	if b.handler == nil {
		return
	}

	if event.EventID != "" {
		if _, loaded := b.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate transaction event", "event_id", event.EventID, "txn_id", event.Tx.ID)
			return
		}
	}

	if err := b.handler.Handle(context.Background(), event); err != nil {
		slog.Error("failed to broadcast transaction event", "event_id", event.EventID, "txn_id", event.Tx.ID, "error", err)
	}
}
