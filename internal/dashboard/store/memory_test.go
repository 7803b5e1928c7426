package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgerror"
)

func dataset(n int) entity.Dataset {
	ds := entity.Dataset{
		Guides: []entity.TroubleshootingGuide{
			{Issue: "payment-failure", Steps: []string{"1. one", "2. two"}},
		},
		Metrics: entity.SystemMetrics{
			Services:          []entity.ServiceHealth{{Name: "paymentAPI", Status: entity.HealthHealthy}},
			TransactionVolume: 100,
		},
	}
	for i := 0; i < n; i++ {
		ds.Transactions = append(ds.Transactions, entity.Transaction{ID: fmt.Sprintf("txn_%02d", i)})
	}
	return ds
}

func TestInMemoryStore_PrependTransaction_CapsAndOrders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore(dataset(entity.MaxLiveTransactions))

	store.PrependTransaction(ctx, entity.Transaction{ID: "txn_new"})

	got := store.Transactions(ctx)
	if len(got) != entity.MaxLiveTransactions {
		t.Fatalf("Transactions() len = %d, want %d", len(got), entity.MaxLiveTransactions)
	}
	if got[0].ID != "txn_new" {
		t.Fatalf("Transactions()[0] = %q, want txn_new", got[0].ID)
	}
	if got[1].ID != "txn_00" {
		t.Fatalf("Transactions()[1] = %q, want txn_00", got[1].ID)
	}
	if last := got[len(got)-1].ID; last != "txn_18" {
		t.Fatalf("oldest kept = %q, want txn_18", last)
	}
}

func TestInMemoryStore_PrependTransaction_BelowCap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore(dataset(2))

	store.PrependTransaction(ctx, entity.Transaction{ID: "txn_new"})

	got := store.Transactions(ctx)
	if len(got) != 3 || got[0].ID != "txn_new" || got[2].ID != "txn_01" {
		t.Fatalf("Transactions() = %+v", got)
	}
}

func TestInMemoryStore_NewTrimsOversizedSeed(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore(dataset(entity.MaxLiveTransactions + 5))
	if got := len(store.Transactions(context.Background())); got != entity.MaxLiveTransactions {
		t.Fatalf("Transactions() len = %d, want %d", got, entity.MaxLiveTransactions)
	}
}

func TestInMemoryStore_ReadsAreCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := dataset(3)
	store := NewInMemoryStore(seed)

	seed.Transactions[0].ID = "mutated-seed"
	txs := store.Transactions(ctx)
	txs[1].ID = "mutated-read"

	metrics := store.Metrics(ctx)
	metrics.Services[0].Status = entity.HealthDown

	guide, err := store.Guide(ctx, "payment-failure")
	if err != nil {
		t.Fatalf("Guide() err = %v", err)
	}
	guide.Steps[0] = "mutated"

	snap := store.Snapshot(ctx)
	if snap.Transactions[0].ID != "txn_00" || snap.Transactions[1].ID != "txn_01" {
		t.Fatalf("store leaked transaction slice: %+v", snap.Transactions)
	}
	if snap.Metrics.Services[0].Status != entity.HealthHealthy {
		t.Fatalf("store leaked services slice")
	}
	if snap.Guides[0].Steps[0] != "1. one" {
		t.Fatalf("store leaked guide steps")
	}
}

func TestInMemoryStore_GuideNotFound(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore(dataset(0))
	_, err := store.Guide(context.Background(), "unknown")
	if !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Guide() err = %v, want ErrNotFound", err)
	}
}

func TestInMemoryStore_AddTransactionVolume(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore(dataset(0))

	m := store.AddTransactionVolume(ctx, 7)
	if m.TransactionVolume != 107 {
		t.Fatalf("AddTransactionVolume() = %d, want 107", m.TransactionVolume)
	}
	if got := store.Metrics(ctx).TransactionVolume; got != 107 {
		t.Fatalf("Metrics().TransactionVolume = %d, want 107", got)
	}
}

func TestInMemoryStore_SessionState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore(dataset(0))

	if got := store.ActiveSection(ctx); got != entity.SectionDashboard {
		t.Fatalf("ActiveSection() = %q, want dashboard", got)
	}
	store.SetActiveSection(ctx, entity.SectionLiveMonitor)
	if got := store.ActiveSection(ctx); got != entity.SectionLiveMonitor {
		t.Fatalf("ActiveSection() = %q, want live-monitor", got)
	}

	if got := store.Filters(ctx); got != (entity.FilterState{}) {
		t.Fatalf("Filters() = %+v, want zero", got)
	}
	want := entity.FilterState{
		Transactions: entity.TransactionFilter{Status: entity.TxStatusFailed, Search: "123"},
		Tickets:      entity.TicketFilter{Priority: entity.TicketPriorityHigh},
	}
	store.SetFilters(ctx, want)
	if got := store.Filters(ctx); got != want {
		t.Fatalf("Filters() = %+v, want %+v", got, want)
	}
}

func TestInMemoryStore_ConcurrentPrepend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewInMemoryStore(dataset(0))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.PrependTransaction(ctx, entity.Transaction{ID: fmt.Sprintf("txn_c%d", i)})
			_ = store.Transactions(ctx)
		}(i)
	}
	wg.Wait()

	if got := len(store.Transactions(ctx)); got != entity.MaxLiveTransactions {
		t.Fatalf("Transactions() len = %d, want %d", got, entity.MaxLiveTransactions)
	}
}
