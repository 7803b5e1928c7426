package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgerror"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrand"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkguid"
)

type Store interface {
	Snapshot(ctx context.Context) entity.Dataset
	Transactions(ctx context.Context) []entity.Transaction
	PrependTransaction(ctx context.Context, tx entity.Transaction)
	Tickets(ctx context.Context) []entity.SupportTicket
	ErrorCodes(ctx context.Context) []entity.ErrorCode
	Endpoints(ctx context.Context) []entity.APIEndpoint
	Knowledge(ctx context.Context) []entity.KnowledgeItem
	PaymentMethods(ctx context.Context) []entity.PaymentMethodShare
	Guide(ctx context.Context, issue string) (entity.TroubleshootingGuide, error)
	Metrics(ctx context.Context) entity.SystemMetrics
	AddTransactionVolume(ctx context.Context, delta int64) entity.SystemMetrics
	Filters(ctx context.Context) entity.FilterState
	SetFilters(ctx context.Context, filters entity.FilterState)
	ActiveSection(ctx context.Context) entity.Section
	SetActiveSection(ctx context.Context, section entity.Section)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.TransactionEvent) error
}

type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type Dependency struct {
	Store   Store
	Events  EventPublisher
	Clock   Clock
	Random  pkgrand.Source
	EventID pkguid.StringID
	// Latency is the artificial delay before the console and refresh
	// actions answer.
	Latency time.Duration
}

// Usecase is the dashboard view model: it derives filtered views from the
// store and performs the simulated mutations.
type Usecase struct {
	store   Store
	events  EventPublisher
	clock   Clock
	random  pkgrand.Source
	eventID pkguid.StringID
	latency time.Duration

	txnID     pkguid.StringID
	paymentID pkguid.StringID
	refundID  pkguid.StringID
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	random := dep.Random
	if random == nil {
		random = pkgrand.New(0)
	}

	return &Usecase{
		store:     dep.Store,
		events:    dep.Events,
		clock:     clock,
		random:    random,
		eventID:   dep.EventID,
		latency:   dep.Latency,
		txnID:     pkguid.NewBase36(random, "txn_", 10),
		paymentID: pkguid.NewBase36(random, "pay_", 9),
		refundID:  pkguid.NewBase36(random, "rfnd_", 9),
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Transactions returns the live sequence narrowed by filter.
func (u *Usecase) Transactions(ctx context.Context, filter entity.TransactionFilter) []entity.Transaction {
	return FilterTransactions(u.store.Transactions(ctx), filter)
}

// Tickets returns the support tickets narrowed by filter.
func (u *Usecase) Tickets(ctx context.Context, filter entity.TicketFilter) []entity.SupportTicket {
	return FilterTickets(u.store.Tickets(ctx), filter)
}

func (u *Usecase) Metrics(ctx context.Context) entity.SystemMetrics {
	return u.store.Metrics(ctx)
}

func (u *Usecase) ErrorCodes(ctx context.Context) []entity.ErrorCode {
	return u.store.ErrorCodes(ctx)
}

func (u *Usecase) Endpoints(ctx context.Context) []entity.APIEndpoint {
	return u.store.Endpoints(ctx)
}

func (u *Usecase) Filters(ctx context.Context) entity.FilterState {
	return u.store.Filters(ctx)
}

func (u *Usecase) SetFilters(ctx context.Context, filters entity.FilterState) entity.FilterState {
	u.store.SetFilters(ctx, filters)
	return filters
}

func (u *Usecase) ActiveSection(ctx context.Context) entity.Section {
	return u.store.ActiveSection(ctx)
}

// Navigate switches the active section.
func (u *Usecase) Navigate(ctx context.Context, section entity.Section) error {
	if !section.Valid() {
		return pkgerror.NewInvalidField("section", fmt.Sprintf("unknown section %q", section))
	}

	u.store.SetActiveSection(ctx, section)
	slog.DebugContext(ctx, "section changed", "section", section)

	return nil
}

var (
	liveMethods      = []string{"UPI", "Credit Card", "Net Banking", "Debit Card"}
	liveStatuses     = []entity.TxStatus{entity.TxStatusSuccess, entity.TxStatusFailed, entity.TxStatusPending}
	liveDescriptions = []string{"Online Purchase", "Bill Payment", "Mobile Recharge", "Subscription", "Food Order"}
)

// InjectTransaction synthesizes a random transaction, puts it at the head of
// the live sequence and announces it on the event bus.
func (u *Usecase) InjectTransaction(ctx context.Context) entity.Transaction {
	tx := entity.Transaction{
		ID:            u.txnID.Generate(),
		Amount:        int64(u.random.IntN(5000) + 100),
		Currency:      "INR",
		Status:        pkgrand.Pick(u.random, liveStatuses),
		PaymentMethod: pkgrand.Pick(u.random, liveMethods),
		Timestamp:     u.now(),
		MerchantID:    fmt.Sprintf("merchant_%03d", u.random.IntN(100)),
		CustomerEmail: fmt.Sprintf("customer%d@example.com", u.random.IntN(1000)),
		Description:   pkgrand.Pick(u.random, liveDescriptions),
	}

	u.store.PrependTransaction(ctx, tx)

	if u.events != nil {
		event := entity.TransactionEvent{Tx: tx}
		if u.eventID != nil {
			event.EventID = u.eventID.Generate()
		}
		if err := u.events.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish transaction event", "txn_id", tx.ID, "error", err)
		}
	}

	return tx
}

// BumpMetrics moves the transaction-volume counter forward by 1..50.
func (u *Usecase) BumpMetrics(ctx context.Context) entity.SystemMetrics {
	return u.store.AddTransactionVolume(ctx, int64(u.random.IntN(50)+1))
}

// Refresh simulates a backend round trip and then bumps the metrics.
func (u *Usecase) Refresh(ctx context.Context) (entity.SystemMetrics, error) {
	if err := u.wait(ctx); err != nil {
		return entity.SystemMetrics{}, err
	}

	return u.BumpMetrics(ctx), nil
}

// TestEndpoint simulates calling path on the gateway: it waits for the
// configured latency and returns the canned response.
func (u *Usecase) TestEndpoint(ctx context.Context, path string) (entity.ConsoleResponse, error) {
	if path == "" {
		return entity.ConsoleResponse{}, pkgerror.NewInvalidField("endpoint", "please select an endpoint first")
	}

	if err := u.wait(ctx); err != nil {
		return entity.ConsoleResponse{}, err
	}

	return u.LookupMockResponse(ctx, path), nil
}

func (u *Usecase) wait(ctx context.Context) error {
	if u.latency <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return pkgerror.NewTimeout(ctx.Err())
	case <-u.clock.After(u.latency):
		return nil
	}
}

func (u *Usecase) now() time.Time {
	return u.clock.Now().UTC().Truncate(time.Millisecond)
}

func mapStoreErr(err error, what string) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness(what+" not found", pkgerror.CodeNotFound)
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
