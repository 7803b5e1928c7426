package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/dashboard/fixture"
	"github.com/shandysiswandi/paywatch/internal/dashboard/render"
	"github.com/shandysiswandi/paywatch/internal/dashboard/store"
	"github.com/shandysiswandi/paywatch/internal/dashboard/usecase"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrand"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkguid"
)

type envelope[T any] struct {
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Meta    map[string]any    `json:"meta,omitempty"`
	Error   map[string]string `json:"error,omitempty"`
}

type stoppedClock struct{ now time.Time }

func (c stoppedClock) Now() time.Time { return c.now }

func (c stoppedClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.now.Add(d)
	return ch
}

func newTestRouter(t *testing.T) (http.Handler, *usecase.Usecase) {
	t.Helper()

	ds, err := fixture.Seed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	view, err := render.New(time.UTC)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	uc := usecase.New(usecase.Dependency{
		Store:   store.NewInMemoryStore(ds),
		Clock:   stoppedClock{now: time.Date(2025, 8, 15, 11, 0, 0, 0, time.UTC)},
		Random:  pkgrand.New(42),
		Latency: time.Second,
	})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc, view, nil)
	return router, uc
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return env
}

func TestTransactionsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/transactions?status=success", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	env := decode[TransactionsResponse](t, rec)
	var ids []string
	for _, tx := range env.Data.Transactions {
		ids = append(ids, tx.ID)
	}
	if strings.Join(ids, ",") != "txn_1234567890,txn_1234567893,txn_1234567894" {
		t.Fatalf("unexpected ids %v", ids)
	}
	if env.Meta["total"] != float64(3) {
		t.Fatalf("unexpected meta %v", env.Meta)
	}
	if !strings.Contains(rec.Body.String(), `"paymentMethod":"UPI"`) {
		t.Fatalf("expected camelCase keys: %s", rec.Body.String())
	}
}

func TestSessionFiltersApplyToListsAndFragments(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/filters", FilterState{
		Transactions: TransactionFilter{Method: "Credit Card"},
		Tickets:      TicketFilter{Priority: entity.TicketPriorityHigh},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("put filters: %d %s", rec.Code, rec.Body.String())
	}

	txs := decode[TransactionsResponse](t, do(t, router, http.MethodGet, "/transactions", nil))
	if len(txs.Data.Transactions) != 1 || txs.Data.Transactions[0].ID != "txn_1234567891" {
		t.Fatalf("session filter not applied: %+v", txs.Data.Transactions)
	}

	tickets := decode[TicketsResponse](t, do(t, router, http.MethodGet, "/tickets", nil))
	if len(tickets.Data.Tickets) != 1 || tickets.Data.Tickets[0].ID != "TKT-001" {
		t.Fatalf("unexpected tickets %+v", tickets.Data.Tickets)
	}

	override := decode[TransactionsResponse](t, do(t, router, http.MethodGet, "/transactions?method=", nil))
	if len(override.Data.Transactions) != 5 {
		t.Fatalf("explicit empty method should clear the filter, got %d", len(override.Data.Transactions))
	}

	frag := do(t, router, http.MethodGet, "/fragments/support-tickets", nil)
	if ct := frag.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if html := frag.Body.String(); !strings.Contains(html, "TKT-001") || strings.Contains(html, "TKT-002") {
		t.Fatalf("fragment ignores session filters:\n%s", html)
	}
}

func TestPutFiltersRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/filters", strings.NewReader(`{"transactions":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNavigationEndpoint(t *testing.T) {
	router, uc := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/navigation", NavigationRequest{Section: entity.SectionLiveMonitor})
	if rec.Code != http.StatusOK {
		t.Fatalf("navigate: %d %s", rec.Code, rec.Body.String())
	}
	if uc.ActiveSection(context.Background()) != entity.SectionLiveMonitor {
		t.Fatal("section not stored")
	}

	rec = do(t, router, http.MethodPut, "/navigation", NavigationRequest{Section: "settings"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if env := decode[any](t, rec); env.Error["section"] == "" {
		t.Fatalf("expected section field error: %s", rec.Body.String())
	}

	nav := decode[NavigationResponse](t, do(t, router, http.MethodGet, "/navigation", nil))
	if nav.Data.Section != entity.SectionLiveMonitor || len(nav.Data.Sections) != 8 {
		t.Fatalf("unexpected navigation %+v", nav.Data)
	}
}

func TestRefreshBumpsVolume(t *testing.T) {
	router, _ := newTestRouter(t)

	before := decode[MetricsResponse](t, do(t, router, http.MethodGet, "/metrics", nil))
	rec := do(t, router, http.MethodPost, "/refresh", nil)
	after := decode[MetricsResponse](t, rec)

	if after.Message != "metrics refreshed" {
		t.Fatalf("unexpected message %q", after.Message)
	}
	delta := after.Data.TransactionVolume - before.Data.TransactionVolume
	if delta < 1 || delta > 50 {
		t.Fatalf("unexpected delta %d", delta)
	}
	if len(after.Data.Services) != 4 || after.Data.Services[2].Status != entity.HealthDegraded {
		t.Fatalf("unexpected services %+v", after.Data.Services)
	}
}

func TestConsoleTestEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	env := decode[ConsoleTestResponse](t, do(t, router, http.MethodPost, "/console/test", ConsoleTestRequest{Endpoint: "/v1/payments"}))
	if env.Data.Status != "created" || !strings.HasPrefix(env.Data.ID, "pay_") {
		t.Fatalf("unexpected response %+v", env.Data)
	}

	rec := do(t, router, http.MethodPost, "/console/test", ConsoleTestRequest{Endpoint: "/v9/unknown"})
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown endpoint should be in-band, got %d", rec.Code)
	}
	env = decode[ConsoleTestResponse](t, rec)
	if env.Data.Error != "Endpoint not found" || env.Data.ErrMessage != "The requested API endpoint is not available" {
		t.Fatalf("unexpected not found payload %s", rec.Body.String())
	}

	rec = do(t, router, http.MethodPost, "/console/test", ConsoleTestRequest{})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty endpoint, got %d", rec.Code)
	}
}

func TestReportDownload(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/report", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename=paywatch-report-2025-08-15.json` {
		t.Fatalf("unexpected disposition %q", cd)
	}

	var report map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	for _, key := range []string{
		"generated_at", "transaction_volume", "success_rate", "response_time", "error_rate",
		"active_issues", "system_status", "top_payment_methods", "recent_transactions",
	} {
		if _, ok := report[key]; !ok {
			t.Fatalf("missing %s in report", key)
		}
	}
	if report["active_issues"] != float64(2) || report["system_status"] != "operational" {
		t.Fatalf("unexpected report %v", report)
	}
	recent := report["recent_transactions"].([]any)
	if first := recent[0].(map[string]any); first["merchantId"] != "merchant_001" {
		t.Fatalf("unexpected first transaction %v", first)
	}
}

func TestReferenceEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	codes := decode[[]ErrorCode](t, do(t, router, http.MethodGet, "/error-codes", nil))
	if len(codes.Data) != 5 || codes.Data[0].Code != "insufficient_funds" {
		t.Fatalf("unexpected codes %+v", codes.Data)
	}

	endpoints := decode[[]Endpoint](t, do(t, router, http.MethodGet, "/endpoints", nil))
	if len(endpoints.Data) != 4 || endpoints.Data[1].Endpoint != "/v1/payments/{id}/capture" {
		t.Fatalf("unexpected endpoints %+v", endpoints.Data)
	}

	kb := decode[KnowledgeResponse](t, do(t, router, http.MethodGet, "/knowledge-base?q=refund", nil))
	if len(kb.Data.Items) != 1 || kb.Data.Items[0].Title != "Refund Processing Delays" {
		t.Fatalf("unexpected knowledge %+v", kb.Data.Items)
	}

	guide := decode[TroubleshootingResponse](t, do(t, router, http.MethodGet, "/troubleshooting/webhook-issues", nil))
	if guide.Data.Heading != "Troubleshooting Steps for WEBHOOK ISSUES" || len(guide.Data.Steps) != 5 {
		t.Fatalf("unexpected guide %+v", guide.Data)
	}

	chart := decode[ChartResponse](t, do(t, router, http.MethodGet, "/charts/volume", nil))
	if chart.Data.Kind != "bar" || len(chart.Data.Values) != 7 {
		t.Fatalf("unexpected chart %+v", chart.Data)
	}

	if rec := do(t, router, http.MethodGet, "/charts/heatmap", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown chart, got %d", rec.Code)
	}
}

func TestFragments(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := map[string]string{
		"/fragments/live-monitor":                          `<div class="transaction-id">txn_1234567890</div>`,
		"/fragments/system-health":                         "Refund API",
		"/fragments/troubleshooting":                       `<div class="error-code">bank_declined</div>`,
		"/fragments/troubleshooting?issue=payment-failure": "<h4>Troubleshooting Steps for PAYMENT FAILURE</h4>",
		"/fragments/api-console":                           "POST /v1/payments - Create Payment",
		"/fragments/knowledge-base?q=webhook":              "<h4>Webhook Timeout Issues</h4>",
	}
	for target, want := range cases {
		rec := do(t, router, http.MethodGet, target, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("%s: missing %q in:\n%s", target, want, rec.Body.String())
		}
	}

	if rec := do(t, router, http.MethodGet, "/fragments/analytics", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for chart-only section, got %d", rec.Code)
	}
}
