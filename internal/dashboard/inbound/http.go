package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/dashboard/usecase"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrouter"
)

type uc interface {
	Transactions(ctx context.Context, filter entity.TransactionFilter) []entity.Transaction
	Tickets(ctx context.Context, filter entity.TicketFilter) []entity.SupportTicket
	Filters(ctx context.Context) entity.FilterState
	SetFilters(ctx context.Context, filters entity.FilterState) entity.FilterState
	ActiveSection(ctx context.Context) entity.Section
	Navigate(ctx context.Context, section entity.Section) error
	Metrics(ctx context.Context) entity.SystemMetrics
	Refresh(ctx context.Context) (entity.SystemMetrics, error)
	ErrorCodes(ctx context.Context) []entity.ErrorCode
	Endpoints(ctx context.Context) []entity.APIEndpoint
	SearchKnowledge(ctx context.Context, query string) []entity.KnowledgeItem
	Troubleshoot(ctx context.Context, issue string) (usecase.TroubleshootingResult, error)
	Chart(ctx context.Context, name string) (entity.ChartSeries, error)
	TestEndpoint(ctx context.Context, path string) (entity.ConsoleResponse, error)
	BuildReport(ctx context.Context) entity.Report
}

type renderer interface {
	Transactions(txs []entity.Transaction) ([]byte, error)
	Services(services []entity.ServiceHealth) ([]byte, error)
	ErrorCodes(codes []entity.ErrorCode) ([]byte, error)
	Tickets(tickets []entity.SupportTicket) ([]byte, error)
	EndpointOptions(endpoints []entity.APIEndpoint) ([]byte, error)
	Knowledge(items []entity.KnowledgeItem) ([]byte, error)
	Troubleshooting(heading string, steps []string) ([]byte, error)
}

// RegisterHTTPEndpoint mounts the dashboard API. stream serves the live
// transaction WebSocket and may be nil.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, view renderer, stream http.Handler) {
	end := &HTTPEndpoint{uc: uc, view: view}

	r.GET("/transactions", end.Transactions) // ?status=&method=&search=
	r.GET("/tickets", end.Tickets)           // ?status=&priority=

	r.GET("/filters", end.GetFilters)
	r.PUT("/filters", end.PutFilters)
	r.GET("/navigation", end.GetNavigation)
	r.PUT("/navigation", end.PutNavigation)

	r.GET("/metrics", end.Metrics)
	r.POST("/refresh", end.Refresh)

	r.GET("/error-codes", end.ErrorCodes)
	r.GET("/endpoints", end.Endpoints)
	r.GET("/knowledge-base", end.KnowledgeBase) // ?q=
	r.GET("/troubleshooting/:issue", end.Troubleshooting)
	r.GET("/charts/:name", end.Chart)

	r.POST("/console/test", end.ConsoleTest)
	r.GET("/report", end.Report)
	r.GET("/fragments/:section", end.Fragment)

	if stream != nil {
		r.Handle(http.MethodGet, "/ws/transactions", stream)
	}
}
