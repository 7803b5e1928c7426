package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgerror"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgrouter"
)

const maxBodyBytes = 64 * 1024

type HTTPEndpoint struct {
	uc   uc
	view renderer
}

// Transactions filters the live sequence. Query parameters that are present
// override the session filter; absent ones fall back to it.
func (h *HTTPEndpoint) Transactions(ctx context.Context, r *http.Request) (any, error) {
	filter := mergeTransactionFilter(h.uc.Filters(ctx).Transactions, r)

	return TransactionsResponse{
		Transactions: toHTTPTransactions(h.uc.Transactions(ctx, filter)),
		filter:       filter,
	}, nil
}

func (h *HTTPEndpoint) Tickets(ctx context.Context, r *http.Request) (any, error) {
	filter := mergeTicketFilter(h.uc.Filters(ctx).Tickets, r)

	return TicketsResponse{
		Tickets: toHTTPTickets(h.uc.Tickets(ctx, filter)),
		filter:  filter,
	}, nil
}

func (h *HTTPEndpoint) GetFilters(ctx context.Context, r *http.Request) (any, error) {
	return toHTTPFilterState(h.uc.Filters(ctx)), nil
}

func (h *HTTPEndpoint) PutFilters(ctx context.Context, r *http.Request) (any, error) {
	var req FilterState
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	return toHTTPFilterState(h.uc.SetFilters(ctx, req.entity())), nil
}

func (h *HTTPEndpoint) GetNavigation(ctx context.Context, r *http.Request) (any, error) {
	return NavigationResponse{Section: h.uc.ActiveSection(ctx), Sections: entity.Sections()}, nil
}

func (h *HTTPEndpoint) PutNavigation(ctx context.Context, r *http.Request) (any, error) {
	var req NavigationRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	if err := h.uc.Navigate(ctx, req.Section); err != nil {
		return nil, err
	}

	return NavigationResponse{Section: h.uc.ActiveSection(ctx), Sections: entity.Sections()}, nil
}

func (h *HTTPEndpoint) Metrics(ctx context.Context, r *http.Request) (any, error) {
	return toHTTPMetrics(h.uc.Metrics(ctx), ""), nil
}

func (h *HTTPEndpoint) Refresh(ctx context.Context, r *http.Request) (any, error) {
	metrics, err := h.uc.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	return toHTTPMetrics(metrics, "metrics refreshed"), nil
}

func (h *HTTPEndpoint) ErrorCodes(ctx context.Context, r *http.Request) (any, error) {
	codes := h.uc.ErrorCodes(ctx)
	out := make([]ErrorCode, 0, len(codes))
	for _, c := range codes {
		out = append(out, ErrorCode(c))
	}
	return out, nil
}

func (h *HTTPEndpoint) Endpoints(ctx context.Context, r *http.Request) (any, error) {
	endpoints := h.uc.Endpoints(ctx)
	out := make([]Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		out = append(out, Endpoint{
			Name:        e.Name,
			Method:      e.Method,
			Endpoint:    e.Path,
			Description: e.Description,
			Status:      e.Status,
		})
	}
	return out, nil
}

func (h *HTTPEndpoint) KnowledgeBase(ctx context.Context, r *http.Request) (any, error) {
	query, _ := pkgrouter.GetQuery(r, "q")
	items := h.uc.SearchKnowledge(ctx, query)

	out := make([]KnowledgeItem, 0, len(items))
	for _, item := range items {
		out = append(out, KnowledgeItem(item))
	}
	return KnowledgeResponse{Items: out, query: query}, nil
}

func (h *HTTPEndpoint) Troubleshooting(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Troubleshoot(ctx, pkgrouter.GetParam(ctx, "issue"))
	if err != nil {
		return nil, err
	}

	return toHTTPTroubleshooting(result), nil
}

func (h *HTTPEndpoint) Chart(ctx context.Context, r *http.Request) (any, error) {
	series, err := h.uc.Chart(ctx, pkgrouter.GetParam(ctx, "name"))
	if err != nil {
		return nil, err
	}

	return ChartResponse(series), nil
}

func (h *HTTPEndpoint) ConsoleTest(ctx context.Context, r *http.Request) (any, error) {
	var req ConsoleTestRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TestEndpoint(ctx, strings.TrimSpace(req.Endpoint))
	if err != nil {
		return nil, err
	}

	return toHTTPConsole(resp), nil
}

func (h *HTTPEndpoint) Report(ctx context.Context, r *http.Request) (any, error) {
	file, err := newReportFile(h.uc.BuildReport(ctx))
	if err != nil {
		return nil, pkgerror.NewServer(err)
	}

	return file, nil
}

// Fragment renders the HTML for a section using the session filters. The
// dashboard and analytics sections are chart only and have no fragment.
func (h *HTTPEndpoint) Fragment(ctx context.Context, r *http.Request) (any, error) {
	section := entity.Section(pkgrouter.GetParam(ctx, "section"))
	filters := h.uc.Filters(ctx)

	var (
		body []byte
		err  error
	)
	switch section {
	case entity.SectionLiveMonitor:
		body, err = h.view.Transactions(h.uc.Transactions(ctx, filters.Transactions))
	case entity.SectionSystemHealth:
		body, err = h.view.Services(h.uc.Metrics(ctx).Services)
	case entity.SectionTroubleshooting:
		body, err = h.troubleshootingFragment(ctx, r.URL.Query().Get("issue"))
	case entity.SectionSupportTickets:
		body, err = h.view.Tickets(h.uc.Tickets(ctx, filters.Tickets))
	case entity.SectionAPIConsole:
		body, err = h.view.EndpointOptions(h.uc.Endpoints(ctx))
	case entity.SectionKnowledgeBase:
		body, err = h.view.Knowledge(h.uc.SearchKnowledge(ctx, strings.TrimSpace(r.URL.Query().Get("q"))))
	default:
		return nil, pkgerror.NewBusiness(fmt.Sprintf("no fragment for section %q", section), pkgerror.CodeNotFound)
	}
	if err != nil {
		var perr *pkgerror.Error
		if errors.As(err, &perr) {
			return nil, perr
		}
		return nil, pkgerror.NewServer(err)
	}

	return Fragment(body), nil
}

// troubleshootingFragment renders the error code catalog, or the guide for
// issue when one is asked for.
func (h *HTTPEndpoint) troubleshootingFragment(ctx context.Context, issue string) ([]byte, error) {
	if issue == "" {
		return h.view.ErrorCodes(h.uc.ErrorCodes(ctx))
	}

	result, err := h.uc.Troubleshoot(ctx, issue)
	if err != nil {
		return nil, err
	}
	return h.view.Troubleshooting(result.Heading, result.Steps)
}

func mergeTransactionFilter(filter entity.TransactionFilter, r *http.Request) entity.TransactionFilter {
	if v, ok := pkgrouter.GetQuery(r, "status"); ok {
		filter.Status = entity.TxStatus(v)
	}
	if v, ok := pkgrouter.GetQuery(r, "method"); ok {
		filter.Method = v
	}
	if v, ok := pkgrouter.GetQuery(r, "search"); ok {
		filter.Search = v
	}
	return filter
}

func mergeTicketFilter(filter entity.TicketFilter, r *http.Request) entity.TicketFilter {
	if v, ok := pkgrouter.GetQuery(r, "status"); ok {
		filter.Status = entity.TicketStatus(v)
	}
	if v, ok := pkgrouter.GetQuery(r, "priority"); ok {
		filter.Priority = entity.TicketPriority(v)
	}
	return filter
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return pkgerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return pkgerror.NewInvalidFormat()
	}
	return nil
}
