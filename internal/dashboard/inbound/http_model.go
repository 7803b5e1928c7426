package inbound

import (
	"encoding/json"
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/dashboard/usecase"
)

// Transaction uses the dashboard's camelCase keys; the exported report
// embeds the same shape.
type Transaction struct {
	ID            string          `json:"id"`
	Amount        int64           `json:"amount"`
	Currency      string          `json:"currency"`
	Status        entity.TxStatus `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Timestamp     time.Time       `json:"timestamp"`
	MerchantID    string          `json:"merchantId"`
	CustomerEmail string          `json:"customerEmail"`
	Description   string          `json:"description"`
	ErrorCode     string          `json:"errorCode,omitempty"`
}

type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	filter       entity.TransactionFilter
}

func (r TransactionsResponse) Meta() map[string]any {
	return map[string]any{
		"total":  len(r.Transactions),
		"status": r.filter.Status,
		"method": r.filter.Method,
		"search": r.filter.Search,
	}
}

type Ticket struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Status      entity.TicketStatus   `json:"status"`
	Priority    entity.TicketPriority `json:"priority"`
	Customer    string                `json:"customer"`
	Created     time.Time             `json:"created"`
	Description string                `json:"description"`
}

type TicketsResponse struct {
	Tickets []Ticket `json:"tickets"`
	filter  entity.TicketFilter
}

func (r TicketsResponse) Meta() map[string]any {
	return map[string]any{
		"total":    len(r.Tickets),
		"status":   r.filter.Status,
		"priority": r.filter.Priority,
	}
}

type TransactionFilter struct {
	Status entity.TxStatus `json:"status"`
	Method string          `json:"method"`
	Search string          `json:"search"`
}

type TicketFilter struct {
	Status   entity.TicketStatus   `json:"status"`
	Priority entity.TicketPriority `json:"priority"`
}

type FilterState struct {
	Transactions TransactionFilter `json:"transactions"`
	Tickets      TicketFilter      `json:"tickets"`
}

type NavigationRequest struct {
	Section entity.Section `json:"section"`
}

type NavigationResponse struct {
	Section  entity.Section   `json:"section"`
	Sections []entity.Section `json:"sections"`
}

type Service struct {
	Name   string              `json:"name"`
	Status entity.HealthStatus `json:"status"`
}

type MetricsResponse struct {
	Services          []Service `json:"services"`
	Uptime            string    `json:"uptime"`
	ResponseTime      string    `json:"response_time"`
	ErrorRate         string    `json:"error_rate"`
	SuccessRate       string    `json:"success_rate"`
	TransactionVolume int64     `json:"transaction_volume"`
	message           string
}

func (r MetricsResponse) Message() string {
	if r.message == "" {
		return "request has been successfully"
	}
	return r.message
}

type ErrorCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

type Endpoint struct {
	Name        string                `json:"name"`
	Method      string                `json:"method"`
	Endpoint    string                `json:"endpoint"`
	Description string                `json:"description"`
	Status      entity.EndpointStatus `json:"status"`
}

type KnowledgeItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type KnowledgeResponse struct {
	Items []KnowledgeItem `json:"items"`
	query string
}

func (r KnowledgeResponse) Meta() map[string]any {
	return map[string]any{"total": len(r.Items), "q": r.query}
}

type TroubleshootingResponse struct {
	Issue   string   `json:"issue"`
	Heading string   `json:"heading"`
	Steps   []string `json:"steps"`
}

type ChartResponse struct {
	Name   string    `json:"name"`
	Label  string    `json:"label"`
	Kind   string    `json:"kind"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type ConsoleTestRequest struct {
	Endpoint string `json:"endpoint"`
}

// ConsoleTestResponse is the mock gateway payload. An unknown endpoint is
// reported in-band through Error and Message.
type ConsoleTestResponse struct {
	ID         string `json:"id,omitempty"`
	Amount     int64  `json:"amount,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Status     string `json:"status,omitempty"`
	Method     string `json:"method,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	CapturedAt string `json:"captured_at,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrMessage string `json:"message,omitempty"`
}

func (r ConsoleTestResponse) Message() string {
	if r.Error != "" {
		return "mock endpoint not found"
	}
	return "mock response generated"
}

// ReportFile is the export snapshot laid out as a downloadable document.
type ReportFile struct {
	GeneratedAt        time.Time     `json:"generated_at"`
	TransactionVolume  int64         `json:"transaction_volume"`
	SuccessRate        string        `json:"success_rate"`
	ResponseTime       string        `json:"response_time"`
	ErrorRate          string        `json:"error_rate"`
	ActiveIssues       int           `json:"active_issues"`
	SystemStatus       string        `json:"system_status"`
	TopPaymentMethods  []string      `json:"top_payment_methods"`
	RecentTransactions []Transaction `json:"recent_transactions"`
	filename           string
	body               []byte
}

func (ReportFile) ContentType() string {
	return "application/json; charset=utf-8"
}

func (r ReportFile) Body() []byte {
	return r.body
}

func (r ReportFile) Filename() string {
	return r.filename
}

// Fragment is a rendered HTML snippet.
type Fragment []byte

func (Fragment) ContentType() string {
	return "text/html; charset=utf-8"
}

func (f Fragment) Body() []byte {
	return f
}

func toHTTPTransaction(tx entity.Transaction) Transaction {
	return Transaction{
		ID:            tx.ID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Status:        tx.Status,
		PaymentMethod: tx.PaymentMethod,
		Timestamp:     tx.Timestamp,
		MerchantID:    tx.MerchantID,
		CustomerEmail: tx.CustomerEmail,
		Description:   tx.Description,
		ErrorCode:     tx.ErrorCode,
	}
}

func toHTTPTransactions(txs []entity.Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toHTTPTransaction(tx))
	}
	return out
}

func toHTTPTickets(tickets []entity.SupportTicket) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, Ticket{
			ID:          t.ID,
			Title:       t.Title,
			Status:      t.Status,
			Priority:    t.Priority,
			Customer:    t.Customer,
			Created:     t.Created,
			Description: t.Description,
		})
	}
	return out
}

func toHTTPFilterState(fs entity.FilterState) FilterState {
	return FilterState{
		Transactions: TransactionFilter(fs.Transactions),
		Tickets:      TicketFilter(fs.Tickets),
	}
}

func (fs FilterState) entity() entity.FilterState {
	return entity.FilterState{
		Transactions: entity.TransactionFilter(fs.Transactions),
		Tickets:      entity.TicketFilter(fs.Tickets),
	}
}

func toHTTPMetrics(m entity.SystemMetrics, message string) MetricsResponse {
	services := make([]Service, 0, len(m.Services))
	for _, s := range m.Services {
		services = append(services, Service{Name: s.Name, Status: s.Status})
	}

	return MetricsResponse{
		Services:          services,
		Uptime:            m.Uptime,
		ResponseTime:      m.ResponseTime,
		ErrorRate:         m.ErrorRate,
		SuccessRate:       m.SuccessRate,
		TransactionVolume: m.TransactionVolume,
		message:           message,
	}
}

func toHTTPTroubleshooting(r usecase.TroubleshootingResult) TroubleshootingResponse {
	return TroubleshootingResponse{Issue: r.Issue, Heading: r.Heading, Steps: r.Steps}
}

func toHTTPConsole(r entity.ConsoleResponse) ConsoleTestResponse {
	return ConsoleTestResponse{
		ID:         r.ID,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Status:     r.Status,
		Method:     r.Method,
		CreatedAt:  r.CreatedAt,
		CapturedAt: r.CapturedAt,
		Error:      r.Error,
		ErrMessage: r.Message,
	}
}

func newReportFile(r entity.Report) (ReportFile, error) {
	file := ReportFile{
		GeneratedAt:        r.GeneratedAt,
		TransactionVolume:  r.TransactionVolume,
		SuccessRate:        r.SuccessRate,
		ResponseTime:       r.ResponseTime,
		ErrorRate:          r.ErrorRate,
		ActiveIssues:       r.ActiveIssues,
		SystemStatus:       r.SystemStatus,
		TopPaymentMethods:  r.TopPaymentMethods,
		RecentTransactions: toHTTPTransactions(r.RecentTransactions),
		filename:           usecase.ReportFilename(r),
	}

	body, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return ReportFile{}, err
	}
	file.body = body

	return file, nil
}
