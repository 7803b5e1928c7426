package fixture

import (
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

// document mirrors the fixture file layout. The same tags serve YAML and
// JSON(C) sources.
type document struct {
	Transactions   []transactionDoc   `yaml:"transactions" json:"transactions"`
	SystemMetrics  metricsDoc         `yaml:"systemMetrics" json:"systemMetrics"`
	SupportTickets []ticketDoc        `yaml:"supportTickets" json:"supportTickets"`
	ErrorCodes     []errorCodeDoc     `yaml:"errorCodes" json:"errorCodes"`
	APIEndpoints   []endpointDoc      `yaml:"apiEndpoints" json:"apiEndpoints"`
	KnowledgeBase  []knowledgeDoc     `yaml:"knowledgeBase" json:"knowledgeBase"`
	Troubleshoot   []guideDoc         `yaml:"troubleshooting" json:"troubleshooting"`
	PaymentMethods []paymentMethodDoc `yaml:"paymentMethods" json:"paymentMethods"`
}

type transactionDoc struct {
	ID            string    `yaml:"id" json:"id"`
	Amount        int64     `yaml:"amount" json:"amount"`
	Currency      string    `yaml:"currency" json:"currency"`
	Status        string    `yaml:"status" json:"status"`
	PaymentMethod string    `yaml:"paymentMethod" json:"paymentMethod"`
	Timestamp     time.Time `yaml:"timestamp" json:"timestamp"`
	MerchantID    string    `yaml:"merchantId" json:"merchantId"`
	CustomerEmail string    `yaml:"customerEmail" json:"customerEmail"`
	Description   string    `yaml:"description" json:"description"`
	ErrorCode     string    `yaml:"errorCode" json:"errorCode"`
}

type serviceDoc struct {
	Name   string `yaml:"name" json:"name"`
	Status string `yaml:"status" json:"status"`
}

type metricsDoc struct {
	APIStatus         []serviceDoc `yaml:"apiStatus" json:"apiStatus"`
	Uptime            string       `yaml:"uptime" json:"uptime"`
	SuccessRate       string       `yaml:"successRate" json:"successRate"`
	ResponseTime      string       `yaml:"responseTime" json:"responseTime"`
	ErrorRate         string       `yaml:"errorRate" json:"errorRate"`
	TransactionVolume int64        `yaml:"transactionVolume" json:"transactionVolume"`
}

type ticketDoc struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Status      string    `yaml:"status" json:"status"`
	Priority    string    `yaml:"priority" json:"priority"`
	Customer    string    `yaml:"customer" json:"customer"`
	Created     time.Time `yaml:"created" json:"created"`
	Description string    `yaml:"description" json:"description"`
}

type errorCodeDoc struct {
	Code        string `yaml:"code" json:"code"`
	Description string `yaml:"description" json:"description"`
	Solution    string `yaml:"solution" json:"solution"`
}

type endpointDoc struct {
	Name        string `yaml:"name" json:"name"`
	Method      string `yaml:"method" json:"method"`
	Endpoint    string `yaml:"endpoint" json:"endpoint"`
	Description string `yaml:"description" json:"description"`
	Status      string `yaml:"status" json:"status"`
}

type knowledgeDoc struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type guideDoc struct {
	Issue string   `yaml:"issue" json:"issue"`
	Steps []string `yaml:"steps" json:"steps"`
}

type paymentMethodDoc struct {
	Method  string `yaml:"method" json:"method"`
	Percent int    `yaml:"percent" json:"percent"`
}

func (d document) dataset() entity.Dataset {
	ds := entity.Dataset{
		Transactions:   make([]entity.Transaction, 0, len(d.Transactions)),
		Tickets:        make([]entity.SupportTicket, 0, len(d.SupportTickets)),
		ErrorCodes:     make([]entity.ErrorCode, 0, len(d.ErrorCodes)),
		Endpoints:      make([]entity.APIEndpoint, 0, len(d.APIEndpoints)),
		Knowledge:      make([]entity.KnowledgeItem, 0, len(d.KnowledgeBase)),
		Guides:         make([]entity.TroubleshootingGuide, 0, len(d.Troubleshoot)),
		PaymentMethods: make([]entity.PaymentMethodShare, 0, len(d.PaymentMethods)),
		Metrics: entity.SystemMetrics{
			Services:          make([]entity.ServiceHealth, 0, len(d.SystemMetrics.APIStatus)),
			Uptime:            d.SystemMetrics.Uptime,
			ResponseTime:      d.SystemMetrics.ResponseTime,
			ErrorRate:         d.SystemMetrics.ErrorRate,
			SuccessRate:       d.SystemMetrics.SuccessRate,
			TransactionVolume: d.SystemMetrics.TransactionVolume,
		},
	}

	for _, tx := range d.Transactions {
		ds.Transactions = append(ds.Transactions, entity.Transaction{
			ID:            tx.ID,
			Amount:        tx.Amount,
			Currency:      tx.Currency,
			Status:        entity.TxStatus(tx.Status),
			PaymentMethod: tx.PaymentMethod,
			Timestamp:     tx.Timestamp.UTC(),
			MerchantID:    tx.MerchantID,
			CustomerEmail: tx.CustomerEmail,
			Description:   tx.Description,
			ErrorCode:     tx.ErrorCode,
		})
	}
	for _, svc := range d.SystemMetrics.APIStatus {
		ds.Metrics.Services = append(ds.Metrics.Services, entity.ServiceHealth{
			Name:   svc.Name,
			Status: entity.HealthStatus(svc.Status),
		})
	}
	for _, t := range d.SupportTickets {
		ds.Tickets = append(ds.Tickets, entity.SupportTicket{
			ID:          t.ID,
			Title:       t.Title,
			Status:      entity.TicketStatus(t.Status),
			Priority:    entity.TicketPriority(t.Priority),
			Customer:    t.Customer,
			Created:     t.Created.UTC(),
			Description: t.Description,
		})
	}
	for _, e := range d.ErrorCodes {
		ds.ErrorCodes = append(ds.ErrorCodes, entity.ErrorCode(e))
	}
	for _, e := range d.APIEndpoints {
		ds.Endpoints = append(ds.Endpoints, entity.APIEndpoint{
			Name:        e.Name,
			Method:      e.Method,
			Path:        e.Endpoint,
			Description: e.Description,
			Status:      entity.EndpointStatus(e.Status),
		})
	}
	for _, k := range d.KnowledgeBase {
		ds.Knowledge = append(ds.Knowledge, entity.KnowledgeItem(k))
	}
	for _, g := range d.Troubleshoot {
		ds.Guides = append(ds.Guides, entity.TroubleshootingGuide(g))
	}
	for _, p := range d.PaymentMethods {
		ds.PaymentMethods = append(ds.PaymentMethods, entity.PaymentMethodShare(p))
	}

	return ds
}
