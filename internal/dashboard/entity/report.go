package entity

import "time"

// Report is the exported point-in-time summary.
type Report struct {
	GeneratedAt        time.Time
	TransactionVolume  int64
	SuccessRate        string
	ResponseTime       string
	ErrorRate          string
	ActiveIssues       int
	SystemStatus       string
	TopPaymentMethods  []string
	RecentTransactions []Transaction
}

// ConsoleResponse is the canned payload returned by the mock API console.
// An unknown endpoint yields a response with Error and Message set and every
// payment field empty; check IsError before reading the payment fields.
type ConsoleResponse struct {
	ID         string
	Amount     int64
	Currency   string
	Status     string
	Method     string
	CreatedAt  string
	CapturedAt string

	Error   string
	Message string
}

func (r ConsoleResponse) IsError() bool {
	return r.Error != ""
}

// ChartSeries is a labelled series ready for a chart widget. Values may be
// fractional (success rate percentages).
type ChartSeries struct {
	Name   string
	Label  string
	Kind   string
	Labels []string
	Values []float64
}
