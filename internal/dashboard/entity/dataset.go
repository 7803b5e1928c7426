package entity

import "slices"

// Dataset is everything the dashboard displays. Transactions are newest first.
type Dataset struct {
	Transactions   []Transaction
	Tickets        []SupportTicket
	ErrorCodes     []ErrorCode
	Endpoints      []APIEndpoint
	Knowledge      []KnowledgeItem
	Guides         []TroubleshootingGuide
	PaymentMethods []PaymentMethodShare
	Metrics        SystemMetrics
}

// Clone returns a deep copy of d.
func (d Dataset) Clone() Dataset {
	guides := make([]TroubleshootingGuide, len(d.Guides))
	for i, g := range d.Guides {
		guides[i] = TroubleshootingGuide{Issue: g.Issue, Steps: slices.Clone(g.Steps)}
	}

	return Dataset{
		Transactions:   slices.Clone(d.Transactions),
		Tickets:        slices.Clone(d.Tickets),
		ErrorCodes:     slices.Clone(d.ErrorCodes),
		Endpoints:      slices.Clone(d.Endpoints),
		Knowledge:      slices.Clone(d.Knowledge),
		Guides:         guides,
		PaymentMethods: slices.Clone(d.PaymentMethods),
		Metrics:        d.Metrics.Clone(),
	}
}
