package entity

// TransactionFilter holds the live-monitor filters. Empty fields are unset.
type TransactionFilter struct {
	Status TxStatus
	Method string
	Search string
}

// TicketFilter holds the support-ticket filters. Empty fields are unset.
type TicketFilter struct {
	Status   TicketStatus
	Priority TicketPriority
}

// FilterState is the session's current filter selection.
type FilterState struct {
	Transactions TransactionFilter
	Tickets      TicketFilter
}
