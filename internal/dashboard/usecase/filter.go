package usecase

import (
	"strings"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

// FilterTransactions keeps the transactions matching every set field of
// filter: exact status, exact payment method, then a case-insensitive
// substring of the ID. The input is not modified and order is preserved.
func FilterTransactions(txs []entity.Transaction, filter entity.TransactionFilter) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(txs))
	search := strings.ToLower(filter.Search)

	for _, tx := range txs {
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		if filter.Method != "" && tx.PaymentMethod != filter.Method {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(tx.ID), search) {
			continue
		}
		out = append(out, tx)
	}

	return out
}

// FilterTickets keeps the tickets matching the set status and priority.
func FilterTickets(tickets []entity.SupportTicket, filter entity.TicketFilter) []entity.SupportTicket {
	out := make([]entity.SupportTicket, 0, len(tickets))

	for _, t := range tickets {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, t)
	}

	return out
}
