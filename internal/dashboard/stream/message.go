package stream

import (
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

const messageTypeTransaction = "transaction"

// Message is the frame pushed to stream clients.
type Message struct {
	Type        string      `json:"type"`
	EventID     string      `json:"event_id,omitempty"`
	Transaction Transaction `json:"transaction"`
}

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

func newMessage(event entity.TransactionEvent) Message {
	tx := event.Tx
	return Message{
		Type:    messageTypeTransaction,
		EventID: event.EventID,
		Transaction: Transaction{
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
		},
	}
}
