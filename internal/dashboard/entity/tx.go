package entity

import "time"

// MaxLiveTransactions caps the live sequence; older entries are evicted.
const MaxLiveTransactions = 20

// Transaction is a single payment event. Amount is in minor currency units.
type Transaction struct {
	ID            string
	Amount        int64
	Currency      string
	Status        TxStatus
	PaymentMethod string
	Timestamp     time.Time
	MerchantID    string
	CustomerEmail string
	Description   string
	ErrorCode     string
}
