package entity

// TransactionEvent announces a transaction injected by the live generator.
type TransactionEvent struct {
	EventID string
	Tx      Transaction
}
