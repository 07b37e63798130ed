package models

import "time"

// Transaction is a persisted transaction record. The id and timestamp
// are assigned server-side; clients never supply them.
type Transaction struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CategoryCode string    `json:"categoryCode"`
	Amount       float64   `json:"amount"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// TransactionInput is the client-supplied payload for registering a
// transaction.
type TransactionInput struct {
	Name         string  `json:"name"`
	CategoryCode string  `json:"categoryCode"`
	Amount       float64 `json:"amount"`
}
