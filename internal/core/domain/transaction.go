package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies an audit-log entry.
type TransactionType string

const (
	// TransactionRevenue is recorded whenever an invoice is issued.
	TransactionRevenue TransactionType = "revenue"
)

// Transaction is an append-only audit record. Transactions are never mutated
// or deleted, even when the booking they reference is removed.
type Transaction struct {
	TransactionID string            `json:"id"`
	Type          TransactionType   `json:"type"`
	Timestamp     time.Time         `json:"timestamp"`
	Amount        decimal.Decimal   `json:"amount"`
	Method        string            `json:"method,omitempty"`
	Description   string            `json:"description"`
	Details       map[string]string `json:"details,omitempty"`
}
