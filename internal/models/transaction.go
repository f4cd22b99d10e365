package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeDeposit = "deposit"
)

// Transaction statuses
const (
	TransactionStatusCompleted = "completed"
)

// TransactionDB represents an append-only transaction row in the database.
// Rows are never updated or deleted once written.
type TransactionDB struct {
	TransactionID int64           `json:"transaction_id" db:"transaction_id"` // Primary key, assigned by the store
	AccountID     uuid.UUID       `json:"account_id" db:"account_id"`         // Owning account
	Type          string          `json:"type" db:"type"`                     // Transaction type, e.g. deposit
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Signed monetary amount
	Description   string          `json:"description" db:"description"`       // Free-text description
	Status        string          `json:"status" db:"status"`                 // Transaction status
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the row was created
	ProcessedAt   time.Time       `json:"processed_at" db:"processed_at"`     // Timestamp when the row was processed
}

// TransactionView is a transaction enriched with its account's type,
// as returned by the history query.
type TransactionView struct {
	TransactionDB
	AccountType string `json:"account_type"`
}
