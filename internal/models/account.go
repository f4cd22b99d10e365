package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supported account types
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// Account statuses
const (
	AccountStatusActive = "active"
	AccountStatusFrozen = "frozen"
	AccountStatusClosed = "closed"
)

// AccountDB represents an account row in the database.
// Balance is authoritative only through relative updates applied by the
// store; it is never written from a value computed in application code.
type AccountDB struct {
	AccountID     uuid.UUID       `json:"account_id" db:"account_id"`         // Primary key
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`               // Identifier of the account owner
	AccountNumber string          `json:"account_number" db:"account_number"` // External 10-digit account number
	AccountType   string          `json:"account_type" db:"account_type"`     // checking or savings
	Balance       decimal.Decimal `json:"balance" db:"balance"`               // Current balance
	Status        string          `json:"status" db:"status"`                 // Administrative status
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the account was created
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`         // Timestamp of the last account update
}

// AccountIdentity carries the immutable identity fields of an account.
// Safe to cache: owner, number, and type never change after creation.
type AccountIdentity struct {
	AccountID     uuid.UUID `json:"account_id"`
	UserID        uuid.UUID `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	AccountType   string    `json:"account_type"`
}
