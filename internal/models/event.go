package models

import "github.com/shopspring/decimal"

// FundingEvent is the message published to the events topic after a funding
// transaction commits.
type FundingEvent struct {
	TransactionID int64           `json:"transaction_id"` // Identifier of the committed transaction
	AccountID     string          `json:"account_id"`     // Credited account
	UserID        string          `json:"user_id"`        // Account owner
	Type          string          `json:"type"`           // Transaction type, e.g. deposit
	Amount        decimal.Decimal `json:"amount"`         // Credited amount
	Status        string          `json:"status"`         // Transaction status
	Timestamp     int64           `json:"timestamp"`      // Unix timestamp of the commit
}
