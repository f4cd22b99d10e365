package models

import "github.com/shopspring/decimal"

// Funding source types
const (
	FundingSourceCard = "card"
	FundingSourceBank = "bank"
)

// FundingSource describes where the money comes from. External identifiers
// arrive format-validated by upstream collaborators.
type FundingSource struct {
	// Source type, card or bank
	// required: true
	// example: card
	Type string `json:"type"`

	// External account or card number
	// required: true
	// example: 4111111111111111
	AccountNumber string `json:"account_number"`

	// Routing number for bank sources
	// example: 021000021
	RoutingNumber string `json:"routing_number,omitempty"`
}

// FundRequest represents the JSON body for funding an account
// swagger:model FundRequest
type FundRequest struct {
	// Amount to credit
	// required: true
	// example: 100.00
	Amount decimal.Decimal `json:"amount"`

	// Funding source descriptor
	// required: true
	FundingSource FundingSource `json:"funding_source"`
}

// FundResponse represents a successful funding response
// swagger:model FundResponse
type FundResponse struct {
	// Success message
	// example: Account funded successfully
	Message string `json:"message"`

	// The recorded transaction
	Transaction *TransactionDB `json:"transaction"`

	// Balance read back from the store after commit
	// example: 150.00
	NewBalance decimal.Decimal `json:"new_balance"`
}

// FundErrorResponse represents an error response for funding
// swagger:model FundErrorResponse
type FundErrorResponse struct {
	// Error message
	// example: Invalid amount
	Error string `json:"error"`
}
