package models

// TransactionsResponse represents the history of an account's transactions,
// most recent first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Ordered transactions, enriched with the account type
	Transactions []TransactionView `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for the history query
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// example: Account not found
	Error string `json:"error"`
}
