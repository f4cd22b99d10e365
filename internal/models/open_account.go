package models

// OpenAccountRequest represents the JSON body for opening an account
// swagger:model OpenAccountRequest
type OpenAccountRequest struct {
	// Account type, checking or savings
	// required: true
	// example: checking
	AccountType string `json:"account_type"`
}

// OpenAccountResponse represents a successful account opening response
// swagger:model OpenAccountResponse
type OpenAccountResponse struct {
	// Success message
	// example: Account opened successfully
	Message string `json:"message"`

	// The newly opened account
	Account *AccountDB `json:"account"`
}

// OpenAccountErrorResponse represents an error response for account opening
// swagger:model OpenAccountErrorResponse
type OpenAccountErrorResponse struct {
	// Error message
	// example: Account of this type already exists
	Error string `json:"error"`
}
