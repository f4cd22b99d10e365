package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

// TransactionsTokener defines only the methods needed by this handler.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, userID, accountID uuid.UUID) ([]models.TransactionView, error)
}

// NewTransactionsHandler returns an HTTP handler for the account history query.
// @Summary List transactions
// @Description Returns the account's transactions, most recent first, enriched with the account type.
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} models.TransactionsResponse "Ordered transactions"
// @Failure 400 {object} models.TransactionsErrorResponse "Invalid account id"
// @Failure 401 {object} models.TransactionsErrorResponse "Unauthorized"
// @Failure 404 {object} models.TransactionsErrorResponse "Account not found"
// @Failure 500 {object} models.TransactionsErrorResponse "Internal server error"
// @Router /accounts/{accountID}/transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(
	svc TransactionLister,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			logger.Log.Warnw("invalid account id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.TransactionsErrorResponse{Error: "Invalid account id"})
			return
		}

		views, err := svc.ListTransactions(ctx, claims.UserID, accountID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.TransactionsErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to list transactions", "user_id", claims.UserID, "account_id", accountID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.TransactionsResponse{Transactions: views})
	}
}
