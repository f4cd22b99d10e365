package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/validation"
)

// FundTokener defines only the methods needed by this handler.
type FundTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Funder defines the interface that the service must implement.
type Funder interface {
	Fund(ctx context.Context, userID, accountID uuid.UUID, amount decimal.Decimal, source models.FundingSource) (*models.TransactionDB, decimal.Decimal, error)
}

// NewFundHandler returns an HTTP handler for funding an account.
// @Summary Fund account
// @Description Credits the account atomically and returns the recorded transaction together with the post-commit balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body models.FundRequest true "Fund Request"
// @Success 200 {object} models.FundResponse "Account funded successfully"
// @Failure 400 {object} models.FundErrorResponse "Invalid amount or funding source"
// @Failure 401 {object} models.FundErrorResponse "Unauthorized"
// @Failure 404 {object} models.FundErrorResponse "Account not found"
// @Failure 422 {object} models.FundErrorResponse "Account is not active"
// @Failure 500 {object} models.FundErrorResponse "Internal server error"
// @Router /accounts/{accountID}/fund [post]
// @Security BearerAuth
func NewFundHandler(
	svc Funder,
	tokenGetter FundTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.FundErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.FundErrorResponse{Error: "Unauthorized"})
			return
		}

		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			logger.Log.Warnw("invalid account id", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.FundErrorResponse{Error: "Invalid account id"})
			return
		}

		var req models.FundRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode fund request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.FundErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, balance, err := svc.Fund(ctx, claims.UserID, accountID, req.Amount, req.FundingSource)
		if err != nil {
			var violations validation.Violations
			switch {
			case errors.As(err, &violations):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.FundErrorResponse{Error: violations.Error()})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.FundErrorResponse{Error: "Account not found"})
			case errors.Is(err, services.ErrAccountNotActive):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(models.FundErrorResponse{Error: "Account is not active"})
			default:
				logger.Log.Errorw("failed to fund account", "user_id", claims.UserID, "account_id", accountID, "amount", req.Amount, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.FundErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := models.FundResponse{
			Message:     "Account funded successfully",
			Transaction: txn,
			NewBalance:  balance,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
