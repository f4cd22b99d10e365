package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

// OpenAccountTokener defines only the methods needed by this handler.
type OpenAccountTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountOpener defines the interface that the service must implement.
type AccountOpener interface {
	OpenAccount(ctx context.Context, userID uuid.UUID, accountType string) (*models.AccountDB, error)
}

// NewOpenAccountHandler returns an HTTP handler for opening an account.
// @Summary Open account
// @Description Opens a zero-balance checking or savings account for the caller.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.OpenAccountRequest true "Open Account Request"
// @Success 201 {object} models.OpenAccountResponse "Account opened successfully"
// @Failure 400 {object} models.OpenAccountErrorResponse "Invalid account type"
// @Failure 401 {object} models.OpenAccountErrorResponse "Unauthorized"
// @Failure 409 {object} models.OpenAccountErrorResponse "Account of this type already exists"
// @Failure 500 {object} models.OpenAccountErrorResponse "Internal server error"
// @Router /accounts [post]
// @Security BearerAuth
func NewOpenAccountHandler(
	svc AccountOpener,
	tokenGetter OpenAccountTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.OpenAccountErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.OpenAccountErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.OpenAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode open account request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.OpenAccountErrorResponse{Error: "Invalid request body"})
			return
		}

		account, err := svc.OpenAccount(ctx, claims.UserID, req.AccountType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAccountType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.OpenAccountErrorResponse{Error: "Account type must be checking or savings"})
			case errors.Is(err, services.ErrAccountTypeExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(models.OpenAccountErrorResponse{Error: "Account of this type already exists"})
			default:
				logger.Log.Errorw("failed to open account", "user_id", claims.UserID, "account_type", req.AccountType, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.OpenAccountErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := models.OpenAccountResponse{
			Message: "Account opened successfully",
			Account: account,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}
