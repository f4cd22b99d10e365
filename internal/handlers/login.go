package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login user
// @Description Authenticates a user and returns a JWT bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token"
// @Failure 400 {object} models.LoginErrorResponse "Invalid request body"
// @Failure 401 {object} models.LoginErrorResponse "Invalid username or password"
// @Failure 500 {object} models.LoginErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode login request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.LoginErrorResponse{Error: "Invalid request body"})
			return
		}

		token, err := svc.Login(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) || errors.Is(err, services.ErrInvalidCredentials) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.LoginErrorResponse{Error: "Invalid username or password"})
				return
			}
			logger.Log.Errorw("failed to login user", "username", req.Username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.LoginErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.LoginResponse{Token: token})
	}
}
