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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register user
// @Description Creates a new user with a unique username and email.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.RegisterResponse "User registered successfully"
// @Failure 400 {object} models.RegisterErrorResponse "Invalid request body"
// @Failure 409 {object} models.RegisterErrorResponse "Username or email already exists"
// @Failure 500 {object} models.RegisterErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode register request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.RegisterErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.Password == "" || req.Email == "" {
			logger.Log.Warnw("incomplete register request", "username", req.Username)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.RegisterErrorResponse{Error: "Username, password and email are required"})
			return
		}

		if err := svc.Register(ctx, req.Username, req.Password, req.Email); err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(models.RegisterErrorResponse{Error: "Username or email already exists"})
				return
			}
			logger.Log.Errorw("failed to register user", "username", req.Username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.RegisterErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.RegisterResponse{Message: "User registered successfully"})
	}
}
