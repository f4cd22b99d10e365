package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockRegisterer *MockRegisterer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful registration",
			requestBody: models.RegisterRequest{Username: "john_doe", Password: "secret123", Email: "john@example.com"},
			setupMocks: func(mockRegisterer *MockRegisterer) {
				mockRegisterer.EXPECT().Register(gomock.Any(), "john_doe", "secret123", "john@example.com").Return(nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "message",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockRegisterer *MockRegisterer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "missing fields",
			requestBody:        models.RegisterRequest{Username: "john_doe"},
			setupMocks:         func(mockRegisterer *MockRegisterer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "user already exists",
			requestBody: models.RegisterRequest{Username: "john_doe", Password: "secret123", Email: "john@example.com"},
			setupMocks: func(mockRegisterer *MockRegisterer) {
				mockRegisterer.EXPECT().Register(gomock.Any(), "john_doe", "secret123", "john@example.com").Return(services.ErrUserAlreadyExists)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name:        "internal error",
			requestBody: models.RegisterRequest{Username: "john_doe", Password: "secret123", Email: "john@example.com"},
			setupMocks: func(mockRegisterer *MockRegisterer) {
				mockRegisterer.EXPECT().Register(gomock.Any(), "john_doe", "secret123", "john@example.com").Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegisterer := NewMockRegisterer(ctrl)
			tt.setupMocks(mockRegisterer)

			var body bytes.Buffer
			assert.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))

			req := httptest.NewRequest(http.MethodPost, "/register", &body)
			rec := httptest.NewRecorder()

			NewRegisterHandler(mockRegisterer)(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			var resp map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}
