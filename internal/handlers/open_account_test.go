package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

func TestOpenAccountHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	opened := &models.AccountDB{
		AccountID:     uuid.New(),
		UserID:        userID,
		AccountNumber: "0012345678",
		AccountType:   models.AccountTypeChecking,
		Balance:       decimal.Zero,
		Status:        models.AccountStatusActive,
	}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockOpener *MockAccountOpener, mockTokener *MockOpenAccountTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful open",
			requestBody: models.OpenAccountRequest{AccountType: models.AccountTypeChecking},
			setupMocks: func(mockOpener *MockAccountOpener, mockTokener *MockOpenAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockOpener.EXPECT().OpenAccount(gomock.Any(), userID, models.AccountTypeChecking).Return(opened, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "message",
		},
		{
			name:        "unauthorized missing token",
			requestBody: models.OpenAccountRequest{AccountType: models.AccountTypeChecking},
			setupMocks: func(mockOpener *MockAccountOpener, mockTokener *MockOpenAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "invalid request body",
			requestBody: "invalid-json",
			setupMocks: func(mockOpener *MockAccountOpener, mockTokener *MockOpenAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "invalid account type",
			requestBody: models.OpenAccountRequest{AccountType: "money-market"},
			setupMocks: func(mockOpener *MockAccountOpener, mockTokener *MockOpenAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockOpener.EXPECT().OpenAccount(gomock.Any(), userID, "money-market").Return(nil, services.ErrInvalidAccountType)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "duplicate account type",
			requestBody: models.OpenAccountRequest{AccountType: models.AccountTypeSavings},
			setupMocks: func(mockOpener *MockAccountOpener, mockTokener *MockOpenAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockOpener.EXPECT().OpenAccount(gomock.Any(), userID, models.AccountTypeSavings).Return(nil, services.ErrAccountTypeExists)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name:        "read-back failure surfaces as internal error",
			requestBody: models.OpenAccountRequest{AccountType: models.AccountTypeChecking},
			setupMocks: func(mockOpener *MockAccountOpener, mockTokener *MockOpenAccountTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockOpener.EXPECT().OpenAccount(gomock.Any(), userID, models.AccountTypeChecking).Return(nil, services.ErrReadBackFailed)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOpener := NewMockAccountOpener(ctrl)
			mockTokener := NewMockOpenAccountTokener(ctrl)
			tt.setupMocks(mockOpener, mockTokener)

			var body bytes.Buffer
			assert.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))

			req := httptest.NewRequest(http.MethodPost, "/accounts", &body)
			rec := httptest.NewRecorder()

			NewOpenAccountHandler(mockOpener, mockTokener)(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			var resp map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}

	t.Run("opened account is returned with zero balance and active status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockOpener := NewMockAccountOpener(ctrl)
		mockTokener := NewMockOpenAccountTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockOpener.EXPECT().OpenAccount(gomock.Any(), userID, models.AccountTypeChecking).Return(opened, nil)

		var body bytes.Buffer
		assert.NoError(t, json.NewEncoder(&body).Encode(models.OpenAccountRequest{AccountType: models.AccountTypeChecking}))

		req := httptest.NewRequest(http.MethodPost, "/accounts", &body)
		rec := httptest.NewRecorder()

		NewOpenAccountHandler(mockOpener, mockTokener)(rec, req)

		var resp models.OpenAccountResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "0012345678", resp.Account.AccountNumber)
		assert.True(t, resp.Account.Balance.IsZero())
		assert.Equal(t, models.AccountStatusActive, resp.Account.Status)
	})
}
