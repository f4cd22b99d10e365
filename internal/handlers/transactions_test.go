package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

func TestTransactionsHandler(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	validToken := "valid-token"

	views := []models.TransactionView{
		{
			TransactionDB: models.TransactionDB{
				TransactionID:   2,
				AccountID:       accountID,
				Type:            models.TransactionTypeDeposit,
				Amount:          decimal.RequireFromString("25.00"),
				Status:          models.TransactionStatusCompleted,
				Description:     "deposit from card ending 4242",
				CreatedAt:       time.Now().UTC(),
			},
			AccountType: models.AccountTypeChecking,
		},
		{
			TransactionDB: models.TransactionDB{
				TransactionID:   1,
				AccountID:       accountID,
				Type:            models.TransactionTypeDeposit,
				Amount:          decimal.RequireFromString("100.00"),
				Status:          models.TransactionStatusCompleted,
				Description:     "deposit from bank_account ending 6789",
				CreatedAt:       time.Now().UTC().Add(-time.Hour),
			},
			AccountType: models.AccountTypeChecking,
		},
	}

	tests := []struct {
		name               string
		accountIDParam     string
		setupMocks         func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener)
		expectedStatusCode int
	}{
		{
			name:           "successful history query",
			accountIDParam: accountID.String(),
			setupMocks: func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockLister.EXPECT().ListTransactions(gomock.Any(), userID, accountID).Return(views, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:           "empty history",
			accountIDParam: accountID.String(),
			setupMocks: func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockLister.EXPECT().ListTransactions(gomock.Any(), userID, accountID).Return([]models.TransactionView{}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:           "unauthorized missing token",
			accountIDParam: accountID.String(),
			setupMocks: func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "unauthorized invalid token",
			accountIDParam: accountID.String(),
			setupMocks: func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad-token", nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), "bad-token").Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid account id",
			accountIDParam: "not-a-uuid",
			setupMocks: func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:           "account not owned",
			accountIDParam: accountID.String(),
			setupMocks: func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockLister.EXPECT().ListTransactions(gomock.Any(), userID, accountID).Return(nil, services.ErrAccountNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:           "internal error",
			accountIDParam: accountID.String(),
			setupMocks: func(mockLister *MockTransactionLister, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockLister.EXPECT().ListTransactions(gomock.Any(), userID, accountID).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLister := NewMockTransactionLister(ctrl)
			mockTokener := NewMockTransactionsTokener(ctrl)
			tt.setupMocks(mockLister, mockTokener)

			r := chi.NewRouter()
			r.Get("/accounts/{accountID}/transactions", NewTransactionsHandler(mockLister, mockTokener))

			req := httptest.NewRequest(http.MethodGet, "/accounts/"+tt.accountIDParam+"/transactions", nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp models.TransactionsResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.NotNil(t, resp.Transactions)
			}
		})
	}

	t.Run("transactions keep their service order and enrichment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLister := NewMockTransactionLister(ctrl)
		mockTokener := NewMockTransactionsTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
		mockLister.EXPECT().ListTransactions(gomock.Any(), userID, accountID).Return(views, nil)

		r := chi.NewRouter()
		r.Get("/accounts/{accountID}/transactions", NewTransactionsHandler(mockLister, mockTokener))

		req := httptest.NewRequest(http.MethodGet, "/accounts/"+accountID.String()+"/transactions", nil)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		var resp models.TransactionsResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Transactions, 2)
		assert.Equal(t, int64(2), resp.Transactions[0].TransactionID)
		assert.Equal(t, int64(1), resp.Transactions[1].TransactionID)
		assert.Equal(t, models.AccountTypeChecking, resp.Transactions[0].AccountType)
	})
}
