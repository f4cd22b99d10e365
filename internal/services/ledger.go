package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/tx"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/validation"
)

var (
	// ErrAccountNotFound is returned when the account does not exist or is
	// not owned by the caller. The two cases are deliberately
	// indistinguishable so ownership is not leaked.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountNotActive is returned when funding is attempted on a non-active account.
	ErrAccountNotActive = errors.New("account is not active")
)

// LedgerAccountReader defines the account reads the ledger needs.
type LedgerAccountReader interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
	GetByIDForUpdate(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}

// BalanceCreditor applies relative balance adjustments in the store.
type BalanceCreditor interface {
	CreditBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransactionWriter appends transaction rows.
type TransactionWriter interface {
	Save(ctx context.Context, accountID uuid.UUID, txType string, amount decimal.Decimal, description, status string) (*models.TransactionDB, error)
}

// TransactionReader reads transaction rows.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID int64) (*models.TransactionDB, error)
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.TransactionDB, error)
}

// AccountIdentityCache caches immutable account identity fields.
type AccountIdentityCache interface {
	Get(ctx context.Context, accountID uuid.UUID) (*models.AccountIdentity, error)
	Set(ctx context.Context, identity models.AccountIdentity) error
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService owns the funding ledger: atomic funding, history queries,
// and the ownership guard in front of both.
type LedgerService struct {
	db          *sqlx.DB
	accounts    LedgerAccountReader
	creditor    BalanceCreditor
	txWriter    TransactionWriter
	txReader    TransactionReader
	cache       AccountIdentityCache
	eventWriter EventWriter
	minAmount   decimal.Decimal
	maxAmount   decimal.Decimal
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	db *sqlx.DB,
	accounts LedgerAccountReader,
	creditor BalanceCreditor,
	txWriter TransactionWriter,
	txReader TransactionReader,
	cache AccountIdentityCache,
	eventWriter EventWriter,
	minAmount, maxAmount decimal.Decimal,
) *LedgerService {
	return &LedgerService{
		db:          db,
		accounts:    accounts,
		creditor:    creditor,
		txWriter:    txWriter,
		txReader:    txReader,
		cache:       cache,
		eventWriter: eventWriter,
		minAmount:   minAmount,
		maxAmount:   maxAmount,
	}
}

// authorize confirms the caller owns the account, serving immutable identity
// fields from the cache when possible and falling back to the store. A
// missing account and a foreign-owned account produce the same error.
func (svc *LedgerService) authorize(ctx context.Context, userID, accountID uuid.UUID) (*models.AccountIdentity, error) {
	if svc.cache != nil {
		if identity, err := svc.cache.Get(ctx, accountID); err == nil {
			if identity.UserID != userID {
				return nil, ErrAccountNotFound
			}
			return identity, nil
		}
	}

	account, err := svc.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		logger.Log.Errorw("failed to load account for authorization", "account_id", accountID, "error", err)
		return nil, err
	}

	identity := models.AccountIdentity{
		AccountID:     account.AccountID,
		UserID:        account.UserID,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, identity); err != nil {
			logger.Log.Warnw("failed to cache account identity", "account_id", accountID, "error", err)
		}
	}

	if identity.UserID != userID {
		return nil, ErrAccountNotFound
	}
	return &identity, nil
}

// describeFundingSource renders the funding-source descriptor into the
// transaction's free-text description.
func describeFundingSource(source models.FundingSource) string {
	suffix := source.AccountNumber
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("deposit from %s ending %s", source.Type, suffix)
}

// Fund credits amount to the account as one atomic unit: exactly one
// transaction row is inserted and the balance is adjusted relatively,
// both inside a single storage transaction. The returned transaction and
// balance are freshly re-read from the store after commit.
func (svc *LedgerService) Fund(ctx context.Context, userID, accountID uuid.UUID, amount decimal.Decimal, source models.FundingSource) (*models.TransactionDB, decimal.Decimal, error) {
	if violations := validation.CheckFundingRequest(amount, svc.minAmount, svc.maxAmount, source); len(violations) > 0 {
		logger.Log.Warnw("funding request rejected", "account_id", accountID, "violations", violations)
		return nil, decimal.Zero, violations
	}

	identity, err := svc.authorize(ctx, userID, accountID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	var transactionID int64
	err = tx.Run(ctx, svc.db, func(ctx context.Context) error {
		account, err := svc.accounts.GetByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}
		if account.Status != models.AccountStatusActive {
			return ErrAccountNotActive
		}

		txn, err := svc.txWriter.Save(ctx, accountID, models.TransactionTypeDeposit, amount, describeFundingSource(source), models.TransactionStatusCompleted)
		if err != nil {
			return err
		}
		transactionID = txn.TransactionID

		if _, err := svc.creditor.CreditBalance(ctx, accountID, amount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("funding failed, nothing committed", "account_id", accountID, "amount", amount, "error", err)
		return nil, decimal.Zero, err
	}

	// The committed credit stands; the result must still come from a fresh
	// post-commit read, never from values held in memory.
	balance, err := svc.accounts.GetBalance(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to read back balance after funding", "account_id", accountID, "error", err)
		return nil, decimal.Zero, ErrReadBackFailed
	}
	txn, err := svc.txReader.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to read back transaction after funding", "transaction_id", transactionID, "error", err)
		return nil, decimal.Zero, ErrReadBackFailed
	}

	svc.publishFunding(ctx, identity, txn)

	return txn, balance, nil
}

// ListTransactions returns the account's history, most recent first, with a
// stable tie-break. The account is fetched once for ownership verification
// and its type reused for enrichment; there is no per-transaction lookup.
func (svc *LedgerService) ListTransactions(ctx context.Context, userID, accountID uuid.UUID) ([]models.TransactionView, error) {
	identity, err := svc.authorize(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	txns, err := svc.txReader.ListByAccountID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "account_id", accountID, "error", err)
		return nil, err
	}

	views := make([]models.TransactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, models.TransactionView{
			TransactionDB: txn,
			AccountType:   identity.AccountType,
		})
	}
	return views, nil
}

// publishFunding publishes a committed funding transaction to Kafka.
// Best effort: a publish failure is logged and never alters the result.
func (svc *LedgerService) publishFunding(ctx context.Context, identity *models.AccountIdentity, txn *models.TransactionDB) {
	if svc.eventWriter == nil {
		logger.Log.Warnw("event writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.FundingEvent{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID.String(),
		UserID:        identity.UserID.String(),
		Type:          txn.Type,
		Amount:        txn.Amount,
		Status:        txn.Status,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal funding event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.AccountID.String()),
		Value: data,
	}

	if err := svc.eventWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish funding event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("funding event published", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}
