package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

// TransactionWriteRepository appends transaction rows. Rows are immutable
// once written; there is no update or delete path.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a transaction row and returns it as stored, with the
// store-assigned identifier and timestamps.
func (r *TransactionWriteRepository) Save(ctx context.Context, accountID uuid.UUID, txType string, amount decimal.Decimal, description, status string) (*models.TransactionDB, error) {
	query := `
		INSERT INTO transactions (account_id, type, amount, description, status, created_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING transaction_id, account_id, type, amount, description, status, created_at, processed_at
	`
	args := []any{accountID, txType, amount, description, status}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", txn,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID retrieves a single transaction row.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID int64) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, account_id, type, amount, description, status, created_at, processed_at
		FROM transactions
		WHERE transaction_id = $1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"result", txn,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListByAccountID returns all transactions of an account, most recent first.
// The transaction id breaks creation-time ties so repeated reads of an
// unchanged dataset return the identical sequence.
func (r *TransactionReadRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, account_id, type, amount, description, status, created_at, processed_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, transaction_id DESC
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
