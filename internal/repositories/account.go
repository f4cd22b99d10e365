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

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

func (r *AccountReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID retrieves an account by its identifier.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, user_id, account_number, account_type, balance, status, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", account,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByIDForUpdate retrieves an account by id, taking the storage engine's
// row lock. Only meaningful inside a transaction.
func (r *AccountReadRepository) GetByIDForUpdate(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, user_id, account_number, account_type, balance, status, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", account,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByUserAndType retrieves the account a user holds for a given account type.
func (r *AccountReadRepository) GetByUserAndType(ctx context.Context, userID uuid.UUID, accountType string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, user_id, account_number, account_type, balance, status, created_at, updated_at
		FROM accounts
		WHERE user_id = $1 AND account_type = $2
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, userID, accountType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, accountType},
		"result", account,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetBalance reads the authoritative balance fresh from the store.
func (r *AccountReadRepository) GetBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	const query = `
		SELECT balance
		FROM accounts
		WHERE account_id = $1
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// ExistsByNumber reports whether an account with the given external number exists.
func (r *AccountReadRepository) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)
	`

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, accountNumber)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountNumber},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

func (r *AccountWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new zero-balance active account and returns the stored row.
func (r *AccountWriteRepository) Save(ctx context.Context, userID uuid.UUID, accountNumber, accountType string) (*models.AccountDB, error) {
	query := `
		INSERT INTO accounts (account_id, user_id, account_number, account_type, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, NOW(), NOW())
		RETURNING account_id, user_id, account_number, account_type, balance, status, created_at, updated_at
	`
	args := []any{uuid.New(), userID, accountNumber, accountType, models.AccountStatusActive}

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", account,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// CreditBalance applies a relative balance adjustment server-side:
// balance = balance + amount, evaluated and written under the storage
// engine's own locking. Never read-modify-write in application code.
func (r *AccountWriteRepository) CreditBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2, updated_at = NOW()
		WHERE account_id = $1
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, accountID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}
