package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/tx"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS accounts (
			account_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(user_id),
			account_number CHAR(10) NOT NULL UNIQUE,
			account_type VARCHAR(10) NOT NULL,
			balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			status VARCHAR(10) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, account_type)
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id BIGSERIAL PRIMARY KEY,
			account_id UUID NOT NULL REFERENCES accounts(account_id),
			type VARCHAR(10) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status VARCHAR(10) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			processed_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id);`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account_created
			ON transactions(account_id, created_at DESC, transaction_id DESC);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func insertUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (user_id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, username, username+"@example.com", "password123")
	assert.NoError(t, err)
	return userID
}

func getStoredBalance(t *testing.T, db *sqlx.DB, accountID uuid.UUID) decimal.Decimal {
	t.Helper()
	var balance decimal.Decimal
	err := db.Get(&balance, `SELECT balance FROM accounts WHERE account_id=$1`, accountID)
	assert.NoError(t, err)
	return balance
}

// --- AccountWriteRepository Tests ---
func TestAccountSave(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "alice")
	writer := NewAccountWriteRepository(db, nil)

	account, err := writer.Save(ctx, userID, "0012345678", models.AccountTypeChecking)
	assert.NoError(t, err)
	assert.Equal(t, userID, account.UserID)
	assert.Equal(t, "0012345678", account.AccountNumber)
	assert.Equal(t, models.AccountTypeChecking, account.AccountType)
	assert.True(t, account.Balance.IsZero())
	assert.Equal(t, models.AccountStatusActive, account.Status)
	assert.NotEqual(t, uuid.Nil, account.AccountID)
}

func TestAccountSaveDuplicateType(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "bob")
	writer := NewAccountWriteRepository(db, nil)

	_, err := writer.Save(ctx, userID, "1111111111", models.AccountTypeSavings)
	assert.NoError(t, err)

	// A second savings account for the same user violates the unique pair.
	_, err = writer.Save(ctx, userID, "2222222222", models.AccountTypeSavings)
	assert.Error(t, err)

	// A different type is still fine.
	_, err = writer.Save(ctx, userID, "3333333333", models.AccountTypeChecking)
	assert.NoError(t, err)
}

func TestAccountSaveDuplicateNumber(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	first := insertUser(t, db, "carol")
	second := insertUser(t, db, "dave")
	writer := NewAccountWriteRepository(db, nil)

	_, err := writer.Save(ctx, first, "4444444444", models.AccountTypeChecking)
	assert.NoError(t, err)

	_, err = writer.Save(ctx, second, "4444444444", models.AccountTypeChecking)
	assert.Error(t, err)
}

func TestCreditBalance(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "erin")
	writer := NewAccountWriteRepository(db, nil)

	account, err := writer.Save(ctx, userID, "5555555555", models.AccountTypeChecking)
	assert.NoError(t, err)

	balance, err := writer.CreditBalance(ctx, account.AccountID, decimal.RequireFromString("100.00"))
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("100.00")))

	balance, err = writer.CreditBalance(ctx, account.AccountID, decimal.RequireFromString("50.25"))
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("150.25")))
	assert.True(t, getStoredBalance(t, db, account.AccountID).Equal(decimal.RequireFromString("150.25")))
}

func TestCreditBalanceUnknownAccount(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewAccountWriteRepository(db, nil)

	_, err := writer.CreditBalance(ctx, uuid.New(), decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// --- Concurrency Tests ---
func TestCreditBalanceConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "concurrent")
	writer := NewAccountWriteRepository(db, nil)

	account, err := writer.Save(ctx, userID, "6666666666", models.AccountTypeChecking)
	assert.NoError(t, err)

	const numGoroutines = 1000
	amount := decimal.RequireFromString("1.00")
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = writer.CreditBalance(ctx, account.AccountID, amount)
		}()
	}
	wg.Wait()

	want := amount.Mul(decimal.NewFromInt(numGoroutines))
	assert.True(t, getStoredBalance(t, db, account.AccountID).Equal(want))
}

// --- AccountReadRepository Tests ---
func TestAccountReadRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "frank")
	writer := NewAccountWriteRepository(db, nil)
	reader := NewAccountReadRepository(db, nil)

	saved, err := writer.Save(ctx, userID, "7777777777", models.AccountTypeSavings)
	assert.NoError(t, err)

	t.Run("GetByID returns the stored account", func(t *testing.T) {
		account, err := reader.GetByID(ctx, saved.AccountID)
		assert.NoError(t, err)
		assert.Equal(t, saved.AccountID, account.AccountID)
		assert.Equal(t, userID, account.UserID)
		assert.Equal(t, "7777777777", account.AccountNumber)
	})

	t.Run("GetByID unknown account", func(t *testing.T) {
		_, err := reader.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("GetByUserAndType", func(t *testing.T) {
		account, err := reader.GetByUserAndType(ctx, userID, models.AccountTypeSavings)
		assert.NoError(t, err)
		assert.Equal(t, saved.AccountID, account.AccountID)

		_, err = reader.GetByUserAndType(ctx, userID, models.AccountTypeChecking)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("GetBalance reads the current balance", func(t *testing.T) {
		_, err := writer.CreditBalance(ctx, saved.AccountID, decimal.RequireFromString("42.42"))
		assert.NoError(t, err)

		balance, err := reader.GetBalance(ctx, saved.AccountID)
		assert.NoError(t, err)
		assert.True(t, balance.Equal(decimal.RequireFromString("42.42")))
	})

	t.Run("ExistsByNumber", func(t *testing.T) {
		exists, err := reader.ExistsByNumber(ctx, "7777777777")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsByNumber(ctx, "0000000001")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGetByIDForUpdateInsideTransaction(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := insertUser(t, db, "grace")
	writer := NewAccountWriteRepository(db, tx.FromContext)
	reader := NewAccountReadRepository(db, tx.FromContext)

	saved, err := writer.Save(ctx, userID, "8888888888", models.AccountTypeChecking)
	assert.NoError(t, err)

	err = tx.Run(ctx, db, func(ctx context.Context) error {
		account, err := reader.GetByIDForUpdate(ctx, saved.AccountID)
		if err != nil {
			return err
		}
		assert.Equal(t, models.AccountStatusActive, account.Status)

		_, err = writer.CreditBalance(ctx, saved.AccountID, decimal.RequireFromString("5.00"))
		return err
	})
	assert.NoError(t, err)
	assert.True(t, getStoredBalance(t, db, saved.AccountID).Equal(decimal.RequireFromString("5.00")))
}
