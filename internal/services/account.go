package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

var (
	// ErrInvalidAccountType is returned when the requested type is not checking or savings.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrAccountTypeExists is returned when the owner already holds an account of the requested type.
	ErrAccountTypeExists = errors.New("account of this type already exists")
	// ErrReadBackFailed is returned when a row was durably written but could
	// not be read back. There is no safe default value for money, so the
	// caller gets a hard failure, never a fabricated record.
	ErrReadBackFailed = errors.New("failed to read back committed state")
)

// AccountReader defines read operations the account service needs.
type AccountReader interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
	GetByUserAndType(ctx context.Context, userID uuid.UUID, accountType string) (*models.AccountDB, error)
}

// AccountWriter defines write operations the account service needs.
type AccountWriter interface {
	Save(ctx context.Context, userID uuid.UUID, accountNumber, accountType string) (*models.AccountDB, error)
}

// NumberGenerator produces unique external account numbers.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// AccountService handles account opening.
type AccountService struct {
	reader AccountReader
	writer AccountWriter
	numgen NumberGenerator
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(reader AccountReader, writer AccountWriter, numgen NumberGenerator) *AccountService {
	return &AccountService{
		reader: reader,
		writer: writer,
		numgen: numgen,
	}
}

// OpenAccount creates a zero-balance active account of the given type for
// the owner. At most one account per (owner, type) pair.
func (svc *AccountService) OpenAccount(ctx context.Context, userID uuid.UUID, accountType string) (*models.AccountDB, error) {
	if accountType != models.AccountTypeChecking && accountType != models.AccountTypeSavings {
		logger.Log.Warnw("invalid account type", "account_type", accountType)
		return nil, ErrInvalidAccountType
	}

	existing, err := svc.reader.GetByUserAndType(ctx, userID, accountType)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to check existing account", "user_id", userID, "account_type", accountType, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("account of this type already exists", "user_id", userID, "account_type", accountType)
		return nil, ErrAccountTypeExists
	}

	number, err := svc.numgen.Generate(ctx)
	if err != nil {
		logger.Log.Errorw("failed to generate account number", "user_id", userID, "error", err)
		return nil, err
	}

	created, err := svc.writer.Save(ctx, userID, number, accountType)
	if err != nil {
		// A concurrent open of the same type loses the race on the
		// (user_id, account_type) unique constraint.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "account_type") {
			return nil, ErrAccountTypeExists
		}
		logger.Log.Errorw("failed to save account", "user_id", userID, "account_type", accountType, "error", err)
		return nil, err
	}

	// The returned account is always re-read from the store after the
	// insert. A failed read-back is a hard failure.
	account, err := svc.reader.GetByID(ctx, created.AccountID)
	if err != nil {
		logger.Log.Errorw("failed to read back opened account", "account_id", created.AccountID, "error", err)
		return nil, ErrReadBackFailed
	}

	return account, nil
}
