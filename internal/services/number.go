package services

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
)

// ErrNumberSpaceExhausted is returned when the generator cannot find a free
// account number within the attempt cap.
var ErrNumberSpaceExhausted = errors.New("could not generate a unique account number")

// maxNumberAttempts bounds the collision-retry loop so an exhausted
// identifier space fails instead of spinning.
const maxNumberAttempts = 100

// AccountNumberChecker reports whether an account number is already taken.
type AccountNumberChecker interface {
	ExistsByNumber(ctx context.Context, accountNumber string) (bool, error)
}

// AccountNumberGenerator produces unpredictable, collision-checked 10-digit
// account numbers from a cryptographically strong random source.
type AccountNumberGenerator struct {
	checker AccountNumberChecker
}

// NewAccountNumberGenerator creates a new AccountNumberGenerator.
func NewAccountNumberGenerator(checker AccountNumberChecker) *AccountNumberGenerator {
	return &AccountNumberGenerator{checker: checker}
}

// Generate draws a strong-random value, reduces it modulo 1e9, zero-pads it
// to 10 digits, and retries with a fresh draw on collision. The caller owns
// committing the number together with its account row.
func (g *AccountNumberGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			logger.Log.Errorw("failed to read random bytes", "error", err)
			return "", err
		}

		number := fmt.Sprintf("%010d", binary.BigEndian.Uint64(buf[:])%1_000_000_000)

		exists, err := g.checker.ExistsByNumber(ctx, number)
		if err != nil {
			logger.Log.Errorw("failed to check account number existence", "number", number, "error", err)
			return "", err
		}
		if !exists {
			return number, nil
		}

		logger.Log.Warnw("account number collision, retrying", "number", number, "attempt", attempt+1)
	}

	return "", ErrNumberSpaceExhausted
}
