package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

var (
	min = decimal.RequireFromString("0.01")
	max = decimal.RequireFromString("10000.00")
)

func TestAmountPositive(t *testing.T) {
	assert.Nil(t, AmountPositive(decimal.RequireFromString("100.00")))
	assert.NotNil(t, AmountPositive(decimal.Zero))
	assert.NotNil(t, AmountPositive(decimal.RequireFromString("-1.00")))
}

func TestAmountWithinLimits(t *testing.T) {
	assert.Nil(t, AmountWithinLimits(decimal.RequireFromString("100.00"), min, max))
	assert.Nil(t, AmountWithinLimits(min, min, max))
	assert.Nil(t, AmountWithinLimits(max, min, max))
	assert.NotNil(t, AmountWithinLimits(decimal.Zero, min, max))
	assert.NotNil(t, AmountWithinLimits(decimal.RequireFromString("10000.01"), min, max))
}

func TestFundingSourceType(t *testing.T) {
	assert.Nil(t, FundingSourceType(models.FundingSource{Type: models.FundingSourceCard}))
	assert.Nil(t, FundingSourceType(models.FundingSource{Type: models.FundingSourceBank}))
	assert.NotNil(t, FundingSourceType(models.FundingSource{Type: "crypto"}))
	assert.NotNil(t, FundingSourceType(models.FundingSource{}))
}

func TestFundingSourceAccountNumber(t *testing.T) {
	assert.Nil(t, FundingSourceAccountNumber(models.FundingSource{AccountNumber: "4111111111111111"}))
	assert.NotNil(t, FundingSourceAccountNumber(models.FundingSource{}))
}

func TestFundingSourceRoutingNumber(t *testing.T) {
	assert.Nil(t, FundingSourceRoutingNumber(models.FundingSource{
		Type: models.FundingSourceBank, RoutingNumber: "021000021",
	}))
	assert.NotNil(t, FundingSourceRoutingNumber(models.FundingSource{Type: models.FundingSourceBank}))
	// Card sources do not need a routing number.
	assert.Nil(t, FundingSourceRoutingNumber(models.FundingSource{Type: models.FundingSourceCard}))
}

func TestCheckFundingRequest(t *testing.T) {
	validSource := models.FundingSource{
		Type:          models.FundingSourceCard,
		AccountNumber: "4111111111111111",
	}

	t.Run("valid request has no violations", func(t *testing.T) {
		v := CheckFundingRequest(decimal.RequireFromString("100.00"), min, max, validSource)
		assert.Nil(t, v)
	})

	t.Run("violations accumulate", func(t *testing.T) {
		v := CheckFundingRequest(decimal.RequireFromString("-5.00"), min, max, models.FundingSource{Type: "crypto"})
		assert.Len(t, v, 4)
	})

	t.Run("implements error", func(t *testing.T) {
		v := CheckFundingRequest(decimal.Zero, min, max, validSource)
		assert.Contains(t, v.Error(), "amount")
	})
}
