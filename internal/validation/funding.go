package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

// Violation names a single failed check on a funding request.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Violations is the structured list of failed checks. It implements error
// so services can surface the whole list at once.
type Violations []Violation

func (v Violations) Error() string {
	reasons := make([]string, 0, len(v))
	for _, violation := range v {
		reasons = append(reasons, violation.Field+": "+violation.Reason)
	}
	return strings.Join(reasons, "; ")
}

// AmountPositive checks that the amount is strictly greater than zero.
// Zero or negative amounts are rejected, never coerced.
func AmountPositive(amount decimal.Decimal) *Violation {
	if amount.Sign() <= 0 {
		return &Violation{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}

// AmountWithinLimits checks that the amount falls inside the configured
// [min, max] funding bounds.
func AmountWithinLimits(amount, min, max decimal.Decimal) *Violation {
	if amount.LessThan(min) {
		return &Violation{Field: "amount", Reason: "below minimum funding amount " + min.String()}
	}
	if amount.GreaterThan(max) {
		return &Violation{Field: "amount", Reason: "above maximum funding amount " + max.String()}
	}
	return nil
}

// FundingSourceType checks that the source type is one of the supported kinds.
func FundingSourceType(source models.FundingSource) *Violation {
	switch source.Type {
	case models.FundingSourceCard, models.FundingSourceBank:
		return nil
	}
	return &Violation{Field: "funding_source.type", Reason: "must be card or bank"}
}

// FundingSourceAccountNumber checks that the external account number is present.
func FundingSourceAccountNumber(source models.FundingSource) *Violation {
	if source.AccountNumber == "" {
		return &Violation{Field: "funding_source.account_number", Reason: "is required"}
	}
	return nil
}

// FundingSourceRoutingNumber checks that bank sources carry a routing number.
func FundingSourceRoutingNumber(source models.FundingSource) *Violation {
	if source.Type == models.FundingSourceBank && source.RoutingNumber == "" {
		return &Violation{Field: "funding_source.routing_number", Reason: "is required for bank sources"}
	}
	return nil
}

// CheckFundingRequest runs every predicate against the request and returns
// the collected violations, or nil when the request is valid.
func CheckFundingRequest(amount, min, max decimal.Decimal, source models.FundingSource) Violations {
	var violations Violations

	checks := []*Violation{
		AmountPositive(amount),
		AmountWithinLimits(amount, min, max),
		FundingSourceType(source),
		FundingSourceAccountNumber(source),
		FundingSourceRoutingNumber(source),
	}

	for _, c := range checks {
		if c != nil {
			violations = append(violations, *c)
		}
	}

	return violations
}
