// Package allocation computes how much each debtor owes the payer of an
// expense. Functions here are pure: no persistence, no membership lookups.
//
// Rounding policy: every division floors. The remainder is never
// redistributed, so the payer absorbs it and it is not tracked anywhere.
package allocation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
)

// Share is one debtor's computed obligation, in minor currency units.
type Share struct {
	Debtor uuid.UUID
	Amount int64
}

type DirectEntry struct {
	UserID uuid.UUID
	Amount int64
}

type PercentEntry struct {
	UserID uuid.UUID
	Ratio  decimal.Decimal // 0..100
}

var (
	hundred = decimal.NewFromInt(100)

	// PercentTolerance is how far the ratio sum may stray from 100.
	PercentTolerance = decimal.RequireFromString("0.01")
)

// Equal assigns floor(total/len(participants)) to every participant except the
// payer. The payer still counts towards the divisor.
func Equal(total int64, payer uuid.UUID, participants []uuid.UUID) ([]Share, error) {
	if len(participants) == 0 {
		return nil, apperr.Validation("no participants")
	}

	each := total / int64(len(participants))

	shares := make([]Share, 0, len(participants))
	for _, p := range participants {
		if p == payer {
			continue
		}

		shares = append(shares, Share{Debtor: p, Amount: each})
	}

	return shares, nil
}

// Direct passes explicit amounts through, dropping the payer's own entry.
// Cross-checking the sum against the expense total is the caller's job.
func Direct(payer uuid.UUID, entries []DirectEntry) ([]Share, error) {
	if len(entries) == 0 {
		return nil, apperr.Validation("no amount entries")
	}

	shares := make([]Share, 0, len(entries))
	for _, e := range entries {
		if e.UserID == payer {
			continue
		}

		shares = append(shares, Share{Debtor: e.UserID, Amount: e.Amount})
	}

	return shares, nil
}

// Percent assigns floor(total*ratio/100) per entry, dropping the payer's own
// entry. It does not check that the ratios add up to 100; see RatiosSumTo100.
func Percent(total int64, payer uuid.UUID, entries []PercentEntry) ([]Share, error) {
	if len(entries) == 0 {
		return nil, apperr.Validation("no percentage entries")
	}

	base := decimal.NewFromInt(total)

	shares := make([]Share, 0, len(entries))
	for _, e := range entries {
		if e.UserID == payer {
			continue
		}

		amount := base.Mul(e.Ratio).Div(hundred).Floor().IntPart()
		shares = append(shares, Share{Debtor: e.UserID, Amount: amount})
	}

	return shares, nil
}

// RatioSum adds up all entry ratios.
func RatioSum(entries []PercentEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Ratio)
	}

	return sum
}

// RatiosSumTo100 reports whether the ratios add up to 100 within PercentTolerance.
func RatiosSumTo100(entries []PercentEntry) bool {
	return RatioSum(entries).Sub(hundred).Abs().LessThanOrEqual(PercentTolerance)
}

// Total adds up share amounts.
func Total(shares []Share) int64 {
	var sum int64
	for _, s := range shares {
		sum += s.Amount
	}

	return sum
}
