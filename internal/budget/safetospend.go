package budget

import (
	"time"

	"github.com/safespend/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Compute combines allocation caps, aggregated spend and the
// configuration's fixed commitments into a SafeToSpend result.
//
// A fixed commitment counts as paid when the posted spend of its group
// within the period matches or exceeds the commitment amount. A paid
// commitment is no longer reserved against the group's cap, so it is
// never subtracted twice. An unpaid commitment stays reserved even
// though no transaction exists for it yet.
//
// The total remaining discretionary amount nets the available amounts
// of all rule groups and subtracts uncategorized spend. It is negative
// when the user overspent. While days remain in the period, the safe
// daily amount is the total divided by the remaining days; on and
// after the last day it is the remaining lump sum.
//
// An expired period is not an error: the result carries
// types.StateExpired and lump-sum semantics, the caller decides how to
// surface that.
func Compute(c models.Configuration, caps, spent map[models.Group]decimal.Decimal, asOf time.Time) (models.SafeToSpend, error) {
	if err := c.Validate(); err != nil {
		return models.SafeToSpend{}, err
	}

	groups := make([]models.GroupBalance, 0, len(c.Rule))
	total := decimal.Zero
	for _, entry := range c.Rule {
		balance := groupBalance(entry.Group, caps[entry.Group], spent[entry.Group], c.FixedCommitments[entry.Group])
		groups = append(groups, balance)
		total = total.Add(balance.Available)
	}

	uncategorized := spent[models.GroupUncategorized]
	total = total.Sub(uncategorized)

	days := c.Period.DaysRemaining(asOf)
	safeDaily := total
	if days > 0 {
		safeDaily = total.DivRound(decimal.NewFromInt(int64(days)), models.MoneyScale)
	}

	return models.SafeToSpend{
		AsOf:                        asOf,
		State:                       c.Period.StateAt(asOf),
		DaysRemaining:               days,
		TotalRemainingDiscretionary: total,
		SafeDailyAmount:             safeDaily,
		Groups:                      groups,
		UncategorizedSpend:          uncategorized,
	}, nil
}

func groupBalance(group models.Group, allocated, spent, commitment decimal.Decimal) models.GroupBalance {
	paid := commitment.IsPositive() && spent.GreaterThanOrEqual(commitment)

	reserved := commitment
	if paid {
		reserved = decimal.Zero
	}

	remaining := allocated.Sub(spent)

	return models.GroupBalance{
		Group:          group,
		Cap:            allocated,
		Reserved:       reserved,
		Spent:          spent,
		Remaining:      remaining,
		Available:      allocated.Sub(reserved).Sub(spent),
		CommitmentPaid: paid,
		Overspent:      remaining.IsNegative(),
		Progress:       progress(allocated, spent),
	}
}

// progress returns the share of the cap that has been spent, in
// percent. A zero cap yields zero, even with spend against it.
func progress(allocated, spent decimal.Decimal) decimal.Decimal {
	if allocated.IsZero() {
		return decimal.Zero
	}

	return spent.Mul(hundred).DivRound(allocated, models.MoneyScale)
}

// Evaluate runs the full engine for one configuration and transaction
// snapshot: Allocate, Aggregate, Compute.
func Evaluate(c models.Configuration, transactions []models.Transaction, asOf time.Time) (models.SafeToSpend, error) {
	caps, err := Allocate(c)
	if err != nil {
		return models.SafeToSpend{}, err
	}

	spent := Aggregate(transactions, c.Period, c.Rule)

	return Compute(c, caps, spent, asOf)
}
