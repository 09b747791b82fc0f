// Package budget implements the budget engine: allocation of income to
// category groups, spend aggregation over a period and the
// safe-to-spend calculation.
//
// All functions are pure. They operate on the snapshot the caller
// supplies, perform no I/O and are safe for concurrent use.
package budget

import (
	"github.com/safespend/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Allocate applies the configuration's percentage rule to its total
// income and returns the spending cap per group.
//
// Every cap is rounded down to the money scale. The rounding remainder
// is added to the last group in rule order, so the caps always sum to
// the total income exactly. An income of zero yields all-zero caps.
func Allocate(c models.Configuration) (map[models.Group]decimal.Decimal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	caps := make(map[models.Group]decimal.Decimal, len(c.Rule))
	allocated := decimal.Zero
	for _, entry := range c.Rule {
		// percentage / 100 == percentage shifted by two digits
		amount := c.TotalIncome.Mul(entry.Percentage.Shift(-2)).RoundDown(models.MoneyScale)
		caps[entry.Group] = amount
		allocated = allocated.Add(amount)
	}

	remainder := c.TotalIncome.Sub(allocated)
	if !remainder.IsZero() {
		last := c.Rule[len(c.Rule)-1].Group
		caps[last] = caps[last].Add(remainder)
	}

	return caps, nil
}
