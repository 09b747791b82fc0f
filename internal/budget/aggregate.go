package budget

import (
	"github.com/safespend/backend/internal/models"
	"github.com/safespend/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Aggregate sums expense transactions into the rule's groups for one
// period in a single pass.
//
// Deleted transactions, income transactions and transactions outside
// the period are skipped. Spend whose category belongs to no declared
// rule group lands in models.GroupUncategorized, so no expense is ever
// dropped from the result. The input is not mutated.
func Aggregate(transactions []models.Transaction, period types.Period, rule models.Rule) map[models.Group]decimal.Decimal {
	spent := make(map[models.Group]decimal.Decimal, len(rule)+1)
	for _, entry := range rule {
		spent[entry.Group] = decimal.Zero
	}
	spent[models.GroupUncategorized] = decimal.Zero

	for _, t := range transactions {
		if t.Deleted() || t.Type != models.TypeExpense || !period.Contains(t.OccurredAt) {
			continue
		}

		group := t.Category.Group()
		if !rule.Declares(group) {
			group = models.GroupUncategorized
		}

		spent[group] = spent[group].Add(t.Amount)
	}

	return spent
}

// Income sums the non-deleted income transactions within the period.
// The engine does not reconcile this against the configured total
// income, callers can.
func Income(transactions []models.Transaction, period types.Period) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.Deleted() || t.Type != models.TypeIncome || !period.Contains(t.OccurredAt) {
			continue
		}

		sum = sum.Add(t.Amount)
	}

	return sum
}
