package budget_test

import (
	"testing"
	"time"

	"github.com/safespend/backend/internal/budget"
	"github.com/safespend/backend/internal/models"
	"github.com/safespend/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration(income string) models.Configuration {
	return models.Configuration{
		Period:      types.MonthPeriod(2026, time.March),
		TotalIncome: decimal.RequireFromString(income),
		Rule:        models.Rule503020(),
	}
}

func TestAllocate503020(t *testing.T) {
	caps, err := budget.Allocate(testConfiguration("10000"))
	require.Nil(t, err)

	assertAmount(t, "5000", caps[models.GroupNeeds])
	assertAmount(t, "3000", caps[models.GroupWants])
	assertAmount(t, "2000", caps[models.GroupSavings])
}

func TestAllocateRemainderGoesToLastGroup(t *testing.T) {
	// 100.01 * 50% = 50.005, rounding down costs half a cent on needs
	// and fractions on wants and savings. The remainder must end up in
	// savings, the last rule entry.
	caps, err := budget.Allocate(testConfiguration("100.01"))
	require.Nil(t, err)

	assertAmount(t, "50.00", caps[models.GroupNeeds])
	assertAmount(t, "30.00", caps[models.GroupWants])
	assertAmount(t, "20.01", caps[models.GroupSavings])
}

func TestAllocateZeroIncome(t *testing.T) {
	caps, err := budget.Allocate(testConfiguration("0"))
	require.Nil(t, err)

	for group, amount := range caps {
		assert.True(t, amount.IsZero(), "cap for %s is %s, not zero", group, amount)
	}
}

func TestAllocateZeroPercentageGroup(t *testing.T) {
	c := testConfiguration("1000")
	c.Rule = models.Rule{
		{Group: models.GroupNeeds, Percentage: decimal.NewFromInt(100)},
		{Group: models.GroupWants, Percentage: decimal.Zero},
	}

	caps, err := budget.Allocate(c)
	require.Nil(t, err)

	assertAmount(t, "1000", caps[models.GroupNeeds])
	assertAmount(t, "0", caps[models.GroupWants])
}

func TestAllocateInvalidRule(t *testing.T) {
	c := testConfiguration("1000")
	c.Rule = models.Rule{{Group: models.GroupNeeds, Percentage: decimal.NewFromInt(99)}}

	_, err := budget.Allocate(c)
	assert.ErrorIs(t, err, models.ErrInvalidRule)
}

func TestAllocateCapsSumToIncome(t *testing.T) {
	thirds := models.Rule{
		{Group: models.GroupNeeds, Percentage: decimal.RequireFromString("33.33")},
		{Group: models.GroupWants, Percentage: decimal.RequireFromString("33.33")},
		{Group: models.GroupSavings, Percentage: decimal.RequireFromString("33.34")},
	}

	tests := []struct {
		income string
		rule   models.Rule
	}{
		{"0.01", models.Rule503020()},
		{"7", models.Rule503020()},
		{"123.45", models.Rule503020()},
		{"9999.99", models.Rule503020()},
		{"10001", models.Rule503020()},
		{"0.01", thirds},
		{"100", thirds},
		{"123.45", thirds},
		{"31415.92", thirds},
	}

	for _, tt := range tests {
		t.Run(tt.income, func(t *testing.T) {
			c := testConfiguration(tt.income)
			c.Rule = tt.rule

			caps, err := budget.Allocate(c)
			require.Nil(t, err)

			sum := decimal.Zero
			for _, amount := range caps {
				sum = sum.Add(amount)
			}

			assert.True(t, sum.Equal(c.TotalIncome), "caps sum to %s, income is %s", sum, c.TotalIncome)
		})
	}
}
