package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
)

// assertAmount compares decimals by value. assert.Equal would compare
// the internal representation, where 50 and 50.00 differ.
func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()

	if !decimal.RequireFromString(expected).Equal(actual) {
		t.Errorf("expected amount %s, got %s", expected, actual)
	}
}
