package scenario_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/safespend/backend/internal/models"
	"github.com/safespend/backend/internal/scenario"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing scenario file: %s", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
user: 65392deb-5e92-4268-b114-297faad6cdce
asOf: 2026-03-10T00:00:00Z
configuration:
  periodStart: 2026-03-01T00:00:00Z
  periodEnd: 2026-03-31T23:59:59Z
  totalIncome: "30000"
  rule:
    - group: needs
      percentage: "50"
    - group: wants
      percentage: "30"
    - group: savings
      percentage: "20"
  fixedCommitments:
    needs: "12000"
transactions:
  - category: GROCERIES
    type: EXPENSE
    amount: "1250.50"
    occurredAt: 2026-03-04T10:00:00Z
  - category: RESTAURANTS
    type: EXPENSE
    source: BANK
    amount: "420"
    occurredAt: 2026-03-06T20:30:00Z
    deleted: true
`)

	s, err := scenario.Load(path)
	require.Nil(t, err)

	assert.Equal(t, "65392deb-5e92-4268-b114-297faad6cdce", s.UserID.String())
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), s.AsOf)

	assert.Equal(t, s.UserID, s.Configuration.UserID)
	assert.True(t, s.Configuration.TotalIncome.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, models.Rule503020(), s.Configuration.Rule)
	assert.True(t, s.Configuration.FixedCommitments[models.GroupNeeds].Equal(decimal.NewFromInt(12000)))
	assert.Nil(t, s.Configuration.Validate())

	require.Len(t, s.Transactions, 2)
	assert.Equal(t, models.CategoryGroceries, s.Transactions[0].Category)
	assert.Equal(t, models.SourceManual, s.Transactions[0].Source)
	assert.False(t, s.Transactions[0].Deleted())
	assert.Equal(t, models.SourceBank, s.Transactions[1].Source)
	assert.True(t, s.Transactions[1].Deleted())
}

func TestLoadGeneratesUserID(t *testing.T) {
	path := writeScenario(t, `
asOf: 2026-03-10T00:00:00Z
configuration:
  periodStart: 2026-03-01T00:00:00Z
  periodEnd: 2026-03-31T00:00:00Z
  totalIncome: "1000"
  rule:
    - group: needs
      percentage: "100"
`)

	s, err := scenario.Load(path)
	require.Nil(t, err)
	assert.NotEmpty(t, s.UserID)
	assert.Equal(t, s.UserID, s.Configuration.UserID)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad amount", `
asOf: 2026-03-10T00:00:00Z
configuration:
  periodStart: 2026-03-01T00:00:00Z
  periodEnd: 2026-03-31T00:00:00Z
  totalIncome: "30000"
  rule:
    - group: needs
      percentage: "100"
transactions:
  - category: GROCERIES
    type: EXPENSE
    amount: "12,50"
    occurredAt: 2026-03-04T10:00:00Z
`},
		{"bad user ID", `
user: not-a-uuid
asOf: 2026-03-10T00:00:00Z
configuration:
  periodStart: 2026-03-01T00:00:00Z
  periodEnd: 2026-03-31T00:00:00Z
  totalIncome: "30000"
  rule:
    - group: needs
      percentage: "100"
`},
		{"inverted period", `
asOf: 2026-03-10T00:00:00Z
configuration:
  periodStart: 2026-03-31T00:00:00Z
  periodEnd: 2026-03-01T00:00:00Z
  totalIncome: "30000"
  rule:
    - group: needs
      percentage: "100"
`},
		{"not yaml", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Load(writeScenario(t, tt.content))
			assert.NotNil(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.NotNil(t, err)
}
