// Package scenario loads a self-contained engine input from a YAML
// file: one budget configuration, the transactions of the period and
// the instant to evaluate at. Amounts are YAML strings so they reach
// the decimal type without passing through binary floats.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/safespend/backend/internal/models"
	"github.com/safespend/backend/internal/types"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is a fully materialized engine input.
type Scenario struct {
	UserID        uuid.UUID
	AsOf          time.Time
	Configuration models.Configuration
	Transactions  []models.Transaction
}

type scenarioFile struct {
	User          string            `yaml:"user"`
	AsOf          time.Time         `yaml:"asOf"`
	Configuration configurationFile `yaml:"configuration"`
	Transactions  []transactionFile `yaml:"transactions"`
}

type configurationFile struct {
	PeriodStart      time.Time         `yaml:"periodStart"`
	PeriodEnd        time.Time         `yaml:"periodEnd"`
	TotalIncome      string            `yaml:"totalIncome"`
	Rule             []ruleEntryFile   `yaml:"rule"`
	FixedCommitments map[string]string `yaml:"fixedCommitments"`
}

type ruleEntryFile struct {
	Group      string `yaml:"group"`
	Percentage string `yaml:"percentage"`
}

type transactionFile struct {
	Category   string    `yaml:"category"`
	Type       string    `yaml:"type"`
	Source     string    `yaml:"source"`
	Amount     string    `yaml:"amount"`
	Note       string    `yaml:"note"`
	OccurredAt time.Time `yaml:"occurredAt"`
	Deleted    bool      `yaml:"deleted"`
}

// Load reads and materializes a scenario file. The returned scenario
// is validated no further than its individual values: configuration
// and transaction invariants are checked by the stores and the engine.
func Load(path string) (Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}

	var file scenarioFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}

	userID := uuid.New()
	if file.User != "" {
		userID, err = uuid.Parse(file.User)
		if err != nil {
			return Scenario{}, fmt.Errorf("parsing user ID: %w", err)
		}
	}

	configuration, err := file.Configuration.materialize(userID)
	if err != nil {
		return Scenario{}, err
	}

	transactions := make([]models.Transaction, 0, len(file.Transactions))
	for i, t := range file.Transactions {
		transaction, err := t.materialize(userID)
		if err != nil {
			return Scenario{}, fmt.Errorf("transaction %d: %w", i, err)
		}

		transactions = append(transactions, transaction)
	}

	return Scenario{
		UserID:        userID,
		AsOf:          file.AsOf,
		Configuration: configuration,
		Transactions:  transactions,
	}, nil
}

func (f configurationFile) materialize(userID uuid.UUID) (models.Configuration, error) {
	period, err := types.NewPeriod(f.PeriodStart, f.PeriodEnd)
	if err != nil {
		return models.Configuration{}, err
	}

	income, err := decimal.NewFromString(f.TotalIncome)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("parsing total income: %w", err)
	}

	rule := make(models.Rule, 0, len(f.Rule))
	for _, entry := range f.Rule {
		percentage, err := decimal.NewFromString(entry.Percentage)
		if err != nil {
			return models.Configuration{}, fmt.Errorf("parsing percentage for group %q: %w", entry.Group, err)
		}

		rule = append(rule, models.RuleEntry{Group: models.Group(entry.Group), Percentage: percentage})
	}

	var commitments map[models.Group]decimal.Decimal
	if len(f.FixedCommitments) > 0 {
		commitments = make(map[models.Group]decimal.Decimal, len(f.FixedCommitments))
		for group, amount := range f.FixedCommitments {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return models.Configuration{}, fmt.Errorf("parsing commitment for group %q: %w", group, err)
			}

			commitments[models.Group(group)] = value
		}
	}

	return models.Configuration{
		UserID:           userID,
		Period:           period,
		TotalIncome:      income,
		Rule:             rule,
		FixedCommitments: commitments,
	}, nil
}

func (f transactionFile) materialize(userID uuid.UUID) (models.Transaction, error) {
	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("parsing amount: %w", err)
	}

	source := models.SourceManual
	if f.Source != "" {
		source = models.TransactionSource(f.Source)
	}

	transaction := models.Transaction{
		UserID:     userID,
		Amount:     amount,
		Category:   models.Category(f.Category),
		Type:       models.TransactionType(f.Type),
		Source:     source,
		Note:       f.Note,
		OccurredAt: f.OccurredAt,
	}

	if f.Deleted {
		deletedAt := f.OccurredAt
		transaction.DeletedAt = &deletedAt
	}

	return transaction, nil
}
