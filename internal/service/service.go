// Package service wires the budget engine to its collaborators: a
// transaction ledger and a configuration provider. It owns no state of
// its own and adds no semantics beyond resolving inputs and logging.
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/safespend/backend/internal/budget"
	"github.com/safespend/backend/internal/models"
	"github.com/safespend/backend/internal/types"
	"github.com/shopspring/decimal"
)

// LedgerProvider supplies a user's transactions. Implementations must
// return a snapshot read at a single consistent point: the engine does
// not coordinate with concurrent writers.
type LedgerProvider interface {
	Transactions(userID uuid.UUID) []models.Transaction
}

// ConfigurationProvider supplies the budget configuration covering an
// instant, or models.ErrNoActiveConfiguration when there is none.
type ConfigurationProvider interface {
	Active(userID uuid.UUID, asOf time.Time) (models.Configuration, error)
}

type Service struct {
	ledger         LedgerProvider
	configurations ConfigurationProvider
	log            zerolog.Logger
}

func New(ledger LedgerProvider, configurations ConfigurationProvider, log zerolog.Logger) *Service {
	return &Service{
		ledger:         ledger,
		configurations: configurations,
		log:            log,
	}
}

// SafeToSpend runs the engine for one user at one instant.
//
// models.ErrNoActiveConfiguration and rule validation errors are
// returned as-is, without retries. An expired period is not an error:
// the result is returned with lump-sum semantics and a warning is
// logged.
func (s *Service) SafeToSpend(userID uuid.UUID, asOf time.Time) (models.SafeToSpend, error) {
	configuration, err := s.configurations.Active(userID, asOf)
	if err != nil {
		return models.SafeToSpend{}, err
	}

	result, err := budget.Evaluate(configuration, s.ledger.Transactions(userID), asOf)
	if err != nil {
		return models.SafeToSpend{}, err
	}

	if result.State == types.StateExpired {
		s.log.Warn().
			Str("user", userID.String()).
			Time("periodEnd", configuration.Period.End).
			Msg("budget period has expired, safe-to-spend is the remaining lump sum")
	}

	return result, nil
}

// ActualIncome sums the income transactions posted within the user's
// active budget period, for reconciliation against the configured
// total income.
func (s *Service) ActualIncome(userID uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	configuration, err := s.configurations.Active(userID, asOf)
	if err != nil {
		return decimal.Zero, err
	}

	return budget.Income(s.ledger.Transactions(userID), configuration.Period), nil
}
