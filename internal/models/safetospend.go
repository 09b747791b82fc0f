package models

import (
	"time"

	"github.com/safespend/backend/internal/types"
	"github.com/shopspring/decimal"
)

// GroupBalance contains the calculated amounts for one rule group.
type GroupBalance struct {
	Group          Group           `json:"group"`
	Cap            decimal.Decimal `json:"cap"`            // Amount allocated to the group by the rule
	Reserved       decimal.Decimal `json:"reserved"`       // Unpaid fixed commitments still held against the cap
	Spent          decimal.Decimal `json:"spent"`          // Posted expense transactions in the period
	Remaining      decimal.Decimal `json:"remaining"`      // Cap - Spent, negative when overspent
	Available      decimal.Decimal `json:"available"`      // Cap - Reserved - Spent
	CommitmentPaid bool            `json:"commitmentPaid"` // True when posted spend covers the group's fixed commitment
	Overspent      bool            `json:"overspent"`
	Progress       decimal.Decimal `json:"progress"` // Percent of the cap that has been spent
}

// SafeToSpend is the result of a safe-to-spend calculation. It is
// derived data and never persisted by the engine.
type SafeToSpend struct {
	AsOf                        time.Time       `json:"asOf"`
	State                       types.State     `json:"state"`
	DaysRemaining               int             `json:"daysRemaining"`
	TotalRemainingDiscretionary decimal.Decimal `json:"totalRemainingDiscretionary"` // Netted over all groups, negative signals overspend
	SafeDailyAmount             decimal.Decimal `json:"safeDailyAmount"`             // Lump sum when no days remain
	Groups                      []GroupBalance  `json:"groups"`
	UncategorizedSpend          decimal.Decimal `json:"uncategorizedSpend"` // Spend outside the declared rule groups
}
